package stats

import (
	"fmt"
	"math"

	"github.com/heistp/bytesize"
	"gonum.org/v1/gonum/stat/distuv"
)

// z95 is the standard normal quantile at 0.95.
const z95 = 1.645

// Sampler draws random sizes.
type Sampler interface {
	Rand() bytesize.ByteSize
}

// LogNormal is a lognormal size distribution, a common model for file and
// flow lengths.
type LogNormal struct {
	dist distuv.LogNormal
}

// NewLogNormal returns the lognormal distribution whose 5th and 95th
// percentiles are p5 and p95.
func NewLogNormal(p5, p95 bytesize.ByteSize) (l LogNormal, err error) {
	if p5 <= 0 || p95 < p5 {
		err = fmt.Errorf("invalid lognormal percentiles: p5=%d p95=%d", p5, p95)
		return
	}
	log5 := math.Log(float64(p5))
	log95 := math.Log(float64(p95))
	mu := (log5 + log95) / 2
	sigma := (log95 - log5) / (2 * z95)
	l.dist = distuv.LogNormal{Mu: mu, Sigma: sigma}
	return
}

// Rand returns a random size.
func (l LogNormal) Rand() bytesize.ByteSize {
	return FromFloat64(l.dist.Rand())
}

// Mean returns the mean size.
func (l LogNormal) Mean() bytesize.ByteSize {
	return FromFloat64(l.dist.Mean())
}

// Quantile returns the size at probability p.
func (l LogNormal) Quantile(p float64) bytesize.ByteSize {
	return FromFloat64(l.dist.Quantile(p))
}

// Sample draws n sizes from s.
func Sample(s Sampler, n int) []bytesize.ByteSize {
	xs := make([]bytesize.ByteSize, n)
	for i := range xs {
		xs[i] = s.Rand()
	}
	return xs
}
