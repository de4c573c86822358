// Package stats summarises sets of byte sizes and generates synthetic ones.
package stats

import (
	"errors"
	"io"
	"math"
	"sort"

	"github.com/heistp/bytesize"
	"github.com/heistp/bytesize/pretty"
	"gonum.org/v1/gonum/stat"
)

// ErrEmpty is returned when analyzing no samples.
var ErrEmpty = errors.New("unable to analyze empty sample")

// Stats contains summary statistics for a sample of sizes.
//
// Count, Min, Max, Sum and Mean are exact. GeoMean, Median, P95 and StdDev
// are computed on float64 values and are approximate above 2^53 bytes.
type Stats struct {
	// Count is the number of samples.
	Count int

	// Min is the smallest sample.
	Min bytesize.ByteSize

	// Max is the largest sample.
	Max bytesize.ByteSize

	// Sum is the exact total of all samples.
	Sum bytesize.ByteSize

	// Mean is the arithmetic mean, rounded to the nearest byte with halves
	// away from zero.
	Mean bytesize.ByteSize

	// GeoMean is the geometric mean of the positive samples, or zero if
	// there are none.
	GeoMean bytesize.ByteSize

	// Median is the median value.
	Median bytesize.ByteSize

	// P95 is the 95th percentile value.
	P95 bytesize.ByteSize

	// StdDev is the sample standard deviation, zero for a single sample.
	StdDev bytesize.ByteSize
}

// Sum returns the total of xs, or an error wrapping bytesize.ErrOverflow
// if it does not fit.
func Sum(xs []bytesize.ByteSize) (sum bytesize.ByteSize, err error) {
	for _, x := range xs {
		if sum, err = sum.AddChecked(x); err != nil {
			return 0, err
		}
	}
	return
}

// Analyze analyzes the sizes to produce stats.
func Analyze(xs []bytesize.ByteSize) (s Stats, err error) {
	if len(xs) == 0 {
		err = ErrEmpty
		return
	}
	if s.Sum, err = Sum(xs); err != nil {
		return
	}
	s.Count = len(xs)

	f := make([]float64, len(xs))
	pos := make([]float64, 0, len(xs))
	s.Min, s.Max = xs[0], xs[0]
	for i, x := range xs {
		s.Min = bytesize.Min(s.Min, x)
		s.Max = bytesize.Max(s.Max, x)
		f[i] = float64(x)
		if x > 0 {
			pos = append(pos, float64(x))
		}
	}
	sort.Float64s(f)

	if s.Mean, err = mean(s.Sum, s.Count); err != nil {
		return
	}
	if len(pos) > 0 {
		s.GeoMean = FromFloat64(stat.GeometricMean(pos, nil))
	}
	s.Median = FromFloat64(stat.Quantile(0.5, stat.Empirical, f, nil))
	s.P95 = FromFloat64(stat.Quantile(0.95, stat.Empirical, f, nil))
	if len(f) > 1 {
		s.StdDev = FromFloat64(stat.StdDev(f, nil))
	}
	return
}

// mean returns sum / n rounded to the nearest byte, halves away from zero.
func mean(sum bytesize.ByteSize, n int) (m bytesize.ByteSize, err error) {
	d := bytesize.FromInt64(int64(n))
	if m, err = sum.Div(d); err != nil {
		return
	}
	var r bytesize.ByteSize
	if r, err = sum.Rem(d); err != nil {
		return
	}
	// |r| < d, so doubling cannot overflow
	if 2*r.Int64() >= d.Int64() {
		m = m.Inc()
	} else if -2*r.Int64() >= d.Int64() {
		m = m.Dec()
	}
	return
}

// Emit prints the stats in text form.
func (s *Stats) Emit(w io.Writer) {
	tw := pretty.NewTableWriter(w)
	tw.Printf("Count:\t%d", s.Count)
	tw.Printf("Sum:\t%d", s.Sum)
	tw.Printf("Min:\t%d", s.Min)
	tw.Printf("Max:\t%d", s.Max)
	tw.Printf("Mean:\t%d", s.Mean)
	tw.Printf("GeoMean:\t%d", s.GeoMean)
	tw.Printf("Median:\t%d", s.Median)
	tw.Printf("P95:\t%d", s.P95)
	tw.Printf("StdDev:\t%d", s.StdDev)
	tw.Flush()
}

// FromFloat64 rounds f to the nearest byte, saturating at MinValue and
// MaxValue. NaN is zero.
func FromFloat64(f float64) bytesize.ByteSize {
	switch {
	case math.IsNaN(f):
		return 0
	// float64(math.MaxInt64) rounds up to 2^63
	case f >= math.MaxInt64:
		return bytesize.MaxValue
	case f <= math.MinInt64:
		return bytesize.MinValue
	}
	return bytesize.ByteSize(math.Round(f))
}
