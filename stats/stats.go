// Package stats computes a quick quality report over a sample of generator
// output. It is a smoke test, not a substitute for a real test battery.
package stats

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"

	"github.com/DataDog/zstd"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Number of distinct byte values, and so of chi-square buckets.
const buckets = 256

var ErrShortSample = errors.New("sample needs at least two bytes")

type Report struct {
	Generator string
	Samples   int
	// Mean and standard deviation of the byte values. Uniform bytes give
	// 127.5 and about 73.9.
	Mean, StdDev float64
	// Shannon entropy of the byte histogram, in bits per byte.
	Entropy float64
	// Pearson correlation between each byte and the next. NaN when the
	// sample is constant.
	SerialCorrelation float64
	// Chi-square statistic over the byte histogram and its p-value with
	// 255 degrees of freedom.
	ChiSquare, PValue float64
	// Compressed size over sample size using zstd level 1.
	CompressionRatio float64
}

// Sample reads n bytes from src.
func Sample(src io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(src, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Analyze builds a Report over sample.
func Analyze(sample []byte) (*Report, error) {
	if len(sample) < 2 {
		return nil, ErrShortSample
	}

	values := make([]float64, len(sample))
	var counts [buckets]float64
	for i, b := range sample {
		values[i] = float64(b)
		counts[b]++
	}

	r := &Report{
		Samples:           len(sample),
		Mean:              stat.Mean(values, nil),
		StdDev:            stat.StdDev(values, nil),
		SerialCorrelation: stat.Correlation(values[:len(values)-1], values[1:], nil),
	}

	expected := float64(len(sample)) / buckets
	probs := make([]float64, buckets)
	for i, c := range counts {
		d := c - expected
		r.ChiSquare += d * d / expected
		probs[i] = c / float64(len(sample))
	}
	r.PValue = distuv.ChiSquared{K: buckets - 1}.Survival(r.ChiSquare)
	r.Entropy = stat.Entropy(probs) / math.Ln2

	compressed, err := zstd.CompressLevel(nil, sample, 1)
	if err != nil {
		return nil, err
	}
	r.CompressionRatio = float64(len(compressed)) / float64(len(sample))
	return r, nil
}

// JSON renders the report as tab indented JSON with a fixed key order.
// NaN values are written as null.
func (r *Report) JSON() ([]byte, error) {
	m := orderedmap.New[string, any]()
	if r.Generator != "" {
		m.Set("generator", r.Generator)
	}
	m.Set("samples", r.Samples)
	m.Set("mean", finite(r.Mean))
	m.Set("stddev", finite(r.StdDev))
	m.Set("entropy", finite(r.Entropy))
	m.Set("serial_correlation", finite(r.SerialCorrelation))
	m.Set("chi_square", finite(r.ChiSquare))
	m.Set("p_value", finite(r.PValue))
	m.Set("compression_ratio", finite(r.CompressionRatio))

	b, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = json.Indent(&buf, b, "", "\t"); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func finite(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}
