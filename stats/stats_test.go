package stats

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/fysac/xorrand/misc"
	"github.com/fysac/xorrand/rngcore"
	"github.com/fysac/xorrand/xorshift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeGoodGenerator(t *testing.T) {
	g := xorshift.Default128p()
	sample, err := Sample(rngcore.New[uint64](&g), 1<<16)
	require.NoError(t, err)

	r, err := Analyze(sample)
	require.NoError(t, err)
	assert.Equal(t, 1<<16, r.Samples)
	assert.InDelta(t, 127.5, r.Mean, 2)
	assert.InDelta(t, 73.9, r.StdDev, 2)
	assert.InDelta(t, 0, r.SerialCorrelation, 0.05)
	assert.Greater(t, r.Entropy, 7.9)
	assert.Greater(t, r.CompressionRatio, 0.95)
	assert.True(t, r.PValue > 0 && r.PValue <= 1)
}

func TestAnalyzeWeakGenerator(t *testing.T) {
	// Mult13P1 has period 256: the output repeats and compresses well.
	g := misc.DefaultMult13P1()
	sample, err := Sample(rngcore.New[uint8](&g), 1<<14)
	require.NoError(t, err)

	r, err := Analyze(sample)
	require.NoError(t, err)
	// Every byte appears exactly 64 times.
	assert.InDelta(t, 0, r.ChiSquare, 1e-9)
	assert.InDelta(t, 8, r.Entropy, 1e-9)
	assert.Less(t, r.CompressionRatio, 0.2)
}

func TestAnalyzeConstant(t *testing.T) {
	r, err := Analyze(bytes.Repeat([]byte{7}, 1024))
	require.NoError(t, err)
	assert.Equal(t, 7.0, r.Mean)
	assert.Equal(t, 0.0, r.StdDev)
	assert.True(t, math.IsNaN(r.SerialCorrelation))
	assert.InDelta(t, 0, r.PValue, 1e-9)

	b, err := r.JSON()
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Nil(t, decoded["serial_correlation"])
	assert.Equal(t, 1024.0, decoded["samples"])
}

func TestAnalyzeShort(t *testing.T) {
	_, err := Analyze([]byte{1})
	assert.ErrorIs(t, err, ErrShortSample)
}

func TestJSONKeyOrder(t *testing.T) {
	r := &Report{Generator: "xorshift32", Samples: 2}
	b, err := r.JSON()
	require.NoError(t, err)
	keys := []string{`"generator"`, `"samples"`, `"mean"`, `"stddev"`, `"entropy"`,
		`"serial_correlation"`, `"chi_square"`, `"p_value"`, `"compression_ratio"`}
	last := -1
	for _, k := range keys {
		i := bytes.Index(b, []byte(k))
		require.Greater(t, i, last, "key %s out of order", k)
		last = i
	}
	assert.True(t, bytes.HasSuffix(b, []byte("}\n")))
}
