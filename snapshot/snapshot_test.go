package snapshot

import (
	"testing"

	"github.com/fysac/xorrand/registry"
	"github.com/fysac/xorrand/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultEntry(t *testing.T, name string) (*registry.Instance, Entry) {
	t.Helper()
	k, err := registry.Lookup(name)
	require.NoError(t, err)
	in := k.Default()
	e, err := Take(in)
	require.NoError(t, err)
	return in, e
}

func TestTakeRestore(t *testing.T) {
	in, e := defaultEntry(t, "xorshift32")
	assert.Equal(t, Entry{Generator: "xorshift32", State: "1700fade"}, e)

	in.Uint32()
	e, err := Take(in)
	require.NoError(t, err)
	restored, err := e.Restore()
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		require.Equal(t, in.Uint64(), restored.Uint64())
	}
}

func TestRestoreErrors(t *testing.T) {
	_, err := Entry{Generator: "nope", State: "00"}.Restore()
	assert.EqualError(t, err, `unknown generator "nope"`)

	_, err = Entry{Generator: "xorshift32", State: "zz"}.Restore()
	assert.Error(t, err)

	_, err = Entry{Generator: "xorshift32", State: "00000000"}.Restore()
	assert.ErrorIs(t, err, seed.ErrInvalidSeed)

	_, err = Entry{Generator: "xorshift32", State: "0100"}.Restore()
	assert.ErrorIs(t, err, seed.ErrStateLength)
}

func testFile(t *testing.T) *File {
	f := NewFile()
	_, a := defaultEntry(t, "xyza8a")
	_, b := defaultEntry(t, "xorshift128p")
	_, c := defaultEntry(t, "mult13p1")
	f.Set("zeta", a)
	f.Set("alpha", b)
	f.Set("123", c)
	return f
}

func TestJSON(t *testing.T) {
	f := testFile(t)
	b, err := f.Encode(FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, `{
	"zeta": {
		"generator": "xyza8a",
		"state": "defa0017"
	},
	"alpha": {
		"generator": "xorshift128p",
		"state": "1700fade1700fade1700fade1700fade"
	},
	"123": {
		"generator": "mult13p1",
		"state": "de"
	}
}
`, string(b))

	decoded, err := Decode(b, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "123"}, decoded.Labels())
	e, ok := decoded.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "xorshift128p", e.Generator)
}

func TestYAML(t *testing.T) {
	f := testFile(t)
	b, err := f.Encode(FormatYAML)
	require.NoError(t, err)

	decoded, err := Decode(b, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, f.Labels(), decoded.Labels())
	for _, label := range f.Labels() {
		want, _ := f.Get(label)
		got, _ := decoded.Get(label)
		assert.Equal(t, want, got, label)
	}
}

func TestDecodeRejectsBadEntries(t *testing.T) {
	_, err := Decode([]byte(`{"a": {"generator": "xorshift64", "state": "0000000000000000"}}`), FormatJSON)
	assert.ErrorIs(t, err, seed.ErrInvalidSeed)

	_, err = Decode([]byte("a:\n  generator: xorshift99\n  state: \"00\"\n"), FormatYAML)
	assert.EqualError(t, err, `entry "a": unknown generator "xorshift99"`)

	_, err = Decode([]byte("- not\n- a mapping\n"), FormatYAML)
	assert.Error(t, err)

	f, err := Decode(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Len())
}

func TestSetReplaces(t *testing.T) {
	f := testFile(t)
	_, e := defaultEntry(t, "xorshift8")
	f.Set("zeta", e)
	assert.Equal(t, []string{"zeta", "alpha", "123"}, f.Labels())
	got, _ := f.Get("zeta")
	assert.Equal(t, "xorshift8", got.Generator)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("state.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("STATE.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("state.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("state"))
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte(`{"a": {"generator": "xorshift8", "state": "01"}}`))
	f.Add([]byte("a:\n  generator: xabc\n  state: \"00000000\"\n"))
	f.Fuzz(func(t *testing.T, b []byte) {
		Decode(b, FormatJSON)
		Decode(b, FormatYAML)
	})
}
