package profile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/wrap_ive_go/wraps"
	"github.com/on-the-ground/wrap_ive_go/wraps/profile"
)

func TestLoadFromPathMissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := profile.LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, profile.Default(), cfg)
}

func TestLoadFromPathMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("memo: true\ntrace: true\ntraceUnit: \"____\"\n"), 0o600))

	cfg, err := profile.LoadFromPath(path)
	require.NoError(t, err)
	assert.True(t, cfg.Memo)
	assert.True(t, cfg.Count) // default survives when the file omits it
	assert.True(t, cfg.Trace)
	assert.Equal(t, "____", cfg.TraceUnit)
}

func TestLoadFromPathUnreadableExistingPathErrors(t *testing.T) {
	// a directory where a file is expected: exists, but cannot be read
	_, err := profile.LoadFromPath(t.TempDir())
	assert.Error(t, err)
}

func TestLoadFromPathMalformedYamlErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("memo: [unclosed"), 0o600))

	_, err := profile.LoadFromPath(path)
	assert.Error(t, err)
}

func TestPipelineAppliesEnabledLayers(t *testing.T) {
	invoked := 0
	target := wraps.Lift2("foo", "", func(a, b int) int {
		invoked++
		return a + b
	})

	p := profile.Config{Memo: true, Count: true}.Pipeline()
	wrapped := p.Apply(target)

	for i := 0; i < 3; i++ {
		res, err := wrapped.Invoke(4, 3)
		require.NoError(t, err)
		assert.Equal(t, 7, res)
	}

	// count sits outside memo: every logical call is counted, the body ran once
	assert.Equal(t, uint64(3), p.Counter.Calls("foo"))
	assert.Equal(t, 1, invoked)
}

func TestPipelineDisabledLayersAreTransparent(t *testing.T) {
	var buf bytes.Buffer
	target := wraps.Lift2("foo", "docs", func(a, b int) int { return a + b })

	p := profile.Config{}.Pipeline(profile.WithTraceWriter(&buf))
	wrapped := p.Apply(target)

	res, err := wrapped.Invoke(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, res)
	assert.Equal(t, "foo", wrapped.Name)
	assert.Equal(t, "docs", wrapped.Doc)
	assert.Zero(t, buf.Len())
	assert.Equal(t, uint64(0), p.Counter.Calls("foo"))
}

func TestPipelineTraceWritesToConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	target := wraps.Lift1("ident", "", func(n int) int { return n })

	p := profile.Config{Trace: true, TraceUnit: "__"}.Pipeline(profile.WithTraceWriter(&buf))
	wrapped := p.Apply(target)

	_, err := wrapped.Invoke(5)
	require.NoError(t, err)
	assert.Equal(t, " --> ident(5)\n <-- ident(5) == 5\n", buf.String())
}
