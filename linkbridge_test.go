package linkbridge

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGeneratedTo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ReadGeneratedTo("/some/libA.a /some/libB.so", &out))
	assert.Equal(t,
		"cargo:rustc-link-search=native=/some\n"+
			"cargo:rustc-link-lib=static=A\n"+
			"cargo:rustc-link-search=native=/some\n"+
			"cargo:rustc-link-lib=dylib=B\n",
		out.String())
}

func TestReadGeneratedToMalformed(t *testing.T) {
	var out bytes.Buffer
	err := ReadGeneratedTo("/some/..", &out)
	require.ErrorIs(t, err, ErrMalformedPath)
	assert.Empty(t, out.String())

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "emit", e.Op)
}

func TestReadGeneratedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmake_generated_rust_wrapper_libs")
	require.NoError(t, os.WriteFile(path, []byte("/usr/lib/x86_64-linux-gnu/libpng16.a\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, ReadGeneratedFile(path, &Config{Markers: PlainMarkers}, &out))
	assert.Equal(t, "search=native=/usr/lib/x86_64-linux-gnu\nlink=static=png16\n", out.String())
}

func TestReadGeneratedFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	err := ReadGeneratedFile(path, nil, &bytes.Buffer{})
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "read "+path)
}

func TestClassify(t *testing.T) {
	c, err := Classify("/usr/lib/x86_64-linux-gnu/libpng16.so.16.37.0")
	require.NoError(t, err)
	assert.Equal(t, "png16", c.Name)
	assert.True(t, c.IsSystem)
	assert.False(t, c.IsStatic)
}
