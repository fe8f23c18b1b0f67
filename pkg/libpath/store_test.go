package libpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreObject(t *testing.T) {
	info, ok := StoreObject("/nix/store/s66mzxpvicwk07gjbjfw9izjfa797vsw-zlib-1.3.1/lib/libz.so.1")
	if assert.True(t, ok) {
		assert.Equal(t, "zlib-1.3.1", info.Name)
		assert.Equal(t, "s66mzxpvicwk07gjbjfw9izjfa797vsw", info.Digest)
	}

	_, ok = StoreObject("/usr/lib/x86_64-linux-gnu/libpng16.so.16.37.0")
	assert.False(t, ok)
}

func TestCanonicalVersion(t *testing.T) {
	assert.Equal(t, "v16.37.0", CanonicalVersion("16.37.0"))
	assert.Equal(t, "v3.0.0", CanonicalVersion("3"))
	assert.Equal(t, "3.19.4.0", CanonicalVersion("3.19.4.0"))
	assert.Equal(t, "", CanonicalVersion(""))
}
