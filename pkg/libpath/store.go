// pkg/libpath/store.go
package libpath

import (
	"zombiezen.com/go/nix"
)

// StoreObject reports the Nix store object containing path, if any.
// Artifacts built against nixpkgs live outside the system root and always
// get a search path, so this is informational only.
func StoreObject(path string) (StoreInfo, bool) {
	storePath, sub, err := nix.DefaultStoreDirectory.ParsePath(path)
	if err != nil {
		return StoreInfo{}, false
	}

	return StoreInfo{
		Name:   storePath.Name(),
		Digest: storePath.Digest(),
		Sub:    sub,
	}, true
}
