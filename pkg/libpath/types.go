// pkg/libpath/types.go
package libpath

// Classification describes one library artifact as the linker sees it
type Classification struct {
	Dir         string // Parent directory of the artifact
	Name        string // Link name (e.g., "png16" from libpng16.so.16.37.0)
	Ext         string // Full extension from the first dot (e.g., ".so.16.37.0")
	Version     string // Version suffix if detected (e.g., "16.37.0")
	IsStatic    bool   // True for .a archives, never for frameworks
	IsSystem    bool   // True if Dir is under the system library root
	IsFramework bool   // True for .framework bundles
}

// StoreInfo identifies the Nix store object an artifact belongs to
type StoreInfo struct {
	Name   string // Store object name (e.g., "zlib-1.3.1")
	Digest string // Store path digest
	Sub    string // Path of the artifact inside the store object
}

// Classifier classifies artifact paths against a system library root
type Classifier struct {
	// SystemRoot is the directory whose contents the linker finds by default.
	// Empty means DefaultSystemRoot.
	SystemRoot string
}
