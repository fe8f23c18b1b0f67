// pkg/libpath/constants.go
package libpath

const (
	// DefaultSystemRoot is the system library root used when none is configured
	DefaultSystemRoot = "/usr/lib/"

	// FrameworkSuffix marks a framework bundle
	FrameworkSuffix = ".framework"

	// LibPrefix is the platform prefix stripped from library names
	LibPrefix = "lib"

	// StaticExt prefixes the full extension of static archives
	StaticExt = ".a"
)

// sharedExtensions are the extensions a version suffix may follow
var sharedExtensions = []string{".so", ".dylib"}
