// pkg/libpath/classify.go
package libpath

import (
	"path/filepath"
	"strings"
)

var defaultClassifier = Classifier{}

// Classify classifies path against DefaultSystemRoot
func Classify(path string) (Classification, error) {
	return defaultClassifier.Classify(path)
}

// Root returns the system library root in effect
func (c Classifier) Root() string {
	if c.SystemRoot == "" {
		return DefaultSystemRoot
	}
	return c.SystemRoot
}

// Classify derives the directory, link name and kind of one artifact path.
// It never touches the filesystem.
//
// Examples:
//
//	/some/path/liblibstatic.a                  -> "libstatic", static
//	/usr/lib/x86_64-linux-gnu/libpng16.so.16.37.0 -> "png16", system
//	/AAA/BBB.framework                         -> "BBB", framework
func (c Classifier) Classify(path string) (Classification, error) {
	name, err := FileName(path)
	if err != nil {
		return Classification{}, err
	}

	dir := filepath.Dir(strings.TrimRight(path, string(filepath.Separator)))
	result := Classification{
		Dir:      dir,
		IsSystem: IsUnder(dir, c.Root()),
	}

	if strings.HasSuffix(path, FrameworkSuffix) {
		result.IsFramework = true
		result.Name = strings.TrimPrefix(strings.TrimSuffix(name, FrameworkSuffix), LibPrefix)
		result.Ext = FrameworkSuffix
		return result, nil
	}

	libName, _, _ := SplitFileAtDot(name)
	result.Name = strings.TrimPrefix(libName, LibPrefix)
	result.Ext = strings.TrimPrefix(name, libName)
	result.IsStatic = strings.HasPrefix(result.Ext, StaticExt)
	result.Version = versionSuffix(result.Ext)

	return result, nil
}

// versionSuffix extracts the version from a full extension:
// ".so.3" -> "3", ".1.2.dylib" -> "1.2", ".a" -> ""
func versionSuffix(ext string) string {
	for _, shared := range sharedExtensions {
		if v, ok := strings.CutPrefix(ext, shared+"."); ok {
			return v
		}
		if v, ok := strings.CutSuffix(ext, shared); ok && v != "" {
			return strings.TrimPrefix(v, ".")
		}
	}
	return ""
}
