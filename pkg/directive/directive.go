// pkg/directive/directive.go
package directive

import (
	"fmt"

	"github.com/arc-language/linkbridge/pkg/libpath"
)

// Directive is one output line
type Directive struct {
	Search bool   // Search-path line if true, link line otherwise
	Kind   string // "native"/"framework" for search lines, a Kind for link lines
	Value  string // Directory or link name
}

// SearchDirective adds dir to the native library search path
func SearchDirective(dir string) Directive {
	return Directive{Search: true, Kind: searchNative, Value: dir}
}

// FrameworkSearchDirective adds dir to the framework search path
func FrameworkSearchDirective(dir string) Directive {
	return Directive{Search: true, Kind: searchFramework, Value: dir}
}

// LinkDirective links the library name with the given kind
func LinkDirective(kind Kind, name string) Directive {
	return Directive{Kind: string(kind), Value: name}
}

// Format renders the directive with the given markers, without a newline
func (d Directive) Format(m Markers) string {
	key := m.Link
	if d.Search {
		key = m.Search
	}
	return fmt.Sprintf("%s=%s=%s", key, d.Kind, d.Value)
}

// String renders the directive with CargoMarkers
func (d Directive) String() string {
	return d.Format(CargoMarkers)
}

// KindOf returns the link kind of a classified artifact
func KindOf(c libpath.Classification) Kind {
	switch {
	case c.IsFramework:
		return KindFramework
	case c.IsStatic:
		return KindStatic
	default:
		return KindDylib
	}
}

// NeedsSearchPath reports whether the artifact's directory must be passed as
// a native search path. Non-system libraries always need one. System shared
// libraries are found by the default linker path, but system static archives
// are not (rustc fails with "could not find native static library").
func NeedsSearchPath(c libpath.Classification) bool {
	return (!c.IsSystem && !c.IsFramework) || c.IsStatic
}

// Plan returns the directives for one artifact: an optional search path
// followed by exactly one link directive
func Plan(c libpath.Classification, frameworkSearch bool) []Directive {
	plan := make([]Directive, 0, 2)

	switch {
	case NeedsSearchPath(c):
		plan = append(plan, SearchDirective(c.Dir))
	case frameworkSearch && c.IsFramework && !c.IsSystem:
		plan = append(plan, FrameworkSearchDirective(c.Dir))
	}

	return append(plan, LinkDirective(KindOf(c), c.Name))
}
