// linkbridge.go
package linkbridge

import (
	"io"
	"os"

	"github.com/arc-language/linkbridge/pkg/directive"
	"github.com/arc-language/linkbridge/pkg/input"
	"github.com/arc-language/linkbridge/pkg/libpath"
)

// Re-export types for convenience
type (
	Classification = libpath.Classification
	Directive      = directive.Directive
	Config         = directive.Config
	Markers        = directive.Markers
	Kind           = directive.Kind
)

// Re-export constants
const (
	KindStatic        = directive.KindStatic
	KindDylib         = directive.KindDylib
	KindFramework     = directive.KindFramework
	DefaultSystemRoot = libpath.DefaultSystemRoot
)

// Re-export marker sets
var (
	CargoMarkers = directive.CargoMarkers
	PlainMarkers = directive.PlainMarkers
)

// Classify classifies one library artifact path against DefaultSystemRoot
func Classify(path string) (Classification, error) {
	return libpath.Classify(path)
}

// ReadGenerated writes Cargo directives for the space separated library
// list produced by the CMake export step to stdout. It is meant to be
// called from a build script.
func ReadGenerated(libs string) error {
	return ReadGeneratedTo(libs, os.Stdout)
}

// ReadGeneratedTo writes Cargo directives for libs to w
func ReadGeneratedTo(libs string, w io.Writer) error {
	if err := directive.Emit(libs, w); err != nil {
		return &Error{Op: "emit", Err: err}
	}
	return nil
}

// ReadGeneratedFile reads the library list at path and writes directives
// to w using cfg (nil for defaults)
func ReadGeneratedFile(path string, cfg *Config, w io.Writer) error {
	libs, err := input.Read(path)
	if err != nil {
		return &Error{Op: "read", Path: path, Err: err}
	}

	if err := directive.New(cfg).Emit(libs, w); err != nil {
		return &Error{Op: "emit", Path: path, Err: err}
	}
	return nil
}
