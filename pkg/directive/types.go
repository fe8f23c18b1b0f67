// pkg/directive/types.go
package directive

import (
	"io"
	"log"
	"os"

	"github.com/arc-language/linkbridge/pkg/libpath"
)

// Kind is the linkage kind of a link directive
type Kind string

const (
	// KindStatic links a static archive
	KindStatic Kind = "static"
	// KindDylib links a shared library
	KindDylib Kind = "dylib"
	// KindFramework links a framework bundle
	KindFramework Kind = "framework"
)

// Search path kinds
const (
	searchNative    = "native"
	searchFramework = "framework"
)

// Markers are the keys the consuming build tool recognizes
type Markers struct {
	Search string // Key of search-path lines
	Link   string // Key of link lines
}

var (
	// CargoMarkers are the build script keys understood by Cargo
	CargoMarkers = Markers{Search: "cargo:rustc-link-search", Link: "cargo:rustc-link-lib"}

	// PlainMarkers render directives without the cargo namespace
	PlainMarkers = Markers{Search: "search", Link: "link"}
)

// Config controls directive emission
type Config struct {
	SystemRoot      string      // System library root (default: libpath.DefaultSystemRoot)
	Markers         Markers     // Output keys (default: CargoMarkers)
	FrameworkSearch bool        // Emit a framework search path for non-system frameworks
	Logger          *log.Logger // Custom logger (optional)
	Debug           bool        // Enable debug logging
}

// Emitter writes linker directives for a generated library list
type Emitter struct {
	config     *Config
	classifier libpath.Classifier
	logger     *log.Logger
}

// New creates an emitter, filling in defaults for unset fields
func New(cfg *Config) *Emitter {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	cfg = &c
	if cfg.Markers == (Markers{}) {
		cfg.Markers = CargoMarkers
	}

	// Setup logger
	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[linkbridge] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Emitter{
		config:     cfg,
		classifier: libpath.Classifier{SystemRoot: cfg.SystemRoot},
		logger:     logger,
	}
}
