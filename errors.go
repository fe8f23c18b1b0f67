// errors.go
package linkbridge

import (
	"fmt"

	"github.com/arc-language/linkbridge/pkg/libpath"
)

// ErrMalformedPath indicates a library path with no final component
var ErrMalformedPath = libpath.ErrMalformedPath

// Error wraps an error with additional context
type Error struct {
	Op   string // Operation that failed
	Path string // Library list path if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
