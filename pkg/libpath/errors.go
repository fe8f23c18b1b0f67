// pkg/libpath/errors.go
package libpath

import (
	"errors"
	"fmt"
)

// ErrMalformedPath indicates an artifact path with no final component
var ErrMalformedPath = errors.New("malformed artifact path")

// PathError records the artifact path that could not be classified
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%q: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
