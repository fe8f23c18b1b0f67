// pkg/directive/errors.go
package directive

import "fmt"

// Error wraps a failure with the artifact being processed
type Error struct {
	Op   string // Operation that failed ("classify" or "write")
	Path string // Artifact path
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
