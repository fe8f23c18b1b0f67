// pkg/directive/emitter.go
package directive

import (
	"fmt"
	"io"
	"strings"

	"github.com/arc-language/linkbridge/pkg/libpath"
)

// Tokenize splits a generated library list on spaces and newlines,
// dropping empty tokens. Paths containing spaces are not supported: the
// generator does not quote them.
func Tokenize(input string) []string {
	return strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == '\n'
	})
}

// Emit writes directives for input to w using the default configuration
func Emit(input string, w io.Writer) error {
	return New(nil).Emit(input, w)
}

// Directives classifies every artifact of input in order and returns the
// planned directives. It stops at the first malformed path.
func (e *Emitter) Directives(input string) ([]Directive, error) {
	var all []Directive
	for _, token := range Tokenize(input) {
		plan, err := e.plan(token)
		if err != nil {
			return nil, err
		}
		all = append(all, plan...)
	}
	return all, nil
}

// Emit classifies every artifact of input in order and writes its
// directives to w, one per line. Static link order is significant, so
// artifacts are neither reordered nor deduplicated. The first malformed
// path or write error aborts emission.
func (e *Emitter) Emit(input string, w io.Writer) error {
	tokens := Tokenize(input)
	e.logger.Printf("Emitting directives for %d artifacts (system root %s)", len(tokens), e.classifier.Root())

	for _, token := range tokens {
		plan, err := e.plan(token)
		if err != nil {
			return err
		}

		for _, d := range plan {
			if _, err := fmt.Fprintln(w, d.Format(e.config.Markers)); err != nil {
				return &Error{Op: "write", Path: token, Err: err}
			}
		}
	}

	return nil
}

func (e *Emitter) plan(token string) ([]Directive, error) {
	c, err := e.classifier.Classify(token)
	if err != nil {
		return nil, &Error{Op: "classify", Path: token, Err: err}
	}

	e.logger.Printf("  %s -> name=%s kind=%s system=%t", token, c.Name, KindOf(c), c.IsSystem)
	if info, ok := libpath.StoreObject(token); ok {
		e.logger.Printf("  %s is in store object %s", token, info.Name)
	}

	return Plan(c, e.config.FrameworkSearch), nil
}
