// errors.go
package apd

import (
	"errors"
	"fmt"

	"github.com/Michael-Sebero/Arch-Package-Dictionary/pkg/source"
)

var (
	// ErrEmptyQuery indicates a search was requested without a term
	ErrEmptyQuery = errors.New("search term is required")
)

// Error wraps an error with additional context
type Error struct {
	Op     string            // Operation that failed
	Source source.SourceType // Source involved if applicable
	Err    error             // Underlying error
}

func (e *Error) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
