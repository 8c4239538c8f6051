package catalog

import "fmt"

// Error represents a failure to load or decode a catalog source.
type Error struct {
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
