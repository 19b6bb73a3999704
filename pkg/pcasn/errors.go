package pcasn

import "fmt"

// IntegrityError reports a bond endpoint that names an atom identifier
// never declared in the atoms.aid block.
type IntegrityError struct {
	ID   string
	Line int
}

func (e *IntegrityError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("pcasn: line %d: atom ID does not exist: %s", e.Line, e.ID)
	}
	return fmt.Sprintf("pcasn: atom ID does not exist: %s", e.ID)
}

// StreamError reports that the input could not be read any further.
type StreamError struct {
	Line int
	Err  error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("pcasn: after line %d: %v", e.Line, e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }
