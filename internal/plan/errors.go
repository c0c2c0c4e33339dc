package plan

import "fmt"

// FormatError is returned when a coordinate, position or altitude string
// can't be decoded.
type FormatError struct {
	Input  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("%q: %s", e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// DocumentError is returned when the input isn't a readable flight plan
// document.
type DocumentError struct {
	Reason string
	Err    error
}

func (e *DocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("flight plan document: %s: %v", e.Reason, e.Err)
	}
	return "flight plan document: " + e.Reason
}

func (e *DocumentError) Unwrap() error { return e.Err }

// StructureError reports a waypoint missing a required attribute or child
// element.
type StructureError struct {
	Index int // position of the waypoint in the document
	Ident string
	Field string
}

func (e *StructureError) Error() string {
	if e.Ident != "" {
		return fmt.Sprintf("waypoint %d (%s): missing %s", e.Index, e.Ident, e.Field)
	}
	return fmt.Sprintf("waypoint %d: missing %s", e.Index, e.Field)
}

// IOError is returned when a plan or route file can't be opened, read
// or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
