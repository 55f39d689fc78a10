package deck

import "errors"

// ErrInputFormat matches any *InputFormatError via errors.Is.
var ErrInputFormat = errors.New("input format")

// Reason classifies why pasted input was rejected.
type Reason int

const (
	ReasonSyntax Reason = iota
	ReasonNotArray
	ReasonEmpty
)

func (r Reason) String() string {
	switch r {
	case ReasonSyntax:
		return "syntax"
	case ReasonNotArray:
		return "not_array"
	case ReasonEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// InputFormatError is returned when text is not a non-empty JSON array.
type InputFormatError struct {
	Reason Reason
	Err    error
}

func (e *InputFormatError) Error() string {
	if e.Reason == ReasonSyntax {
		return "Invalid JSON format. Please check your input."
	}
	return "Please enter valid JSON array of cards"
}

func (e *InputFormatError) Unwrap() error { return e.Err }

func (e *InputFormatError) Is(target error) bool { return target == ErrInputFormat }
