package password

import (
	"fmt"
)

type ErrorKind int

const (
	InvalidLength ErrorKind = iota + 1
	SourceUnavailable
	ReadIncomplete
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidLength:
		return "invalid length"
	case SourceUnavailable:
		return "entropy source unavailable"
	case ReadIncomplete:
		return "incomplete entropy read"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrInvalidLength     = &Error{Kind: InvalidLength}
	ErrSourceUnavailable = &Error{Kind: SourceUnavailable}
	ErrReadIncomplete    = &Error{Kind: ReadIncomplete}
)

// Error is returned by Generate.
type Error struct {
	Kind ErrorKind
	// Length is the requested password length.
	Length int
	// Read is the number of bytes read before a ReadIncomplete failure.
	Read int
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidLength:
		return fmt.Sprintf("%v: %d", e.Kind, e.Length)
	case ReadIncomplete:
		return fmt.Sprintf("%v: read %d of %d bytes: %v", e.Kind, e.Read, e.Length, e.Err)
	}
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
