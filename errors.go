package genpass

import (
	"errors"
)

type ErrorKind int

const (
	// ConfigError means the length argument could not be parsed.
	ConfigError ErrorKind = iota + 1
	// AppError means password generation failed.
	AppError
)

// Label is the prefix printed before the error message.
func (k ErrorKind) Label() string {
	switch k {
	case ConfigError:
		return "Configuration error"
	case AppError:
		return "Application error"
	default:
		return "Error"
	}
}

// ExitCode is the process exit status for the kind.
func (k ErrorKind) ExitCode() int {
	switch k {
	case ConfigError:
		return 1
	case AppError:
		return 2
	default:
		return 1
	}
}

type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status for err: 0 for nil, otherwise the code of its kind.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind.ExitCode()
	}
	return 1
}
