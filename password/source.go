package password

import (
	"io"
	"os"
)

// Source opens a handle to a stream of random bytes.
// Generate closes the handle before returning.
type Source interface {
	Open() (io.ReadCloser, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (io.ReadCloser, error)

func (f SourceFunc) Open() (io.ReadCloser, error) {
	return f()
}

// Device is the path of a random device file.
type Device string

// URandom is the conventional secure random device on unix systems.
const URandom Device = "/dev/urandom"

func (d Device) Open() (io.ReadCloser, error) {
	return os.Open(string(d))
}
