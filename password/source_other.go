//go:build !unix

package password

import (
	"crypto/rand"
	"io"
)

// System is the operating system's secure random source.
// Without a random device, it uses the platform CSPRNG through crypto/rand.
var System Source = SourceFunc(func() (io.ReadCloser, error) {
	return io.NopCloser(rand.Reader), nil
})
