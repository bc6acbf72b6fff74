// Package password generates printable passwords from the operating system's random source.
package password

import (
	"io"
)

const (
	// MinChar is the lowest character produced (space).
	MinChar = 32
	// CharRange is the number of printable characters, 32 through 126.
	CharRange = 95
)

// Generator reads entropy from Source and maps it to printable characters.
// A zero Generator uses System.
type Generator struct {
	Source Source
}

// Generate returns a password of the given length, using the System source.
func Generate(length int) (string, error) {
	var g Generator
	return g.Generate(length)
}

// Generate reads exactly length bytes from the source and maps each one into [32,126].
// It does not retry. Any failure to open or fill the buffer is returned as an *Error.
func (g *Generator) Generate(length int) (string, error) {
	if length < 0 {
		return "", &Error{Kind: InvalidLength, Length: length}
	}
	buf := make([]byte, length)
	err := g.fill(buf)
	if err != nil {
		return "", err
	}
	Transform(buf)
	s := string(buf)
	for i := range buf {
		buf[i] = 0
	}
	return s, nil
}

func (g *Generator) fill(buf []byte) error {
	source := g.Source
	if source == nil {
		source = System
	}
	r, err := source.Open()
	if err != nil {
		return &Error{Kind: SourceUnavailable, Length: len(buf), Err: err}
	}
	defer r.Close()
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return &Error{Kind: ReadIncomplete, Length: len(buf), Read: n, Err: err}
	}
	return nil
}

// Transform replaces each byte b with b%95 + 32, in place.
// 66 of the 95 output characters come from 3 input values, the other 29 from 2.
func Transform(buf []byte) {
	for i, b := range buf {
		buf[i] = b%CharRange + MinChar
	}
}
