package password

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	io.Reader
	closed bool
}

func (t *fakeHandle) Close() error {
	t.closed = true
	return nil
}

type errReader struct {
	err error
}

func (t errReader) Read(p []byte) (int, error) {
	return 0, t.err
}

func fixedSource(data []byte) (*Generator, *fakeHandle) {
	h := &fakeHandle{Reader: bytes.NewReader(data)}
	g := &Generator{Source: SourceFunc(func() (io.ReadCloser, error) {
		return h, nil
	})}
	return g, h
}

func assertPrintable(t *testing.T, s string) {
	t.Helper()
	for i := 0; i < len(s); i++ {
		if s[i] < 32 || s[i] > 126 {
			t.Fatalf("byte %d of %q out of range: %d", i, s, s[i])
		}
	}
}

func TestGenerateLength(t *testing.T) {
	for _, n := range []int{0, 1, 16, 20, 95, 1000} {
		s, err := Generate(n)
		require.NoError(t, err)
		assert.Equal(t, n, len(s))
		assertPrintable(t, s)
	}
}

func TestGenerateZero(t *testing.T) {
	g, h := fixedSource(nil)
	s, err := g.Generate(0)
	require.NoError(t, err)
	assert.Equal(t, "", s)
	assert.True(t, h.closed)
}

func TestGenerateNegative(t *testing.T) {
	_, err := Generate(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLength))
}

func TestTransform(t *testing.T) {
	buf := []byte{0, 1, 64, 65, 66, 94, 95, 189, 190, 255}
	Transform(buf)
	assert.Equal(t, []byte{32, 33, 96, 97, 98, 126, 32, 126, 32, 97}, buf)
}

func TestTransformAllBytes(t *testing.T) {
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(i)
	}
	Transform(buf)
	assertPrintable(t, string(buf))
}

func TestGenerateFixedBytes(t *testing.T) {
	input := []byte{0, 33, 94, 95, 200, 255}
	g1, h := fixedSource(input)
	a, err := g1.Generate(len(input))
	require.NoError(t, err)
	assert.Equal(t, " A~ *a", a)
	assert.True(t, h.closed)

	g2, _ := fixedSource(input)
	b, err := g2.Generate(len(input))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateReadsOnlyLength(t *testing.T) {
	g, _ := fixedSource([]byte("abcdefgh"))
	s, err := g.Generate(3)
	require.NoError(t, err)
	assert.Equal(t, 3, len(s))
}

func TestSourceUnavailable(t *testing.T) {
	cause := errors.New("permission denied")
	g := &Generator{Source: SourceFunc(func() (io.ReadCloser, error) {
		return nil, cause
	})}
	s, err := g.Generate(16)
	require.Error(t, err)
	assert.Equal(t, "", s)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
	assert.False(t, errors.Is(err, ErrReadIncomplete))
	assert.True(t, errors.Is(err, cause))
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, SourceUnavailable, perr.Kind)
}

func TestMissingDevice(t *testing.T) {
	g := &Generator{Source: Device(filepath.Join(t.TempDir(), "random"))}
	_, err := g.Generate(8)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestShortRead(t *testing.T) {
	g, h := fixedSource([]byte{1, 2, 3})
	s, err := g.Generate(10)
	require.Error(t, err)
	assert.Equal(t, "", s)
	assert.True(t, errors.Is(err, ErrReadIncomplete))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.True(t, h.closed)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Read)
	assert.Equal(t, 10, perr.Length)
}

func TestReadError(t *testing.T) {
	cause := errors.New("device error")
	h := &fakeHandle{Reader: errReader{cause}}
	g := &Generator{Source: SourceFunc(func() (io.ReadCloser, error) {
		return h, nil
	})}
	_, err := g.Generate(4)
	assert.True(t, errors.Is(err, ErrReadIncomplete))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, h.closed)
}

func TestDeviceFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "random")
	require.NoError(t, os.WriteFile(file, []byte{0, 95, 190, 126}, 0600))
	g := &Generator{Source: Device(file)}
	s, err := g.Generate(4)
	require.NoError(t, err)
	assert.Equal(t, "   ?", s)
}

func TestDistribution(t *testing.T) {
	const n = 100000
	s, err := Generate(n)
	require.NoError(t, err)
	var counts [CharRange]int
	for i := 0; i < len(s); i++ {
		counts[s[i]-MinChar]++
	}
	// characters 32..97 have 3 byte values each, 98..126 have 2
	var high, low int
	for i, c := range counts {
		assert.NotZero(t, c, "character %q", rune(i+MinChar))
		if i < 66 {
			high += c
		} else {
			low += c
		}
	}
	highMean := float64(high) / 66
	lowMean := float64(low) / 29
	assert.Greater(t, highMean, lowMean)
	assert.InDelta(t, float64(n)*3/256, highMean, 100)
	assert.InDelta(t, float64(n)*2/256, lowMean, 100)
}

func TestErrorMessages(t *testing.T) {
	err := &Error{Kind: ReadIncomplete, Length: 10, Read: 3, Err: io.ErrUnexpectedEOF}
	assert.Equal(t, "incomplete entropy read: read 3 of 10 bytes: unexpected EOF", err.Error())
	err = &Error{Kind: SourceUnavailable, Err: os.ErrPermission}
	assert.Equal(t, "entropy source unavailable: permission denied", err.Error())
}
