// Package input opens the data source (a named file or standard input) and
// converts it to UTF-8 on the fly.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrSourceUnavailable is returned when the input file cannot be opened.
var ErrSourceUnavailable = errors.New("input source unavailable")

// Supported input encodings.
var Encodings = []string{"utf8", "cp437", "cp850", "iso-8859-1"}

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Open returns the named file, or stdin when path is empty. Stdin is wrapped
// so that closing it is a no-op.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return f, nil
}

func decoderFor(name string) (*encoding.Decoder, error) {
	switch name {
	case "", "utf8":
		return nil, nil
	case "cp437":
		return charmap.CodePage437.NewDecoder(), nil
	case "cp850":
		return charmap.CodePage850.NewDecoder(), nil
	case "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
}

// Decode converts r from the given encoding to UTF-8. A leading UTF-8 BOM is
// dropped.
func Decode(r io.Reader, name string) (io.Reader, error) {
	decoder, err := decoderFor(name)
	if err != nil {
		return nil, err
	}

	if decoder != nil {
		r = transform.NewReader(r, decoder)
	}
	return stripUTF8BOM(r), nil
}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the stream
func stripUTF8BOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
