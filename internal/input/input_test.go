package input

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3\n"), 0600))

	rc, err := Open(path, strings.NewReader("ignored"))
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "1 2 3\n", string(data))
}

func TestOpenStdinWhenNoPath(t *testing.T) {
	rc, err := Open("", strings.NewReader("from stdin"))
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"), nil)

	require.ErrorIs(t, err, ErrSourceUnavailable)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		input    []byte
		want     string
	}{
		{"utf8 passthrough", "utf8", []byte("héllo\n"), "héllo\n"},
		{"default is utf8", "", []byte("abc"), "abc"},
		{"utf8 bom stripped", "utf8", []byte("\xEF\xBB\xBFword"), "word"},
		{"cp437", "cp437", []byte{0x82, 't', 0x82}, "été"},
		{"cp850", "cp850", []byte{0x90, 'X'}, "ÉX"},
		{"iso-8859-1", "iso-8859-1", []byte{'c', 'a', 'f', 0xE9}, "café"},
		{"short input", "utf8", []byte("a"), "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Decode(strings.NewReader(string(tt.input)), tt.encoding)
			require.NoError(t, err)

			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestDecodeUnsupported(t *testing.T) {
	_, err := Decode(strings.NewReader(""), "ebcdic")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported encoding: ebcdic")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(strings.NewReader("")))

	f, err := os.Open(filepath.Join(t.TempDir()))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
