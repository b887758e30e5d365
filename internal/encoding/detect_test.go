package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/padraigob/resold/internal/encoding"
)

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()

	b, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(b)
}

func TestNewUTF8Reader_PlainUTF8(t *testing.T) {
	r, err := encoding.NewUTF8Reader(strings.NewReader("name,purchase_price\nLámpa,12.34\n"))
	require.NoError(t, err)
	assert.Equal(t, "name,purchase_price\nLámpa,12.34\n", readAll(t, r))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name\nLamp\n")...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "name\nLamp\n", readAll(t, r))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	in := []byte{0xFF, 0xFE}
	for _, c := range "name\nLamp\n" {
		in = append(in, byte(c), 0x00)
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "name\nLamp\n", readAll(t, r))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	enc, err := charmap.Windows1252.NewEncoder().Bytes([]byte("Café €9\n"))
	require.NoError(t, err)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(enc))
	require.NoError(t, err)
	assert.Equal(t, "Café €9\n", readAll(t, r))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	r, err := encoding.NewUTF8Reader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, readAll(t, r))
}
