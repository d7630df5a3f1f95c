package external

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"entropylab/pkg/table"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadCorpusMissing(t *testing.T) {
	_, err := ReadCorpus(filepath.Join(t.TempDir(), "nope.txt"), "utf-8")
	assert.ErrorIs(t, err, ErrInputUnavailable)
}

func TestReadCorpusUTF8(t *testing.T) {
	path := writeFile(t, "in.txt", append([]byte{0xEF, 0xBB, 0xBF}, "Граф Монте-Кристо"...))

	c, err := ReadCorpus(path, "UTF8")
	require.NoError(t, err)
	assert.Equal(t, "Граф Монте-Кристо", c.Text)
	assert.Equal(t, "utf-8", c.Encoding)
	assert.False(t, c.ASCIIOnly)
}

func TestReadCorpusInvalidUTF8(t *testing.T) {
	path := writeFile(t, "in.txt", []byte{0xcf, 0xf0, 0xe8, 0xe2, 0xe5, 0xf2})

	_, err := ReadCorpus(path, "utf-8")
	require.ErrorIs(t, err, ErrDecoding)
	assert.Contains(t, err.Error(), "cp1251")
}

func TestReadCorpusLegacyCodePages(t *testing.T) {
	for _, tc := range []struct {
		enc string
		cm  *charmap.Charmap
	}{
		{"cp1251", charmap.Windows1251},
		{"windows-1251", charmap.Windows1251},
		{"cp866", charmap.CodePage866},
	} {
		raw, err := tc.cm.NewEncoder().String("Привет, мир")
		require.NoError(t, err)
		path := writeFile(t, "in.txt", []byte(raw))

		c, err := ReadCorpus(path, tc.enc)
		require.NoError(t, err, tc.enc)
		assert.Equal(t, "Привет, мир", c.Text, tc.enc)
	}
}

func TestReadCorpusASCIIOnly(t *testing.T) {
	c, err := ReadCorpus(writeFile(t, "in.txt", []byte("plain ascii text")), "")
	require.NoError(t, err)
	assert.True(t, c.ASCIIOnly)
}

func TestReadCorpusUnsupportedEncoding(t *testing.T) {
	_, err := ReadCorpus(writeFile(t, "in.txt", []byte("x")), "koi8-r")
	assert.EqualError(t, err, `unsupported encoding "koi8-r"`)
	assert.False(t, SupportedEncoding("koi8-r"))
	assert.True(t, SupportedEncoding("CP866"))
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaned_text.txt")
	require.NoError(t, WriteText(path, "граф монте кристо"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "граф монте кристо", string(data))
}

var sheet = table.Sheet{
	Name: "Unigram",
	Rows: [][]any{
		{"Symbol", "Count", "Frequency"},
		{"о", 3, 0.5},
		{" ", 2, 1.0 / 3},
	},
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSVWriter{}.Write(&buf, sheet))
	assert.Equal(t, "Symbol,Count,Frequency\nо,3,0.5\n\" \",2,0.3333333333333333\n", buf.String())
}

func TestXLSXWriter(t *testing.T) {
	dir := t.TempDir()
	path, err := ExportSheet(dir, XLSXWriter{}, sheet)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Unigram.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Unigram")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Symbol", "Count", "Frequency"}, rows[0])
	assert.Equal(t, []string{"о", "3", "0.5"}, rows[1])
}

type failingWriter struct{}

func (failingWriter) Ext() string { return ".bin" }

func (failingWriter) Write(w io.Writer, s table.Sheet) error {
	io.WriteString(w, "partial")
	return errors.New("disk full")
}

func TestExportSheetLeavesNothingOnFailure(t *testing.T) {
	dir := t.TempDir()
	_, err := ExportSheet(dir, failingWriter{}, sheet)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewTableWriter(t *testing.T) {
	tw, err := NewTableWriter("csv")
	require.NoError(t, err)
	assert.Equal(t, ".csv", tw.Ext())

	tw, err = NewTableWriter("")
	require.NoError(t, err)
	assert.Equal(t, ".xlsx", tw.Ext())

	_, err = NewTableWriter("ods")
	assert.Error(t, err)
}
