package external

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/segmentio/asm/ascii"
	"github.com/segmentio/asm/utf8"
	"golang.org/x/text/encoding/charmap"
)

var (
	ErrInputUnavailable = errors.New("input unavailable")
	ErrDecoding         = errors.New("decoding failure")
)

const decodingHint = "try -encoding cp1251 or -encoding cp866"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Corpus is a decoded source text.
type Corpus struct {
	Path     string
	Encoding string
	Text     string
	// ASCIIOnly is set when the source has no bytes above 0x7F, so it
	// cannot contain any Cyrillic letter.
	ASCIIOnly bool
}

// ReadCorpus loads the whole file at path and decodes it as enc
// (utf-8, cp1251 or cp866).
func ReadCorpus(path, enc string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}

	c := &Corpus{Path: path, Encoding: canonicalEncoding(enc), ASCIIOnly: ascii.Valid(data)}
	switch c.Encoding {
	case "utf-8":
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%w: %s is not valid utf-8 (%s)", ErrDecoding, path, decodingHint)
		}
		c.Text = string(data)
	case "cp1251":
		decoded, err := charmap.Windows1251.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s as cp1251: %v", ErrDecoding, path, err)
		}
		c.Text = string(decoded)
	case "cp866":
		decoded, err := charmap.CodePage866.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s as cp866: %v", ErrDecoding, path, err)
		}
		c.Text = string(decoded)
	default:
		return nil, fmt.Errorf("unsupported encoding %q", enc)
	}
	return c, nil
}

func canonicalEncoding(enc string) string {
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "", "utf-8", "utf8":
		return "utf-8"
	case "cp1251", "windows-1251":
		return "cp1251"
	case "cp866", "ibm866":
		return "cp866"
	}
	return enc
}

// SupportedEncoding reports whether ReadCorpus can decode enc.
func SupportedEncoding(enc string) bool {
	switch canonicalEncoding(enc) {
	case "utf-8", "cp1251", "cp866":
		return true
	}
	return false
}
