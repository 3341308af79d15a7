// Package charset turns subtitle bytes in legacy code pages into UTF-8.
package charset

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Lookup resolves a character set name such as "utf-8", "windows-1250",
// "latin1" or "shift_jis". The empty name selects UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return enc, nil
}

// NewReader decodes r from the named character set. A UTF-8 or UTF-16 byte
// order mark overrides the name and is dropped from the output.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	decoder := unicode.BOMOverride(enc.NewDecoder())
	return transform.NewReader(r, decoder), nil
}
