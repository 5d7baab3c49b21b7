// Package textenc decodes delimited text files whose encoding is not known up
// front. Korean spreadsheet exports are usually UTF-8 or CP949, so decoding is
// attempted with an ordered list of encodings and the first clean decode wins.
package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// ErrUndecodable is returned when none of the candidate encodings decodes the input cleanly.
var ErrUndecodable = errors.New("text could not be decoded with any candidate encoding")

// DefaultEncodings is the order used when the caller has no preference.
var DefaultEncodings = []string{"utf-8", "cp949", "euc-kr"}

var (
	utf8BOM     = []byte{0xEF, 0xBB, 0xBF}
	replacement = []byte("\uFFFD")
)

// Decode converts data to a UTF-8 string. The preferred encoding, when set, is
// tried before DefaultEncodings. It returns the decoded text and the name of
// the encoding that succeeded.
func Decode(data []byte, preferred string) (string, string, error) {
	const op = "Decode"

	var errs []error
	for _, name := range Candidates(preferred) {
		text, err := decodeAs(data, name)
		if err == nil {
			return text, name, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
	}
	return "", "", fmt.Errorf("%s: %w: %w", op, ErrUndecodable, errors.Join(errs...))
}

// Candidates returns the ordered, de-duplicated encoding names to try.
func Candidates(preferred string) []string {
	names := make([]string, 0, len(DefaultEncodings)+1)
	seen := make(map[string]bool)
	add := func(name string) {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	add(preferred)
	for _, name := range DefaultEncodings {
		add(name)
	}
	return names
}

func decodeAs(data []byte, name string) (string, error) {
	if name == "utf-8" || name == "utf8" {
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return "", errors.New("invalid UTF-8 sequence")
		}
		return string(data), nil
	}

	enc, err := lookup(name)
	if err != nil {
		return "", err
	}

	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	// x/text decoders substitute U+FFFD for bytes they cannot map instead of failing.
	if bytes.Count(out, replacement) > bytes.Count(data, replacement) {
		return "", errors.New("input contains bytes outside the character set")
	}
	return string(out), nil
}

func lookup(name string) (encoding.Encoding, error) {
	switch name {
	case "cp949", "euc-kr", "euckr", "uhc":
		return korean.EUCKR, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}
