// Package textenc decodes and encodes file contents in named character
// sets. Charsets are resolved by their IANA names; "auto" triggers
// charset detection on the raw bytes.
package textenc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Auto is the charset name that triggers automatic detection.
const Auto = "auto"

// Default is the charset assumed when none is specified.
const Default = "utf-8"

// EncodingError reports bytes that cannot be converted under the named
// charset, or a charset name that cannot be resolved.
type EncodingError struct {
	Encoding string
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding %q: %v", e.Encoding, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// Resolve maps a user-supplied charset name to a concrete one. Empty
// means Default; Auto detects the charset from data. Detection of empty
// input falls back to Default, since there is nothing to detect.
func Resolve(name string, data []byte) (string, error) {
	switch {
	case name == "":
		return Default, nil
	case strings.EqualFold(name, Auto):
		if len(data) == 0 {
			return Default, nil
		}
		return Detect(data)
	default:
		return name, nil
	}
}

// Detect guesses the charset of data.
func Detect(data []byte) (string, error) {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return "", &EncodingError{Encoding: Auto, Err: fmt.Errorf("charset detection failed: %w", err)}
	}
	return result.Charset, nil
}

// Decode converts data from the named charset to a string. Invalid
// UTF-8 input under a UTF-8 charset is an error rather than silently
// replaced.
func Decode(data []byte, name string) (string, error) {
	enc, err := lookup(name)
	if err != nil {
		return "", err
	}
	if enc == unicode.UTF8 {
		if !utf8.Valid(data) {
			return "", &EncodingError{Encoding: name, Err: fmt.Errorf("input is not valid UTF-8")}
		}
		return string(data), nil
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", &EncodingError{Encoding: name, Err: err}
	}
	return string(decoded), nil
}

// Encode converts text back to the named charset, so output files keep
// the charset of their inputs.
func Encode(text string, name string) ([]byte, error) {
	enc, err := lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return []byte(text), nil
	}

	encoded, _, err := transform.String(enc.NewEncoder(), text)
	if err != nil {
		return nil, &EncodingError{Encoding: name, Err: err}
	}
	return []byte(encoded), nil
}

func lookup(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, &EncodingError{Encoding: name, Err: fmt.Errorf("unknown charset: %w", err)}
	}
	if enc == nil {
		// The IANA index knows some names it has no encoding for.
		return nil, &EncodingError{Encoding: name, Err: fmt.Errorf("unsupported charset")}
	}
	return enc, nil
}
