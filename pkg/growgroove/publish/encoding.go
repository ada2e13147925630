package publish

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrUnrepresentable is returned when the text contains characters the
// charset has no code for.
var ErrUnrepresentable = errors.New("content cannot be represented in specified encoding")

// Encode converts UTF-8 text to the named IANA charset. The result is
// decoded again to make sure nothing was substituted on the way.
func Encode(text, charset string) ([]byte, error) {
	if charset == "" {
		return []byte(text), nil
	}

	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", charset, err)
	}
	if enc == nil {
		enc = encoding.Nop
	}

	encoded, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrepresentable, err)
	}

	decoded, err := enc.NewDecoder().Bytes(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrepresentable, err)
	}
	if string(decoded) != text {
		return nil, ErrUnrepresentable
	}
	return encoded, nil
}
