package extract

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// TextDecoder passes plain-text buffers through, decoded as UTF-8.
type TextDecoder struct{}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func (TextDecoder) Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("text content is not valid UTF-8")
	}
	return string(data), nil
}
