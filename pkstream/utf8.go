package pkstream

import (
	"fmt"
	"unicode/utf8"
)

// encodeUTF8 is the UTF-8 helper's encode half: it returns the byte
// sequence for a Go string, which is already UTF-8, so this is a
// simple conversion kept as a named step to mirror the validation
// boundary decodeUTF8 performs on the way back in.
func encodeUTF8(s string) []byte {
	return []byte(s)
}

// decodeUTF8 reads exactly byteCount bytes from src and validates
// them as UTF-8, advancing src by that many bytes regardless of
// whether validation succeeds.
func decodeUTF8(src ByteSource, byteCount int) (string, error) {
	raw, err := src.ReadBytes(byteCount)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("pkstream: invalid UTF-8 in string of length %d", byteCount)
	}
	return string(raw), nil
}
