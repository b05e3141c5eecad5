package pkstream

import "fmt"

// errUnencodable reports that a value's Kind has no wire
// representation. In-grammar Values always encode, so this only fires
// for a zero-value Value or one constructed with an out-of-range
// Kind — see the exhaustive switch in Packer.Pack.
func errUnencodable(k Kind) error {
	return fmt.Errorf("pkstream: Cannot pack this value: unsupported kind %s", k)
}

// errOversized reports that a container's element count or byte
// length exceeds the largest wire tier.
func errOversized(what string, n int) error {
	return fmt.Errorf("pkstream: %s of size %d are not supported", what, n)
}

// errUnknownMarker reports an unrecognized marker byte encountered
// while decoding.
func errUnknownMarker(marker byte) error {
	return fmt.Errorf("pkstream: unknown packed value with marker 0x%02X", marker)
}
