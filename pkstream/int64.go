package pkstream

// Int64 is the codec's portable 64-bit signed integer carrier. It
// holds the value split into a high and low 32-bit word rather than a
// native 64-bit integer so that the wire representation (high32 then
// low32, big-endian) and the tier-selection arithmetic are spelled out
// explicitly instead of leaning on a host integer type that not every
// client language has.
//
// Int64 represents exactly the mathematical integer
// high*2^32 + (low & 0xFFFFFFFF).
type Int64 struct {
	high int32
	low  int32
}

// NewInt64 builds an Int64 directly from its high and low 32-bit
// words, as read off the wire for the Int64 marker tier.
func NewInt64(high, low int32) Int64 {
	return Int64{high: high, low: low}
}

// NewInt64FromInt32 builds an Int64 representing the same
// mathematical value as a native signed 32-bit integer, sign-extended
// into the high word.
func NewInt64FromInt32(v int32) Int64 {
	return Int64{high: v >> 31, low: v}
}

// High returns the high 32-bit word.
func (i Int64) High() int32 { return i.high }

// Low returns the low 32-bit word.
func (i Int64) Low() int32 { return i.low }

// value returns the exact 64-bit signed value as Go's native int64.
// Go's int64 is exactly 64 bits wide, so this combination is exact
// across the whole range; callers comparing against tier boundaries
// must go through this (or GTE/LT below) rather than comparing the
// high and low words independently, which is the subtle bug the
// narrow-tier selection logic in Packer must avoid.
func (i Int64) value() int64 {
	return int64(i.high)<<32 | int64(uint32(i.low))
}

// GTE reports whether the Int64's mathematical value is greater than
// or equal to n.
func (i Int64) GTE(n int64) bool { return i.value() >= n }

// LT reports whether the Int64's mathematical value is strictly less
// than n.
func (i Int64) LT(n int64) bool { return i.value() < n }

// Equal reports whether two Int64 values represent the same
// mathematical integer.
func (i Int64) Equal(other Int64) bool { return i.value() == other.value() }

// Int64 converts to Go's native int64. This is exact: pkstream's
// Int64 never represents a value outside the signed 64-bit range.
func (i Int64) Int64() int64 { return i.value() }

// FromInt64 builds an Int64 from Go's native 64-bit signed integer.
func FromInt64(v int64) Int64 {
	return Int64{high: int32(v >> 32), low: int32(v)}
}
