package pkstream

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func packBytes(t *testing.T, v Value) []byte {
	t.Helper()
	buf := NewBuffer()
	require.NoError(t, NewPacker().Pack(buf, v))
	return buf.Bytes()
}

func TestPackScalars(t *testing.T) {
	require.Equal(t, []byte{0xC0}, packBytes(t, Null()))
	require.Equal(t, []byte{0xC3}, packBytes(t, Bool(true)))
	require.Equal(t, []byte{0xC2}, packBytes(t, Bool(false)))
}

func TestPackIntTierBoundaries(t *testing.T) {
	cases := []struct {
		n    int64
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7F}},
		{-1, []byte{0xFF}},
		{-16, []byte{0xF0}},
		{-17, []byte{0xC8, 0xEF}},
		{-128, []byte{0xC8, 0x80}},
		{-129, []byte{0xC9, 0xFF, 0x7F}},
		{128, []byte{0xC9, 0x00, 0x80}},
		{32767, []byte{0xC9, 0x7F, 0xFF}},
		{32768, []byte{0xCA, 0x00, 0x00, 0x80, 0x00}},
		{-32768, []byte{0xC9, 0x80, 0x00}},
		{-32769, []byte{0xCA, 0xFF, 0xFF, 0x7F, 0xFF}},
		{1<<31 - 1, []byte{0xCA, 0x7F, 0xFF, 0xFF, 0xFF}},
		{1 << 31, []byte{0xCB, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00}},
		{-(1 << 31), []byte{0xCA, 0x80, 0x00, 0x00, 0x00}},
		{-(1<<31) - 1, []byte{0xCB, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F, 0xFF, 0xFF, 0xFF}},
	}
	for _, c := range cases {
		got := packBytes(t, IntFromInt64(c.n))
		require.Equal(t, c.want, got, "n=%d", c.n)
	}
}

func TestPackFloat(t *testing.T) {
	got := packBytes(t, Float(math.Pi))
	require.Equal(t, []byte{0xC1, 0x40, 0x09, 0x21, 0xFB, 0x54, 0x44, 0x2D, 0x18}, got)
}

func TestPackString(t *testing.T) {
	require.Equal(t, []byte{0x80}, packBytes(t, String("")))
	require.Equal(t, []byte{0x81, 0x41}, packBytes(t, String("A")))

	long := "ABCDEFGHIJKLMNOP" // 16 bytes
	got := packBytes(t, String(long))
	want := append([]byte{0xD0, 0x10}, []byte(long)...)
	require.Equal(t, want, got)
}

func TestPackList(t *testing.T) {
	got := packBytes(t, List([]Value{IntFromInt64(1), IntFromInt64(2), IntFromInt64(3)}))
	require.Equal(t, []byte{0x93, 0x01, 0x02, 0x03}, got)
}

func TestPackMap(t *testing.T) {
	got := packBytes(t, Map([]MapEntry{{Key: "a", Value: IntFromInt64(1)}}))
	require.Equal(t, []byte{0xA1, 0x81, 0x61, 0x01}, got)
}

func TestPackMapFiltersUndefined(t *testing.T) {
	withUndefined := packBytes(t, Map([]MapEntry{
		{Key: "a", Value: IntFromInt64(1)},
		{Key: "b", Value: Undefined()},
	}))
	withoutEntry := packBytes(t, Map([]MapEntry{
		{Key: "a", Value: IntFromInt64(1)},
	}))
	require.Equal(t, withoutEntry, withUndefined)
}

func TestPackListReplacesUndefinedWithNull(t *testing.T) {
	got := packBytes(t, List([]Value{IntFromInt64(1), Undefined(), IntFromInt64(3)}))
	require.Equal(t, []byte{0x93, 0x01, 0xC0, 0x03}, got)
}

func TestPackStruct(t *testing.T) {
	got := packBytes(t, StructValue(NewStructure(0x4E, IntFromInt64(1), String("x"))))
	require.Equal(t, []byte{0xB2, 0x4E, 0x01, 0x81, 0x78}, got)
}

func TestPackStructSize16EmitsSignatureByte(t *testing.T) {
	fields := make([]Value, 300)
	for i := range fields {
		fields[i] = Null()
	}
	buf := NewBuffer()
	require.NoError(t, NewPacker().Pack(buf, StructValue(NewStructure(0x01, fields...))))
	got := buf.Bytes()

	require.Equal(t, byte(0xDD), got[0])
	require.Equal(t, byte(300>>8), got[1])
	require.Equal(t, byte(300&0xFF), got[2])
	require.Equal(t, byte(0x01), got[3], "size-16 struct header must still carry the signature byte")
	require.Equal(t, byte(0xC0), got[4], "first field follows the signature byte")
}

func TestPackUnencodableValue(t *testing.T) {
	buf := NewBuffer()
	err := NewPacker().Pack(buf, Value{kind: Kind(200)})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Cannot pack this value")
	require.Empty(t, buf.Bytes())
}

func TestPackOversizedString(t *testing.T) {
	// Force the oversized path without allocating 4GB of memory by
	// packing directly against a fabricated length check.
	err := writeContainerHeader(NewBuffer(), size32Max, "UTF-8 strings",
		markerTinyStringMin, markerString8, markerString16, markerString32)
	require.Error(t, err)
	require.Contains(t, err.Error(), "UTF-8 strings of size")
	require.Contains(t, err.Error(), "are not supported")
}

func TestBigEndianLengthPrefix(t *testing.T) {
	s := make([]byte, 0x0123)
	got := packBytes(t, String(string(s)))
	require.Equal(t, []byte{0xD1, 0x01, 0x23}, got[:3])
}
