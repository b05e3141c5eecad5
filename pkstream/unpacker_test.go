package pkstream

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func unpackBytes(t *testing.T, b []byte) Value {
	t.Helper()
	v, err := NewUnpacker(nil).Unpack(NewBufferFromBytes(b))
	require.NoError(t, err)
	return v
}

func TestUnpackScalars(t *testing.T) {
	require.Equal(t, KindNull, unpackBytes(t, []byte{0xC0}).Kind())

	b, err := unpackBytes(t, []byte{0xC3}).AsBool()
	require.NoError(t, err)
	require.True(t, b)

	b, err = unpackBytes(t, []byte{0xC2}).AsBool()
	require.NoError(t, err)
	require.False(t, b)
}

func TestUnpackFloatPi(t *testing.T) {
	v := unpackBytes(t, []byte{0xC1, 0x40, 0x09, 0x21, 0xFB, 0x54, 0x44, 0x2D, 0x18})
	f, err := v.AsFloat()
	require.NoError(t, err)
	require.Equal(t, math.Pi, f)
}

func TestUnpackIntTiers(t *testing.T) {
	cases := []struct {
		bytes []byte
		want  int64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x7F}, 127},
		{[]byte{0xFF}, -1},
		{[]byte{0xF0}, -16},
		{[]byte{0xC8, 0xEF}, -17},
		{[]byte{0xC9, 0x00, 0x80}, 128},
		{[]byte{0xCA, 0x00, 0x00, 0x80, 0x00}, 32768},
		{[]byte{0xCB, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00}, 1 << 31},
	}
	for _, c := range cases {
		v := unpackBytes(t, c.bytes)
		i, err := v.AsInt()
		require.NoError(t, err)
		require.Equal(t, c.want, i.Int64(), "bytes=% X", c.bytes)
	}
}

func TestUnpackString(t *testing.T) {
	v := unpackBytes(t, []byte{0x81, 0x41})
	s, err := v.AsString()
	require.NoError(t, err)
	require.Equal(t, "A", s)
}

func TestUnpackList(t *testing.T) {
	v := unpackBytes(t, []byte{0x93, 0x01, 0x02, 0x03})
	elems, err := v.AsList()
	require.NoError(t, err)
	require.Len(t, elems, 3)
	for i, e := range elems {
		n, err := e.AsInt()
		require.NoError(t, err)
		require.Equal(t, int64(i+1), n.Int64())
	}
}

func TestUnpackMap(t *testing.T) {
	v := unpackBytes(t, []byte{0xA1, 0x81, 0x61, 0x01})
	entries, err := v.AsMap()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "a", entries[0].Key)
}

func TestUnpackStructDefaultsToStructure(t *testing.T) {
	v := unpackBytes(t, []byte{0xB2, 0x4E, 0x01, 0x81, 0x78})
	s, err := v.AsStruct()
	require.NoError(t, err)
	require.Equal(t, uint8(0x4E), s.Signature)
	require.Len(t, s.Fields, 2)
}

func TestUnpackStructDispatchesToRegisteredMapper(t *testing.T) {
	reg := NewRegistry()
	reg.Register(0x4E, func(u *Unpacker, src ByteSource, fieldCount int) (Value, error) {
		fields := make([]Value, fieldCount)
		for i := range fields {
			v, err := u.Unpack(src)
			if err != nil {
				return Value{}, err
			}
			fields[i] = v
		}
		n, _ := fields[0].AsInt()
		s, _ := fields[1].AsString()
		return String(strconv.FormatInt(n.Int64(), 10) + s), nil
	})

	v, err := NewUnpacker(reg).Unpack(NewBufferFromBytes([]byte{0xB2, 0x4E, 0x01, 0x81, 0x78}))
	require.NoError(t, err)
	got, err := v.AsString()
	require.NoError(t, err)
	require.Equal(t, "1x", got)
}

func TestUnpackUnknownMarker(t *testing.T) {
	unknown := []byte{0xC4, 0xC5, 0xC6, 0xC7, 0xCC, 0xCD, 0xCE, 0xCF, 0xD3, 0xD7, 0xDB, 0xDE, 0xDF, 0xE0, 0xE5, 0xEF}
	for _, m := range unknown {
		_, err := NewUnpacker(nil).Unpack(NewBufferFromBytes([]byte{m}))
		require.Error(t, err, "marker 0x%02X should be unknown", m)
		require.Contains(t, err.Error(), "0x")
	}
}

func TestUnpackTruncatedInputPropagatesSourceError(t *testing.T) {
	_, err := NewUnpacker(nil).Unpack(NewBufferFromBytes([]byte{0xC1, 0x00, 0x01}))
	require.Error(t, err)
}
