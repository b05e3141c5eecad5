package pkstream

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ByteSink is the write-only byte destination Packer writes through.
// A real client's chunked-transport buffer implements this interface;
// Buffer below is the dependency-free in-memory implementation this
// module tests and the CLI packs into.
type ByteSink interface {
	WriteUInt8(v uint8)
	WriteInt8(v int8)
	WriteInt16(v int16)
	WriteInt32(v int32)
	WriteFloat64(v float64)
	WriteBytes(b []byte)
}

// ByteSource is the read-only byte origin Unpacker reads from.
type ByteSource interface {
	ReadUInt8() (uint8, error)
	ReadInt8() (int8, error)
	ReadInt16() (int16, error)
	ReadUInt16() (uint16, error)
	ReadInt32() (int32, error)
	ReadUInt32() (uint32, error)
	ReadFloat64() (float64, error)
	ReadBytes(n int) ([]byte, error)
}

// Buffer is an in-memory implementation of both ByteSink and
// ByteSource over a growable []byte, using encoding/binary.BigEndian
// throughout so the observable bytes match the wire grammar exactly
// rather than being assembled by hand with shifts and masks.
type Buffer struct {
	data []byte
	pos  int
}

// NewBuffer returns an empty Buffer ready for writing.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferFromBytes returns a Buffer positioned at the start of data,
// ready for reading.
func NewBufferFromBytes(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the buffer's full contents written so far.
func (b *Buffer) Bytes() []byte { return b.data }

// Remaining reports how many unread bytes are left in the buffer.
func (b *Buffer) Remaining() int { return len(b.data) - b.pos }

func (b *Buffer) WriteUInt8(v uint8) { b.data = append(b.data, v) }
func (b *Buffer) WriteInt8(v int8)   { b.data = append(b.data, byte(v)) }

func (b *Buffer) WriteInt16(v int16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(v))
	b.data = append(b.data, tmp[:]...)
}

func (b *Buffer) WriteInt32(v int32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(v))
	b.data = append(b.data, tmp[:]...)
}

func (b *Buffer) WriteFloat64(v float64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], math.Float64bits(v))
	b.data = append(b.data, tmp[:]...)
}

func (b *Buffer) WriteBytes(bs []byte) { b.data = append(b.data, bs...) }

func (b *Buffer) readN(n int) ([]byte, error) {
	if b.Remaining() < n {
		return nil, fmt.Errorf("pkstream: buffer too short: need %d bytes, have %d", n, b.Remaining())
	}
	out := b.data[b.pos : b.pos+n]
	b.pos += n
	return out, nil
}

func (b *Buffer) ReadUInt8() (uint8, error) {
	bs, err := b.readN(1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

func (b *Buffer) ReadInt8() (int8, error) {
	bs, err := b.readN(1)
	if err != nil {
		return 0, err
	}
	return int8(bs[0]), nil
}

func (b *Buffer) ReadInt16() (int16, error) {
	bs, err := b.readN(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(bs)), nil
}

func (b *Buffer) ReadUInt16() (uint16, error) {
	bs, err := b.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(bs), nil
}

func (b *Buffer) ReadInt32() (int32, error) {
	bs, err := b.readN(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(bs)), nil
}

func (b *Buffer) ReadUInt32() (uint32, error) {
	bs, err := b.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(bs), nil
}

func (b *Buffer) ReadFloat64() (float64, error) {
	bs, err := b.readN(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(bs)), nil
}

func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	bs, err := b.readN(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, bs)
	return out, nil
}
