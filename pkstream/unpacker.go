package pkstream

import "fmt"

// Unpacker consumes bytes from a ByteSource and reconstructs a Value
// tree, dispatching tagged structures to a Registry of caller-
// installed decoders. Like Packer, an Unpacker holds no per-call
// state and is not safe for concurrent use; its Registry is meant to
// be configured once at startup and treated as read-only thereafter.
type Unpacker struct {
	registry *Registry
}

// NewUnpacker returns an Unpacker that delegates tagged structures to
// registry. A nil registry is treated as empty: every structure
// decodes to the default *Structure representation.
func NewUnpacker(registry *Registry) *Unpacker {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Unpacker{registry: registry}
}

// Registry returns the unpacker's struct mapper registry, so callers
// can register mappers after construction.
func (u *Unpacker) Registry() *Registry { return u.registry }

// Unpack reads exactly the bytes of one encoded value from src and
// returns the reconstructed Value.
func (u *Unpacker) Unpack(src ByteSource) (Value, error) {
	marker, err := src.ReadUInt8()
	if err != nil {
		return Value{}, err
	}
	return u.unpackMarker(src, marker)
}

func (u *Unpacker) unpackMarker(src ByteSource, marker uint8) (Value, error) {
	switch marker {
	case markerNull:
		return Null(), nil
	case markerTrue:
		return Bool(true), nil
	case markerFalse:
		return Bool(false), nil
	case markerFloat64:
		f, err := src.ReadFloat64()
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case markerInt8:
		v, err := src.ReadInt8()
		if err != nil {
			return Value{}, err
		}
		return IntFromInt64(int64(v)), nil
	case markerInt16:
		v, err := src.ReadInt16()
		if err != nil {
			return Value{}, err
		}
		return IntFromInt64(int64(v)), nil
	case markerInt32:
		v, err := src.ReadInt32()
		if err != nil {
			return Value{}, err
		}
		return IntFromInt64(int64(v)), nil
	case markerInt64:
		high, err := src.ReadInt32()
		if err != nil {
			return Value{}, err
		}
		low, err := src.ReadInt32()
		if err != nil {
			return Value{}, err
		}
		return Int(NewInt64(high, low)), nil
	case markerString8:
		n, err := src.ReadUInt8()
		if err != nil {
			return Value{}, err
		}
		return u.unpackString(src, int(n))
	case markerString16:
		n, err := src.ReadUInt16()
		if err != nil {
			return Value{}, err
		}
		return u.unpackString(src, int(n))
	case markerString32:
		n, err := src.ReadUInt32()
		if err != nil {
			return Value{}, err
		}
		return u.unpackString(src, int(n))
	case markerList8:
		n, err := src.ReadUInt8()
		if err != nil {
			return Value{}, err
		}
		return u.unpackList(src, int(n))
	case markerList16:
		n, err := src.ReadUInt16()
		if err != nil {
			return Value{}, err
		}
		return u.unpackList(src, int(n))
	case markerList32:
		n, err := src.ReadUInt32()
		if err != nil {
			return Value{}, err
		}
		return u.unpackList(src, int(n))
	case markerMap8:
		n, err := src.ReadUInt8()
		if err != nil {
			return Value{}, err
		}
		return u.unpackMap(src, int(n))
	case markerMap16:
		n, err := src.ReadUInt16()
		if err != nil {
			return Value{}, err
		}
		return u.unpackMap(src, int(n))
	case markerMap32:
		n, err := src.ReadUInt32()
		if err != nil {
			return Value{}, err
		}
		return u.unpackMap(src, int(n))
	case markerStruct8:
		n, err := src.ReadUInt8()
		if err != nil {
			return Value{}, err
		}
		return u.unpackStruct(src, int(n))
	case markerStruct16:
		n, err := src.ReadUInt16()
		if err != nil {
			return Value{}, err
		}
		return u.unpackStruct(src, int(n))
	}

	markerHigh := marker & 0xF0
	markerLow := marker & 0x0F

	switch markerHigh {
	case markerTinyStringMin:
		return u.unpackString(src, int(markerLow))
	case markerTinyListMin:
		return u.unpackList(src, int(markerLow))
	case markerTinyMapMin:
		return u.unpackMap(src, int(markerLow))
	case markerTinyStructMin:
		return u.unpackStruct(src, int(markerLow))
	}

	if marker < markerTinyIntMax+1 {
		return IntFromInt64(int64(marker)), nil
	}
	if marker >= markerNegTinyMin {
		return IntFromInt64(int64(int8(marker))), nil
	}

	return Value{}, errUnknownMarker(marker)
}

func (u *Unpacker) unpackString(src ByteSource, n int) (Value, error) {
	s, err := decodeUTF8(src, n)
	if err != nil {
		return Value{}, err
	}
	return String(s), nil
}

func (u *Unpacker) unpackList(src ByteSource, n int) (Value, error) {
	elems := make([]Value, n)
	for i := 0; i < n; i++ {
		v, err := u.Unpack(src)
		if err != nil {
			return Value{}, fmt.Errorf("pkstream: decoding list element %d: %w", i, err)
		}
		elems[i] = v
	}
	return List(elems), nil
}

func (u *Unpacker) unpackMap(src ByteSource, n int) (Value, error) {
	entries := make([]MapEntry, n)
	for i := 0; i < n; i++ {
		key, err := u.Unpack(src)
		if err != nil {
			return Value{}, fmt.Errorf("pkstream: decoding map key %d: %w", i, err)
		}
		keyStr, err := key.AsString()
		if err != nil {
			return Value{}, fmt.Errorf("pkstream: map key %d: %w", i, err)
		}
		val, err := u.Unpack(src)
		if err != nil {
			return Value{}, fmt.Errorf("pkstream: decoding map value for key %q: %w", keyStr, err)
		}
		entries[i] = MapEntry{Key: keyStr, Value: val}
	}
	return Map(entries), nil
}

func (u *Unpacker) unpackStruct(src ByteSource, size int) (Value, error) {
	signature, err := src.ReadUInt8()
	if err != nil {
		return Value{}, err
	}

	if mapper, ok := u.registry.Lookup(signature); ok {
		return mapper(u, src, size)
	}

	fields := make([]Value, size)
	for i := 0; i < size; i++ {
		v, err := u.Unpack(src)
		if err != nil {
			return Value{}, fmt.Errorf("pkstream: decoding struct field %d (sig 0x%02X): %w", i, signature, err)
		}
		fields[i] = v
	}
	return StructValue(&Structure{Signature: signature, Fields: fields}), nil
}
