package pkstream

// Packer consumes a Value tree and writes its wire encoding to a
// ByteSink, choosing the narrowest legal marker tier for each value.
// A Packer holds no state between calls and is not safe for
// concurrent use — callers serialize access.
type Packer struct{}

// NewPacker returns a ready-to-use Packer.
func NewPacker() *Packer {
	return &Packer{}
}

// Pack writes the wire encoding of v to sink. On error, no further
// bytes are written for v, but bytes already written for sibling
// values (e.g. earlier elements of an enclosing list) are not undone
// — the caller must treat the sink as poisoned after an error.
func (p *Packer) Pack(sink ByteSink, v Value) error {
	switch v.kind {
	case KindNull:
		sink.WriteUInt8(markerNull)
		return nil
	case KindBool:
		if v.boolVal {
			sink.WriteUInt8(markerTrue)
		} else {
			sink.WriteUInt8(markerFalse)
		}
		return nil
	case KindFloat:
		sink.WriteUInt8(markerFloat64)
		sink.WriteFloat64(v.floatVal)
		return nil
	case KindInt:
		return p.packInt(sink, v.intVal)
	case KindString:
		return p.packString(sink, v.stringVal)
	case KindList:
		return p.packList(sink, v.listVal)
	case KindMap:
		return p.packMap(sink, v.mapVal)
	case KindStruct:
		return p.packStruct(sink, v.structVal)
	default:
		return errUnencodable(v.kind)
	}
}

// packInt chooses the narrowest tier that admits n. The tier ladder
// compares against Int64's full 64-bit mathematical value (via
// GTE/LT), never against the 32-bit high/low words directly: a
// comparison against just the high word misclassifies values near the
// ±2^31 boundary.
func (p *Packer) packInt(sink ByteSink, n Int64) error {
	switch {
	case n.GTE(tinyIntLow) && n.LT(tinyIntHigh):
		sink.WriteInt8(int8(n.Int64()))
	case n.GTE(int8Low) && n.LT(int8High):
		sink.WriteUInt8(markerInt8)
		sink.WriteInt8(int8(n.Int64()))
	case n.GTE(int16Low) && n.LT(int16High):
		sink.WriteUInt8(markerInt16)
		sink.WriteInt16(int16(n.Int64()))
	case n.GTE(int32Low) && n.LT(int32High):
		sink.WriteUInt8(markerInt32)
		sink.WriteInt32(int32(n.Int64()))
	default:
		sink.WriteUInt8(markerInt64)
		sink.WriteInt32(n.High())
		sink.WriteInt32(n.Low())
	}
	return nil
}

func (p *Packer) packString(sink ByteSink, s string) error {
	raw := encodeUTF8(s)
	n := len(raw)
	if err := writeContainerHeader(sink, n, "UTF-8 strings",
		markerTinyStringMin, markerString8, markerString16, markerString32); err != nil {
		return err
	}
	sink.WriteBytes(raw)
	return nil
}

func (p *Packer) packList(sink ByteSink, elems []Value) error {
	n := len(elems)
	if err := writeContainerHeader(sink, n, "lists",
		markerTinyListMin, markerList8, markerList16, markerList32); err != nil {
		return err
	}
	for _, elem := range elems {
		// Elements holding the undefined sentinel encode as Null;
		// the list's structural length is preserved either way.
		if elem.kind == KindUndefined {
			elem = Null()
		}
		if err := p.Pack(sink, elem); err != nil {
			return err
		}
	}
	return nil
}

func (p *Packer) packMap(sink ByteSink, entries []MapEntry) error {
	surviving := make([]MapEntry, 0, len(entries))
	for _, e := range entries {
		if e.Value.kind == KindUndefined {
			continue
		}
		surviving = append(surviving, e)
	}

	if err := writeContainerHeader(sink, len(surviving), "maps",
		markerTinyMapMin, markerMap8, markerMap16, markerMap32); err != nil {
		return err
	}
	for _, e := range surviving {
		if err := p.packString(sink, e.Key); err != nil {
			return err
		}
		if err := p.Pack(sink, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func (p *Packer) packStruct(sink ByteSink, s *Structure) error {
	n := len(s.Fields)
	switch {
	case n < structTinyMax:
		sink.WriteUInt8(markerTinyStructMin | byte(n))
		sink.WriteUInt8(s.Signature)
	case n < struct8Max:
		sink.WriteUInt8(markerStruct8)
		sink.WriteUInt8(byte(n))
		sink.WriteUInt8(s.Signature)
	case n < struct16Max:
		sink.WriteUInt8(markerStruct16)
		sink.WriteInt16(int16(uint16(n)))
		// Always emitted, matching Unpacker's expectation for this
		// tier, unlike some encoders in the wild that drop it here.
		sink.WriteUInt8(s.Signature)
	default:
		return errOversized("structs", n)
	}
	for _, field := range s.Fields {
		if err := p.Pack(sink, field); err != nil {
			return err
		}
	}
	return nil
}

// writeContainerHeader emits the tiered size header shared by
// strings, lists, and maps: a 4-bit inline count for n < 16, then u8,
// u16, u32 length-prefixed markers, in that order of preference.
func writeContainerHeader(sink ByteSink, n int, what string, tinyBase, m8, m16, m32 byte) error {
	switch {
	case n < tinySizeMax:
		sink.WriteUInt8(tinyBase | byte(n))
	case n < size8Max:
		sink.WriteUInt8(m8)
		sink.WriteUInt8(byte(n))
	case n < size16Max:
		sink.WriteUInt8(m16)
		sink.WriteInt16(int16(uint16(n)))
	case n < size32Max:
		sink.WriteUInt8(m32)
		sink.WriteInt32(int32(uint32(n)))
	default:
		return errOversized(what, n)
	}
	return nil
}
