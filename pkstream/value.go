package pkstream

import "fmt"

// Kind identifies which variant of Value is populated.
type Kind uint8

const (
	// KindUndefined marks a value that should be treated as absent:
	// map entries and list elements holding an undefined value are
	// filtered (maps) or replaced with Null (lists) on the pack path.
	// It never appears in a Value produced by Unpack.
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindFloat
	KindInt
	KindString
	KindList
	KindMap
	KindStruct
)

// String returns the kind's name, for error messages and logging.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindStruct:
		return "struct"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// MapEntry is one key/value pair of a Map value. Map is represented
// as a slice of entries rather than a Go map so that decode never has
// to fabricate an ordering, and so a pack-side caller controls
// iteration order if it cares to (the wire format itself does not
// preserve or require any particular order).
type MapEntry struct {
	Key   string
	Value Value
}

// Value is a tagged union over the wire grammar's value variants:
// null, bool, float64, Int64, string, list, map, and struct. Only the
// field matching Kind is meaningful; this is the shape used
// throughout the retrieved corpus for heterogeneous value trees (an
// enum discriminant plus per-variant fields) rather than a bare
// interface{}, so Packer and Unpacker can switch on Kind exhaustively.
type Value struct {
	kind Kind

	boolVal   bool
	floatVal  float64
	intVal    Int64
	stringVal string
	listVal   []Value
	mapVal    []MapEntry
	structVal *Structure
}

// Kind returns which variant of Value is populated.
func (v Value) Kind() Kind { return v.kind }

// Undefined returns the sentinel value that Map and List treat
// specially on the pack path: map entries holding it are dropped
// before the header length is computed, and list elements holding it
// are replaced by Null.
func Undefined() Value { return Value{kind: KindUndefined} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

// Float returns an IEEE-754 binary64 value.
func Float(f float64) Value { return Value{kind: KindFloat, floatVal: f} }

// Int returns an integer value carried as a portable Int64.
func Int(i Int64) Value { return Value{kind: KindInt, intVal: i} }

// IntFromInt64 is a convenience constructor wrapping a native int64.
func IntFromInt64(i int64) Value { return Int(FromInt64(i)) }

// String returns a UTF-8 string value.
func String(s string) Value { return Value{kind: KindString, stringVal: s} }

// List returns an ordered sequence of values.
func List(elems []Value) Value { return Value{kind: KindList, listVal: elems} }

// Map returns a string-keyed mapping. Entries are supplied as a slice
// so callers can construct maps containing Undefined() entries to
// exercise the pack-side filtering rule.
func Map(entries []MapEntry) Value { return Value{kind: KindMap, mapVal: entries} }

// StructValue returns a tagged structure value.
func StructValue(s *Structure) Value { return Value{kind: KindStruct, structVal: s} }

// AsBool returns the value's boolean payload.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("pkstream: value is %s, not bool", v.kind)
	}
	return v.boolVal, nil
}

// AsFloat returns the value's float payload.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, fmt.Errorf("pkstream: value is %s, not float", v.kind)
	}
	return v.floatVal, nil
}

// AsInt returns the value's integer payload.
func (v Value) AsInt() (Int64, error) {
	if v.kind != KindInt {
		return Int64{}, fmt.Errorf("pkstream: value is %s, not int", v.kind)
	}
	return v.intVal, nil
}

// AsString returns the value's string payload.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("pkstream: value is %s, not string", v.kind)
	}
	return v.stringVal, nil
}

// AsList returns the value's list payload.
func (v Value) AsList() ([]Value, error) {
	if v.kind != KindList {
		return nil, fmt.Errorf("pkstream: value is %s, not list", v.kind)
	}
	return v.listVal, nil
}

// AsMap returns the value's map payload.
func (v Value) AsMap() ([]MapEntry, error) {
	if v.kind != KindMap {
		return nil, fmt.Errorf("pkstream: value is %s, not map", v.kind)
	}
	return v.mapVal, nil
}

// AsStruct returns the value's structure payload.
func (v Value) AsStruct() (*Structure, error) {
	if v.kind != KindStruct {
		return nil, fmt.Errorf("pkstream: value is %s, not struct", v.kind)
	}
	return v.structVal, nil
}

// Equal reports whether two values are structurally equal. Map
// equality tolerates any entry order but requires the same set of
// keys mapped to equal values, since the wire format does not
// preserve map order on decode.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return v.boolVal == other.boolVal
	case KindFloat:
		return v.floatVal == other.floatVal
	case KindInt:
		return v.intVal.Equal(other.intVal)
	case KindString:
		return v.stringVal == other.stringVal
	case KindList:
		if len(v.listVal) != len(other.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(other.listVal[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.mapVal) != len(other.mapVal) {
			return false
		}
		for _, entry := range v.mapVal {
			match, ok := lookupEntry(other.mapVal, entry.Key)
			if !ok || !entry.Value.Equal(match) {
				return false
			}
		}
		return true
	case KindStruct:
		return v.structVal.Equal(other.structVal)
	default:
		return false
	}
}

func lookupEntry(entries []MapEntry, key string) (Value, bool) {
	for _, entry := range entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return Value{}, false
}
