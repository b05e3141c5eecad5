package pkstream

// Structure is an inert carrier of a signature byte and its fields.
// It is used symmetrically: as pack input for tagged values the
// caller builds directly, and as the default unpack result when no
// mapper is registered for a signature.
type Structure struct {
	Signature uint8
	Fields    []Value
}

// NewStructure returns a new Structure with the given signature and
// fields.
func NewStructure(signature uint8, fields ...Value) *Structure {
	return &Structure{Signature: signature, Fields: fields}
}

// Equal reports whether two structures have the same signature and
// element-wise equal fields.
func (s *Structure) Equal(other *Structure) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Signature != other.Signature || len(s.Fields) != len(other.Fields) {
		return false
	}
	for i := range s.Fields {
		if !s.Fields[i].Equal(other.Fields[i]) {
			return false
		}
	}
	return true
}
