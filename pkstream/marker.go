package pkstream

// Marker bytes. All multi-byte integer fields on the wire are
// big-endian. Ranges not named here (0xC4-0xC7, 0xCC-0xCF, 0xD3,
// 0xD7, 0xDB, 0xDE-0xDF, 0xE0-0xEF) are invalid on decode.
const (
	markerTinyStringMin = 0x80
	markerTinyStringMax = 0x8F
	markerString8       = 0xD0
	markerString16      = 0xD1
	markerString32      = 0xD2

	markerTinyListMin = 0x90
	markerTinyListMax = 0x9F
	markerList8       = 0xD4
	markerList16      = 0xD5
	markerList32      = 0xD6

	markerTinyMapMin = 0xA0
	markerTinyMapMax = 0xAF
	markerMap8       = 0xD8
	markerMap16      = 0xD9
	markerMap32      = 0xDA

	markerTinyStructMin = 0xB0
	markerTinyStructMax = 0xBF
	markerStruct8       = 0xDC
	markerStruct16      = 0xDD

	markerNull    = 0xC0
	markerFloat64 = 0xC1
	markerFalse   = 0xC2
	markerTrue    = 0xC3

	markerInt8  = 0xC8
	markerInt16 = 0xC9
	markerInt32 = 0xCA
	markerInt64 = 0xCB

	markerTinyIntMin = 0x00
	markerTinyIntMax = 0x7F
	markerNegTinyMin = 0xF0
	markerNegTinyMax = 0xFF
)

// Tier boundaries for Int64 narrowing, spelled out as named constants
// so packInt's tier ladder reads as a table rather than a wall of
// magic numbers.
const (
	tinyIntLow  = -16
	tinyIntHigh = 128 // exclusive

	int8Low  = -128
	int8High = -16 // exclusive

	int16Low  = -1 << 15
	int16High = 1 << 15 // exclusive

	int32Low  = -1 << 31
	int32High = 1 << 31 // exclusive
)

// Size-tier boundaries shared by strings, lists, and maps.
const (
	tinySizeMax = 16      // exclusive upper bound for the 4-bit inline tier
	size8Max    = 1 << 8  // exclusive upper bound for the u8-prefix tier
	size16Max   = 1 << 16 // exclusive upper bound for the u16-prefix tier
	size32Max   = 1 << 32 // exclusive upper bound for the u32-prefix tier

	structTinyMax = 16      // exclusive upper bound for the tiny struct tier
	struct8Max    = 1 << 8  // exclusive upper bound for the u8 struct tier
	struct16Max   = 1 << 16 // exclusive upper bound for the u16 struct tier
)
