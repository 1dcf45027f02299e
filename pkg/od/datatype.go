package od

import (
	"fmt"
	"strconv"
	"strings"
)

type dataTypeInfo struct {
	name   string
	length int
}

// Expected SDO payload length per data type.
// String types have no fixed size in CiA 301, they are checked against
// a fixed 8 byte length here, the same as the 64 bit types.
var dataTypes = map[uint16]dataTypeInfo{
	BOOLEAN:         {"BOOLEAN", 1},
	INTEGER8:        {"INTEGER8", 1},
	INTEGER16:       {"INTEGER16", 2},
	INTEGER32:       {"INTEGER32", 4},
	UNSIGNED8:       {"UNSIGNED8", 1},
	UNSIGNED16:      {"UNSIGNED16", 2},
	UNSIGNED32:      {"UNSIGNED32", 4},
	REAL32:          {"REAL32", 4},
	VISIBLE_STRING:  {"VISIBLE_STRING", 8},
	OCTET_STRING:    {"OCTET_STRING", 8},
	UNICODE_STRING:  {"UNICODE_STRING", 8},
	TIME_OF_DAY:     {"TIME_OF_DAY", 8},
	TIME_DIFFERENCE: {"TIME_DIFFERENCE", 8},
	REAL64:          {"REAL64", 8},
}

// DecodeDataType converts an EDS DataType field e.g. "0x0007" into its code.
// The "0x" prefix is optional, the value is always base 16.
func DecodeDataType(dataType string) (uint16, error) {
	s := dataType
	if hasHexPrefix(s) {
		s = s[2:]
	}
	code, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid data type %q: %w", dataType, err)
	}
	return uint16(code), nil
}

// DataTypeLength returns the expected payload length for a data type code.
func DataTypeLength(code uint16) (int, bool) {
	info, ok := dataTypes[code]
	return info.length, ok
}

// DataTypeName returns a printable name for the data type, e.g. "UNSIGNED32".
// Unknown codes or unparsable fields are returned as is.
func DataTypeName(dataType string) string {
	code, err := DecodeDataType(strings.TrimSpace(dataType))
	if err != nil {
		return dataType
	}
	info, ok := dataTypes[code]
	if !ok {
		return fmt.Sprintf("0x%04X", code)
	}
	return info.name
}
