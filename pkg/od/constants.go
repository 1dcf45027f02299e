package od

// CiA 301 data types understood by the dictionary
const (
	BOOLEAN         uint16 = 0x0001
	INTEGER8        uint16 = 0x0002
	INTEGER16       uint16 = 0x0003
	INTEGER32       uint16 = 0x0004
	UNSIGNED8       uint16 = 0x0005
	UNSIGNED16      uint16 = 0x0006
	UNSIGNED32      uint16 = 0x0007
	REAL32          uint16 = 0x0008
	VISIBLE_STRING  uint16 = 0x0009
	OCTET_STRING    uint16 = 0x000A
	UNICODE_STRING  uint16 = 0x000B
	TIME_OF_DAY     uint16 = 0x0010
	TIME_DIFFERENCE uint16 = 0x0011
	REAL64          uint16 = 0x0015
)

// Mandatory objects
const (
	IndexDeviceType uint16 = 0x1000
	IndexIdentity   uint16 = 0x1018
)

// EDS storage formats, as found in object 0x1021 / 0x1022
const (
	FormatEDSAscii  uint8 = 0
	FormatEDSZipped uint8 = 1
)

// Values used when a field is missing from the EDS
const (
	DefaultName           = "Unnamed"
	DefaultDataType       = "0x0005"
	DefaultAccessType     = "ro"
	DefaultSubAccessType  = "rw"
	SynthesizedDataType   = "UNKNOWN"
	SynthesizedAccessType = "rw"
)
