package sdo

import (
	"fmt"
	"strings"
)

// Common defines to both SDO server and SDO client
type SDOAbortCode uint32

// Direction of an SDO request, seen from the client
type Direction uint8

const (
	ClientBaseId = 0x600
	ServerBaseId = 0x580
)

const (
	Upload   Direction = 0
	Download Direction = 1
)

const (
	AbortUnsupportedAccess SDOAbortCode = 0x06010000
	AbortWriteOnly         SDOAbortCode = 0x06010001
	AbortReadOnly          SDOAbortCode = 0x06010002
	AbortNotExist          SDOAbortCode = 0x06020000
	AbortTypeMismatch      SDOAbortCode = 0x06070010
	AbortDataLong          SDOAbortCode = 0x06070012
	AbortDataShort         SDOAbortCode = 0x06070013
	AbortSubUnknown        SDOAbortCode = 0x06090011
	AbortGeneral           SDOAbortCode = 0x08000000
)

var AbortCodeDescriptionMap = map[SDOAbortCode]string{
	AbortUnsupportedAccess: "Unsupported access to an object",
	AbortWriteOnly:         "Attempt to read a write only object",
	AbortReadOnly:          "Attempt to write a read only object",
	AbortNotExist:          "Object does not exist in the object dictionary",
	AbortTypeMismatch:      "Data type does not match, length does not match",
	AbortDataLong:          "Data type does not match, length too high",
	AbortDataShort:         "Data type does not match, length too short",
	AbortSubUnknown:        "Sub index does not exist",
	AbortGeneral:           "General error",
}

func (abort SDOAbortCode) Error() string {
	return fmt.Sprintf("x%x : %s", uint32(abort), abort.Description())
}

func (abort SDOAbortCode) Description() string {
	description, ok := AbortCodeDescriptionMap[abort]
	if ok {
		return description
	}
	return AbortCodeDescriptionMap[AbortGeneral]
}

func (direction Direction) String() string {
	switch direction {
	case Upload:
		return "upload"
	case Download:
		return "download"
	default:
		return fmt.Sprintf("direction(%d)", uint8(direction))
	}
}

// ParseDirection accepts "upload" or "download", case insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upload":
		return Upload, nil
	case "download":
		return Download, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrInvalidDirection, s)
	}
}
