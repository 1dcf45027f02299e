package sdo

import (
	"strings"

	"github.com/samsamfire/sdotool/pkg/od"
	log "github.com/sirupsen/logrus"
)

// Validate checks whether an SDO request with the given payload
// is acceptable for entry. Checks are done in order and the first
// failure is returned :
//   - the entry data type can be decoded
//   - the payload length matches the data type
//   - the entry access type allows the direction
func Validate(entry *od.Entry, direction Direction, data []byte) error {
	if entry == nil {
		return AbortNotExist
	}
	err := validate(entry.DataType, entry.AccessType, direction, data)
	if err != nil {
		log.Debugf("[SDO] %v x%x rejected : %v", direction, entry.Index, err)
		return err
	}
	log.Debugf("[SDO] %v x%x accepted (%d bytes)", direction, entry.Index, len(data))
	return nil
}

// ValidateSubObject does the same checks as [Validate] but against
// the data type and access type of a sub entry.
func ValidateSubObject(sub *od.SubEntry, direction Direction, data []byte) error {
	if sub == nil {
		return AbortSubUnknown
	}
	err := validate(sub.DataType, sub.AccessType, direction, data)
	if err != nil {
		log.Debugf("[SDO] %v sub x%x rejected : %v", direction, sub.SubIndex, err)
	}
	return err
}

func validate(dataType string, accessType string, direction Direction, data []byte) error {
	code, err := od.DecodeDataType(dataType)
	if err != nil {
		return &InvalidDataTypeError{DataType: dataType}
	}
	expected, ok := od.DataTypeLength(code)
	if !ok {
		return &UnsupportedDataTypeError{Code: code}
	}
	if len(data) != expected {
		return &LengthMismatchError{Expected: expected, Actual: len(data), DataType: code}
	}

	switch direction {
	case Upload:
		if !strings.ContainsRune(accessType, 'r') {
			return &AccessDeniedError{Direction: Upload}
		}
	case Download:
		if !strings.ContainsRune(accessType, 'w') {
			return &AccessDeniedError{Direction: Download}
		}
	default:
		return ErrInvalidDirection
	}
	return nil
}
