package sdo

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataTypeFormat = errors.New("invalid data type format")
	ErrUnsupportedDataType   = errors.New("unsupported data type")
	ErrLengthMismatch        = errors.New("message length mismatch")
	ErrAccessDenied          = errors.New("access denied")
	ErrInvalidDirection      = errors.New("invalid SDO direction")
	ErrInvalidNodeId         = errors.New("node id must be in range 1..127")
	ErrEmptyDownload         = errors.New("nothing to download")
)

// InvalidDataTypeError is returned when the DataType field of an object is not hex.
type InvalidDataTypeError struct {
	DataType string
}

func (e *InvalidDataTypeError) Error() string {
	return fmt.Sprintf("invalid DataType format: %s", e.DataType)
}

func (e *InvalidDataTypeError) Unwrap() error { return ErrInvalidDataTypeFormat }

// UnsupportedDataTypeError is returned for data types without a known payload length.
type UnsupportedDataTypeError struct {
	Code uint16
}

func (e *UnsupportedDataTypeError) Error() string {
	return fmt.Sprintf("unsupported DataType: 0x%04X", e.Code)
}

func (e *UnsupportedDataTypeError) Unwrap() error { return ErrUnsupportedDataType }

// LengthMismatchError is returned when the payload does not have the data type size.
type LengthMismatchError struct {
	Expected int
	Actual   int
	DataType uint16
}

func (e *LengthMismatchError) Error() string {
	unit := "bytes"
	if e.Expected == 1 {
		unit = "byte"
	}
	return fmt.Sprintf("message length mismatch: expected %d %s for DataType 0x%04X, got %d",
		e.Expected, unit, e.DataType, e.Actual)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// AccessDeniedError is returned when the access type forbids the request direction.
type AccessDeniedError struct {
	Direction Direction
}

func (e *AccessDeniedError) Error() string {
	if e.Direction == Download {
		return "Write access denied"
	}
	return "Read access denied"
}

func (e *AccessDeniedError) Unwrap() error { return ErrAccessDenied }

// AbortCodeOf returns the abort code an SDO server would answer
// for a request rejected with err.
func AbortCodeOf(err error) SDOAbortCode {
	var abort SDOAbortCode
	var lengthErr *LengthMismatchError
	var accessErr *AccessDeniedError

	switch {
	case errors.As(err, &abort):
		return abort
	case errors.As(err, &lengthErr):
		if lengthErr.Actual > lengthErr.Expected {
			return AbortDataLong
		}
		return AbortDataShort
	case errors.As(err, &accessErr):
		if accessErr.Direction == Upload {
			return AbortWriteOnly
		}
		return AbortReadOnly
	case errors.Is(err, ErrInvalidDataTypeFormat), errors.Is(err, ErrUnsupportedDataType):
		return AbortTypeMismatch
	case errors.Is(err, ErrInvalidDirection):
		return AbortUnsupportedAccess
	default:
		return AbortGeneral
	}
}
