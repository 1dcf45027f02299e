package od

import "errors"

var (
	ErrMissingDeviceType = errors.New("missing mandatory object 0x1000")
	ErrMissingIdentity   = errors.New("missing identity object 0x1018")
	ErrEdsFormat         = errors.New("unsupported EDS storage format")
	ErrInvalidNumber     = errors.New("invalid numeric value")
)

// SyntaxError is returned when the EDS container itself cannot be read,
// or when a mandatory numeric field is not a number.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return "EDS parse error: " + e.Err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
