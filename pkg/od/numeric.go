package od

import (
	"fmt"
	"strconv"
	"strings"
)

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// ParseNumeric reads an EDS numeric field as an unsigned 32 bit value.
// A "0x" prefix forces base 16. Without prefix base 16 is tried first,
// then base 10.
func ParseNumeric(value string) (uint32, error) {
	s := strings.TrimSpace(value)
	if hasHexPrefix(s) {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %v", ErrInvalidNumber, value, err)
		}
		return uint32(v), nil
	}
	if v, err := strconv.ParseUint(s, 16, 32); err == nil {
		return uint32(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidNumber, value, err)
	}
	return uint32(v), nil
}

// parseSubIndex reads the sub-index part of a section name.
// "0x" means base 16, anything else is base 10.
func parseSubIndex(token string) (uint8, error) {
	if hasHexPrefix(token) {
		v, err := strconv.ParseUint(token[2:], 16, 8)
		return uint8(v), err
	}
	v, err := strconv.ParseUint(token, 10, 8)
	return uint8(v), err
}
