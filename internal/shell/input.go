package shell

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrOutOfRange = errors.New("value out of range")

// ParseUintInRange reads a user supplied number, "0x" prefixed values are
// base 16, others base 10. The result must be within [min, max].
func ParseUintInRange(input string, min uint32, max uint32) (uint32, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	var value uint64
	var err error
	if strings.HasPrefix(s, "0x") {
		value, err = strconv.ParseUint(s[2:], 16, 32)
	} else {
		value, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %q", input)
	}
	if value < uint64(min) || value > uint64(max) {
		return 0, errors.Wrapf(ErrOutOfRange, "%d not in [%d, %d]", value, min, max)
	}
	return uint32(value), nil
}

// DecodePayload decodes a hex string such as "0x01020304" into bytes.
func DecodePayload(input string) ([]byte, error) {
	s := strings.TrimSpace(input)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding payload %q", input)
	}
	return data, nil
}
