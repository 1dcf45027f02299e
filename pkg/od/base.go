package od

import _ "embed"

//go:embed base.eds
var rawDefaultOd []byte

// Return embeded sample object dictionary
func Default() *ObjectDict {
	defaultOd, err := Parse(rawDefaultOd)
	if err != nil {
		panic(err)
	}
	return defaultOd
}
