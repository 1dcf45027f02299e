package od

import (
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

type sectionKind uint8

const (
	sectionSkip sectionKind = iota
	sectionTop
	sectionSub
)

// section is the classification of an EDS section name
type section struct {
	kind     sectionKind
	index    uint16
	subIndex uint8
}

// Sections that never describe an object
var skippedSections = map[string]struct{}{
	ini.DefaultSection:    {},
	"FileInfo":            {},
	"DeviceInfo":          {},
	"DummyUsage":          {},
	"Comments":            {},
	"MandatoryObjects":    {},
	"OptionalObjects":     {},
	"ManufacturerObjects": {},
	"Dummy":               {},
}

// classifySection decodes a section name. Recognized forms are
//   - "2001" top level object
//   - "2001sub3" sub object
//   - "2001 Sub 3" sub object
//
// Index is base 16, sub-index is base 10 unless prefixed with "0x".
// Anything that does not decode is skipped.
func classifySection(name string) section {
	if _, skip := skippedSections[name]; skip {
		return section{kind: sectionSkip}
	}
	indexPart, subPart, isSub := splitSectionName(name)
	index, err := strconv.ParseUint(indexPart, 16, 16)
	if err != nil {
		return section{kind: sectionSkip}
	}
	if !isSub {
		return section{kind: sectionTop, index: uint16(index)}
	}
	subIndex, err := parseSubIndex(subPart)
	if err != nil {
		return section{kind: sectionSkip}
	}
	return section{kind: sectionSub, index: uint16(index), subIndex: subIndex}
}

func splitSectionName(name string) (index string, sub string, isSub bool) {
	if index, sub, found := strings.Cut(name, " Sub "); found {
		return index, sub, true
	}
	if pos := strings.Index(name, "sub"); pos > 0 {
		return name[:pos], name[pos+len("sub"):], true
	}
	return name, "", false
}
