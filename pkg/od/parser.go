package od

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

const (
	keyParameterName    = "ParameterName"
	keyDataType         = "DataType"
	keyAccessType       = "AccessType"
	keyDefaultValue     = "DefaultValue"
	keyValue            = "Value"
	keyVendorId         = "Sub1"
	keyVendorIdFallback = "1"

	sectionNameDeviceType = "1000"
	sectionNameIdentity   = "1018"
)

// Parse an EDS file
// file can be either a path or an io.Reader or []byte
func Parse(file any) (*ObjectDict, error) {
	edsFile, err := ini.Load(file)
	if err != nil {
		return nil, &SyntaxError{Err: err}
	}

	deviceType, err := parseDeviceType(edsFile)
	if err != nil {
		return nil, err
	}
	vendorId, err := parseVendorId(edsFile)
	if err != nil {
		return nil, err
	}
	od := newObjectDict(deviceType, vendorId)

	for _, iniSection := range edsFile.Sections() {
		name := iniSection.Name()
		s := classifySection(name)
		switch s.kind {
		case sectionTop:
			od.addEntry(s.index, iniSection)
		case sectionSub:
			od.addSubEntry(s.index, s.subIndex, iniSection)
		default:
			log.Debugf("[OD] skipping section [%v]", name)
		}
	}
	log.Debugf("[OD] parsed %d objects, device type x%08x, vendor id x%08x", od.Len(), deviceType, vendorId)
	return od, nil
}

// ParseFile reads and parses the EDS file at path.
// Files with a .zip extension are expected to hold exactly one EDS.
func ParseFile(path string) (*ObjectDict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	formatType := FormatEDSAscii
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		formatType = FormatEDSZipped
	}
	return DefaultEDSFormatHandler(formatType, f)
}

// [EDSFormatHandler] takes a formatType and a reader
// to handle an EDS file stored as a proprietary format (zip, etc)
type EDSFormatHandler func(formatType uint8, reader io.Reader) (*ObjectDict, error)

// Default EDS format handler used by this library
// This can be used as a template to add other format handlers
func DefaultEDSFormatHandler(formatType uint8, reader io.Reader) (*ObjectDict, error) {

	switch formatType {

	case FormatEDSAscii:
		raw, err := io.ReadAll(reader)
		if err != nil {
			return nil, err
		}
		return Parse(raw)

	case FormatEDSZipped:
		raw, err := io.ReadAll(reader)
		if err != nil {
			return nil, err
		}
		zipped, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
		if err != nil {
			return nil, err
		}
		if len(zipped.File) != 1 {
			return nil, fmt.Errorf("expecting exactly 1 file in archive, got %d", len(zipped.File))
		}
		r, err := zipped.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer r.Close()
		uncompressed, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return Parse(uncompressed)

	default:
		return nil, ErrEdsFormat
	}
}

func parseDeviceType(edsFile *ini.File) (uint32, error) {
	deviceSection, err := edsFile.GetSection(sectionNameDeviceType)
	if err != nil || !deviceSection.HasKey(keyDefaultValue) {
		return 0, ErrMissingDeviceType
	}
	deviceType, err := ParseNumeric(deviceSection.Key(keyDefaultValue).String())
	if err != nil {
		return 0, &SyntaxError{Err: fmt.Errorf("[%v] %v: %w", sectionNameDeviceType, keyDefaultValue, err)}
	}
	return deviceType, nil
}

// A missing or malformed vendor id is not an error, only a missing identity object is.
func parseVendorId(edsFile *ini.File) (uint32, error) {
	identitySection, err := edsFile.GetSection(sectionNameIdentity)
	if err != nil {
		return 0, ErrMissingIdentity
	}
	key := keyVendorId
	if !identitySection.HasKey(key) {
		key = keyVendorIdFallback
	}
	if !identitySection.HasKey(key) {
		log.Debugf("[OD] no vendor id in [%v], using 0", sectionNameIdentity)
		return 0, nil
	}
	vendorId, err := ParseNumeric(identitySection.Key(key).String())
	if err != nil {
		log.Debugf("[OD] malformed vendor id in [%v], using 0 : %v", sectionNameIdentity, err)
		return 0, nil
	}
	return vendorId, nil
}

// addEntry sets the top level fields of the entry at index.
// Sub entries collected before, if any, are kept.
func (od *ObjectDict) addEntry(index uint16, iniSection *ini.Section) {
	entry := od.entry(index)
	entry.Name = valueOr(iniSection, keyParameterName, DefaultName)
	entry.DataType = valueOr(iniSection, keyDataType, DefaultDataType)
	entry.AccessType = valueOr(iniSection, keyAccessType, DefaultAccessType)
}

func (od *ObjectDict) addSubEntry(index uint16, subIndex uint8, iniSection *ini.Section) {
	entry := od.entry(index)
	entry.subEntries[subIndex] = &SubEntry{
		SubIndex:     subIndex,
		Value:        optionalValue(iniSection, keyValue),
		DefaultValue: optionalValue(iniSection, keyDefaultValue),
		DataType:     valueOr(iniSection, keyDataType, DefaultDataType),
		AccessType:   valueOr(iniSection, keyAccessType, DefaultSubAccessType),
	}
}

func valueOr(iniSection *ini.Section, key string, fallback string) string {
	if !iniSection.HasKey(key) {
		return fallback
	}
	return iniSection.Key(key).String()
}

func optionalValue(iniSection *ini.Section, key string) *string {
	if !iniSection.HasKey(key) {
		return nil
	}
	value := iniSection.Key(key).String()
	return &value
}
