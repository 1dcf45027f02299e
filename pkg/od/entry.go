package od

import (
	"fmt"
	"sort"
)

// An Entry is one object of the [ObjectDict], i.e. an OD object at a specific index.
// Fields hold the raw text found in the EDS, defaults are applied when missing.
// Sub entries are only present if the EDS defines sub-index sections for this index.
type Entry struct {
	// The OD index e.g. x1006
	Index uint16
	// The OD name inside of EDS
	Name string
	// Hex encoded CiA 301 data type e.g. "0x0007"
	DataType string
	// Access token e.g. "ro", "wo", "rw", "const"
	AccessType string

	subEntries map[uint8]*SubEntry
}

// A SubEntry is one sub-index of an [Entry].
type SubEntry struct {
	SubIndex uint8
	// nil when not declared
	Value *string
	// nil when not declared
	DefaultValue *string
	DataType     string
	AccessType   string
}

func newEntry(index uint16) *Entry {
	return &Entry{
		Index:      index,
		Name:       DefaultName,
		DataType:   SynthesizedDataType,
		AccessType: SynthesizedAccessType,
		subEntries: make(map[uint8]*SubEntry),
	}
}

// SubIndex returns the [SubEntry] at the given sub-index, nil if it does not exist.
func (entry *Entry) SubIndex(subIndex uint8) *SubEntry {
	if entry == nil {
		return nil
	}
	return entry.subEntries[subIndex]
}

// SubIndexes returns the defined sub-indexes in ascending order.
func (entry *Entry) SubIndexes() []uint8 {
	subIndexes := make([]uint8, 0, len(entry.subEntries))
	for subIndex := range entry.subEntries {
		subIndexes = append(subIndexes, subIndex)
	}
	sort.Slice(subIndexes, func(i, j int) bool { return subIndexes[i] < subIndexes[j] })
	return subIndexes
}

// SubCount returns the number of sub entries.
func (entry *Entry) SubCount() int {
	return len(entry.subEntries)
}

func (entry *Entry) String() string {
	return fmt.Sprintf("x%04x %q (type %v, access %v, %d sub entries)",
		entry.Index, entry.Name, entry.DataType, entry.AccessType, len(entry.subEntries))
}

func (sub *SubEntry) String() string {
	return fmt.Sprintf("sub x%02x value=%v default=%v (type %v, access %v)",
		sub.SubIndex, optional(sub.Value), optional(sub.DefaultValue), sub.DataType, sub.AccessType)
}

func optional(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}
