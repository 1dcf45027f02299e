package od

import "sort"

// ObjectDict is the object dictionary read from an EDS file.
// It is built once by the parser and only read afterwards.
type ObjectDict struct {
	// Value of object 0x1000
	DeviceType uint32
	// Value of object 0x1018 sub 1, 0 if not available
	VendorId uint32

	entries map[uint16]*Entry
}

func newObjectDict(deviceType uint32, vendorId uint32) *ObjectDict {
	return &ObjectDict{
		DeviceType: deviceType,
		VendorId:   vendorId,
		entries:    make(map[uint16]*Entry),
	}
}

// Index returns the [Entry] at the given index, nil if it does not exist.
func (od *ObjectDict) Index(index uint16) *Entry {
	return od.entries[index]
}

// Indexes returns every index of the dictionary in ascending order.
func (od *ObjectDict) Indexes() []uint16 {
	indexes := make([]uint16, 0, len(od.entries))
	for index := range od.entries {
		indexes = append(indexes, index)
	}
	sort.Slice(indexes, func(i, j int) bool { return indexes[i] < indexes[j] })
	return indexes
}

// Len returns the number of entries.
func (od *ObjectDict) Len() int {
	return len(od.entries)
}

// entry fetches the entry slot at index, creating it with synthesized
// defaults if this is the first time the index is seen.
func (od *ObjectDict) entry(index uint16) *Entry {
	entry, ok := od.entries[index]
	if !ok {
		entry = newEntry(index)
		od.entries[index] = entry
	}
	return entry
}
