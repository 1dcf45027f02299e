package od

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySection(t *testing.T) {
	cases := map[string]section{
		"1000":         {kind: sectionTop, index: 0x1000},
		"a0F1":         {kind: sectionTop, index: 0xA0F1},
		"1018sub1":     {kind: sectionSub, index: 0x1018, subIndex: 1},
		"1018sub0x1F":  {kind: sectionSub, index: 0x1018, subIndex: 0x1F},
		"1600sub10":    {kind: sectionSub, index: 0x1600, subIndex: 10},
		"2003 Sub 2":   {kind: sectionSub, index: 0x2003, subIndex: 2},
		"2003 Sub 0xA": {kind: sectionSub, index: 0x2003, subIndex: 0xA},
	}
	for name, expected := range cases {
		assert.Equal(t, expected, classifySection(name), name)
	}
}

func TestClassifySectionSkips(t *testing.T) {
	for _, name := range []string{
		"DEFAULT",
		"FileInfo",
		"DeviceInfo",
		"DummyUsage",
		"Comments",
		"MandatoryObjects",
		"OptionalObjects",
		"ManufacturerObjects",
		"Dummy",
		"Tools",
		"",
		"10000",
		"sub1",
		"1018sub",
		"1018subA",
		"1018sub256",
		"XYZ sub 1",
		"2003 Sub ",
		"2003 Sub 0x",
	} {
		assert.Equal(t, sectionSkip, classifySection(name).kind, name)
	}
}
