package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/samsamfire/sdotool/pkg/od"
	"github.com/samsamfire/sdotool/pkg/sdo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest(t *testing.T) {
	dict := od.Default()

	t.Run("valid download", func(t *testing.T) {
		out := &bytes.Buffer{}
		err := validateRequest(out, dict, 5, "0x2000", "", "download", "0x3412")
		require.Nil(t, err)
		assert.Contains(t, out.String(), "Valid SDO download for 0x2000 sub 0x00 (2 bytes)")
		assert.Contains(t, out.String(), "605 [8] 2B 00 20 00 34 12 00 00")
	})
	t.Run("valid sub upload", func(t *testing.T) {
		out := &bytes.Buffer{}
		err := validateRequest(out, dict, 5, "0x1018", "2", "upload", "00000000")
		require.Nil(t, err)
		assert.Contains(t, out.String(), "605 [8] 40 18 10 02 00 00 00 00")
	})
	t.Run("write only", func(t *testing.T) {
		err := validateRequest(&bytes.Buffer{}, dict, 5, "0x2000", "", "upload", "0x3412")
		assert.ErrorIs(t, err, sdo.ErrAccessDenied)
		assert.Equal(t, sdo.AbortWriteOnly, sdo.AbortCodeOf(err))
	})
	t.Run("unknown object", func(t *testing.T) {
		err := validateRequest(&bytes.Buffer{}, dict, 5, "0x3000", "", "upload", "")
		assert.Equal(t, sdo.AbortNotExist, sdo.AbortCodeOf(err))
	})
	t.Run("unknown sub-index", func(t *testing.T) {
		err := validateRequest(&bytes.Buffer{}, dict, 5, "0x2003", "7", "upload", "0100")
		assert.Equal(t, sdo.AbortSubUnknown, sdo.AbortCodeOf(err))
	})
	t.Run("bad arguments", func(t *testing.T) {
		assert.NotNil(t, validateRequest(&bytes.Buffer{}, dict, 5, "", "", "upload", ""))
		assert.NotNil(t, validateRequest(&bytes.Buffer{}, dict, 5, "0x2001", "", "read", "01020304"))
		assert.NotNil(t, validateRequest(&bytes.Buffer{}, dict, 5, "0x2001", "", "upload", "xyz"))
		assert.NotNil(t, validateRequest(&bytes.Buffer{}, dict, 5, "0x2001", "0x1FF", "upload", "01020304"))
	})
}

func TestPrintDictionary(t *testing.T) {
	out := &bytes.Buffer{}
	require.Nil(t, printDictionary(out, od.Default()))
	assert.Contains(t, out.String(), "Device Type=0x00000191, Vendor ID=0x12345678")
	assert.Contains(t, out.String(), "Speed")
	assert.Contains(t, out.String(), "UNSIGNED32")
	assert.Contains(t, out.String(), "0x0000002A")
}

func TestLoadDevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.eds")
	eds := "[1000]\nDefaultValue=0x191\n[1018]\nSub1=0x12345678\n[2001]\nParameterName=Speed\nDataType=0x0007\nAccessType=rw\n"
	require.Nil(t, os.WriteFile(path, []byte(eds), 0o644))

	edsPath, nodeIdInput = path, "0x10"
	defer func() { edsPath, nodeIdInput = "", "" }()

	dict, nodeId, err := loadDevice()
	require.Nil(t, err)
	assert.EqualValues(t, 0x10, nodeId)
	assert.NotNil(t, dict.Index(0x2001))

	nodeIdInput = "200"
	_, _, err = loadDevice()
	assert.NotNil(t, err)

	nodeIdInput = "1"
	edsPath = filepath.Join(t.TempDir(), "missing.eds")
	_, _, err = loadDevice()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
