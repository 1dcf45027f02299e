package shell

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/samsamfire/sdotool/pkg/od"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	lines   []string
	prompts []string
	err     error
}

func (r *scriptedReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func run(t *testing.T, lines ...string) string {
	out := &bytes.Buffer{}
	s := New(od.Default(), 0x10, &scriptedReader{lines: lines}, out)
	require.Nil(t, s.Run())
	return out.String()
}

func TestShellQuit(t *testing.T) {
	out := run(t, "quit")
	assert.Contains(t, out, "Loaded EDS: Device Type=0x00000191, Vendor ID=0x12345678")
	assert.Contains(t, out, "Goodbye!")
}

func TestShellValidUpload(t *testing.T) {
	out := run(t, "0x2001", "skip", "upload", "0x01020304", "quit")
	assert.Contains(t, out, "Object 0x2001: Name='Speed', Access='rw', DataType='0x0007' (UNSIGNED32)")
	assert.Contains(t, out, "Valid SDO upload for 0x2001 (4 bytes)")
	assert.Contains(t, out, "Request frame: 610 [8] 40 01 20 00 00 00 00 00")
}

func TestShellLengthMismatch(t *testing.T) {
	out := run(t, "0x2001", "skip", "download", "0102", "quit")
	assert.Contains(t, out, "Invalid SDO: message length mismatch: expected 4 bytes for DataType 0x0007, got 2")
	assert.Contains(t, out, "abort code 0x06070013")
}

func TestShellSubObject(t *testing.T) {
	out := run(t, "4120", "0x4", "upload", "0x2A000000", "quit")
	assert.Contains(t, out, "Object 0x1018: Name='Identity object'")
	assert.Contains(t, out, "Sub 0x04: Value='0x0000002A', Default='None' (type=0x0007, access=ro)")
	assert.Contains(t, out, "Valid SDO upload for 0x1018 (4 bytes)")
	assert.Contains(t, out, "Request frame: 610 [8] 40 18 10 04 00 00 00 00")
}

func TestShellSubObjectAccess(t *testing.T) {
	out := run(t, "0x1018", "1", "download", "0x78563412", "quit")
	assert.Contains(t, out, "Invalid SDO: Write access denied (abort code 0x06010002)")
}

func TestShellMissingSubObject(t *testing.T) {
	// Falls back to the object itself
	out := run(t, "0x2001", "9", "download", "0x01020304", "quit")
	assert.Contains(t, out, "Sub-index 0x09 not found")
	assert.Contains(t, out, "Valid SDO download for 0x2001 (4 bytes)")
	assert.Contains(t, out, "Request frame: 610 [8] 23 01 20 09 01 02 03 04")
}

func TestShellInvalidInput(t *testing.T) {
	out := run(t,
		"hello",
		"0x10000",
		"0x3000",
		"0x2001", "0x100",
		"0x2001", "skip", "read",
		"0x2001", "skip", "upload", "0xZZ",
		"quit",
	)
	assert.Contains(t, out, "Invalid Object ID.")
	assert.Contains(t, out, "Object 0x3000 not found")
	assert.Contains(t, out, "Invalid Sub-Index.")
	assert.Contains(t, out, "Invalid type. Use 'upload' or 'download'.")
	assert.Contains(t, out, "Invalid hex.")
	assert.Contains(t, out, "Goodbye!")
}

func TestShellPrompts(t *testing.T) {
	reader := &scriptedReader{lines: []string{"0x2001", "skip", "upload", "01020304"}}
	s := New(od.Default(), 1, reader, io.Discard)
	require.Nil(t, s.Run())
	assert.Equal(t, []string{promptObject, promptSubIndex, promptDirection, promptData, promptObject}, reader.prompts)
}

type interruptOnce struct {
	scriptedReader
	interrupted bool
}

func (r *interruptOnce) Readline() (string, error) {
	if !r.interrupted {
		r.interrupted = true
		return "", readline.ErrInterrupt
	}
	return r.scriptedReader.Readline()
}

func TestShellInterrupt(t *testing.T) {
	out := &bytes.Buffer{}
	reader := &interruptOnce{scriptedReader: scriptedReader{lines: []string{"quit"}}}
	s := New(od.Default(), 1, reader, out)
	require.Nil(t, s.Run())
	assert.True(t, reader.interrupted)
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestShellInputFailure(t *testing.T) {
	reader := &scriptedReader{lines: []string{"0x2001"}, err: errors.New("broken terminal")}
	s := New(od.Default(), 1, reader, io.Discard)
	err := s.Run()
	assert.ErrorContains(t, err, "broken terminal")
}
