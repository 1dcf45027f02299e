// Package shell implements the interactive prompt used to look up objects
// of an EDS and check SDO requests against them.
package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/samsamfire/sdotool/pkg/od"
	"github.com/samsamfire/sdotool/pkg/sdo"
	log "github.com/sirupsen/logrus"
)

const (
	promptObject    = "Object ID (decimal, 0xHEX, or 'quit'): "
	promptSubIndex  = "Sub-Index (decimal, 0xHEX, or 'skip'): "
	promptDirection = "SDO request type (upload/download): "
	promptData      = "Message data (HEX string, e.g. 0x01020304): "
)

var errQuit = errors.New("quit")

// LineReader is satisfied by *readline.Instance
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Shell asks for an object, an optional sub-index, a direction and a payload,
// then prints whether the SDO request would be accepted.
type Shell struct {
	od     *od.ObjectDict
	nodeId uint8
	rl     LineReader
	out    io.Writer
	logger *log.Entry
}

func New(dict *od.ObjectDict, nodeId uint8, rl LineReader, out io.Writer) *Shell {
	return &Shell{
		od:     dict,
		nodeId: nodeId,
		rl:     rl,
		out:    out,
		logger: log.WithField("node", nodeId),
	}
}

// NewReadline creates a readline backed line reader
func NewReadline(historyFile string) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptObject,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create readline")
	}
	return rl, nil
}

// Run loops until the user quits or input is closed.
// Bad input never ends the loop, the user is asked again.
func (s *Shell) Run() error {
	s.printf("Loaded EDS: Device Type=0x%08X, Vendor ID=0x%08X\n", s.od.DeviceType, s.od.VendorId)
	for {
		err := s.request()
		switch {
		case err == nil:
			s.printf("%s\n", strings.Repeat("-", 50))
		case errors.Is(err, readline.ErrInterrupt):
			s.printf("\n")
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			s.printf("Goodbye!\n")
			return nil
		default:
			return errors.Wrap(err, "input failed")
		}
	}
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Shell) prompt(prompt string) (string, error) {
	s.rl.SetPrompt(prompt)
	line, err := s.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// request runs one full object / sub-index / direction / payload exchange.
// Only prompt errors are returned, invalid answers are reported and end the exchange.
func (s *Shell) request() error {
	line, err := s.prompt(promptObject)
	if err != nil {
		return err
	}
	switch strings.ToLower(line) {
	case "":
		return nil
	case "quit", "exit", "q":
		return errQuit
	}
	index, err := ParseUintInRange(line, 0, 0xFFFF)
	if err != nil {
		s.printf("Invalid Object ID. Use 0x0000-0xFFFF or decimal.\n")
		return nil
	}
	entry := s.od.Index(uint16(index))
	if entry == nil {
		s.printf("Object 0x%04X not found\n", index)
		return nil
	}
	s.printf("Object 0x%04X: Name='%s', Access='%s', DataType='%s' (%s)\n",
		index, entry.Name, entry.AccessType, entry.DataType, od.DataTypeName(entry.DataType))

	line, err = s.prompt(promptSubIndex)
	if err != nil {
		return err
	}
	var sub *od.SubEntry
	var subIndex uint8
	if !strings.EqualFold(line, "skip") && line != "" {
		v, err := ParseUintInRange(line, 0, 0xFF)
		if err != nil {
			s.printf("Invalid Sub-Index.\n")
			return nil
		}
		subIndex = uint8(v)
		sub = entry.SubIndex(subIndex)
		if sub == nil {
			s.printf("  Sub-index 0x%02X not found\n", subIndex)
		} else {
			s.printf("  Sub 0x%02X: Value='%s', Default='%s' (type=%s, access=%s)\n",
				subIndex, valueOrNone(sub.Value), valueOrNone(sub.DefaultValue), sub.DataType, sub.AccessType)
		}
	}

	line, err = s.prompt(promptDirection)
	if err != nil {
		return err
	}
	direction, err := sdo.ParseDirection(line)
	if err != nil {
		s.printf("Invalid type. Use 'upload' or 'download'.\n")
		return nil
	}

	line, err = s.prompt(promptData)
	if err != nil {
		return err
	}
	data, err := DecodePayload(line)
	if err != nil {
		s.printf("Invalid hex.\n")
		return nil
	}

	s.report(entry, sub, subIndex, direction, data)
	return nil
}

// report validates against the selected sub entry when there is one, the object otherwise.
func (s *Shell) report(entry *od.Entry, sub *od.SubEntry, subIndex uint8, direction sdo.Direction, data []byte) {
	var err error
	if sub != nil {
		err = sdo.ValidateSubObject(sub, direction, data)
	} else {
		err = sdo.Validate(entry, direction, data)
	}
	if err != nil {
		s.logger.WithField("index", fmt.Sprintf("x%x", entry.Index)).Debugf("rejected : %v", err)
		s.printf("Invalid SDO: %v (abort code 0x%08X)\n", err, uint32(sdo.AbortCodeOf(err)))
		return
	}
	s.printf("Valid SDO %v for 0x%04X (%d %s)\n", direction, entry.Index, len(data), plural(len(data), "byte"))

	frame, err := sdo.NewRequestFrame(s.nodeId, entry.Index, subIndex, direction, data)
	if err != nil {
		s.logger.Debugf("no request frame : %v", err)
		return
	}
	s.printf("Request frame: %s\n", sdo.FormatFrame(frame))
}

func valueOrNone(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
