package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/samsamfire/sdotool/internal/shell"
	"github.com/samsamfire/sdotool/pkg/od"
	"github.com/samsamfire/sdotool/pkg/sdo"
	"github.com/spf13/cobra"
)

var requestIndex string
var requestSubIndex string
var requestDirection string
var requestData string

func init() {
	validateCmd.Flags().StringVar(&requestIndex, "index", "", "object index, decimal or 0xHEX")
	validateCmd.Flags().StringVar(&requestSubIndex, "subindex", "", "sub-index, decimal or 0xHEX. The object itself is checked when empty")
	validateCmd.Flags().StringVar(&requestDirection, "direction", "", "upload or download")
	validateCmd.Flags().StringVar(&requestData, "data", "", "payload as a HEX string e.g. 0x01020304")

	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a single SDO request and print the frame that would be sent.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, nodeId, err := loadDevice()
		if err != nil {
			return err
		}
		return validateRequest(cmd.OutOrStdout(), dict, nodeId, requestIndex, requestSubIndex, requestDirection, requestData)
	},
}

// validateRequest parses the request arguments and validates them against dict.
// A rejected request is returned as an error.
func validateRequest(out io.Writer, dict *od.ObjectDict, nodeId uint8, indexInput, subIndexInput, directionInput, dataInput string) error {
	if indexInput == "" {
		return errors.New("an object index is required")
	}
	index, err := shell.ParseUintInRange(indexInput, 0, 0xFFFF)
	if err != nil {
		return errors.Wrap(err, "invalid object index")
	}
	entry := dict.Index(uint16(index))
	if entry == nil {
		return errors.Wrapf(sdo.AbortNotExist, "object 0x%04X", index)
	}
	direction, err := sdo.ParseDirection(directionInput)
	if err != nil {
		return err
	}
	data, err := shell.DecodePayload(dataInput)
	if err != nil {
		return err
	}

	var subIndex uint8
	if subIndexInput != "" {
		v, err := shell.ParseUintInRange(subIndexInput, 0, 0xFF)
		if err != nil {
			return errors.Wrap(err, "invalid sub-index")
		}
		subIndex = uint8(v)
		err = sdo.ValidateSubObject(entry.SubIndex(subIndex), direction, data)
		if err != nil {
			return errors.Wrapf(err, "object 0x%04X sub 0x%02X", index, subIndex)
		}
	} else if err := sdo.Validate(entry, direction, data); err != nil {
		return errors.Wrapf(err, "object 0x%04X", index)
	}

	fmt.Fprintf(out, "Valid SDO %v for 0x%04X sub 0x%02X (%d bytes)\n", direction, index, subIndex, len(data))
	frame, err := sdo.NewRequestFrame(nodeId, uint16(index), subIndex, direction, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", sdo.FormatFrame(frame))
	return nil
}
