package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/samsamfire/sdotool/pkg/od"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "List the objects found in the EDS file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, _, err := loadDevice()
		if err != nil {
			return err
		}
		return printDictionary(cmd.OutOrStdout(), dict)
	},
}

func printDictionary(out io.Writer, dict *od.ObjectDict) error {
	fmt.Fprintf(out, "Device Type=0x%08X, Vendor ID=0x%08X\n", dict.DeviceType, dict.VendorId)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tSUB\tNAME\tTYPE\tACCESS\tVALUE")
	for _, index := range dict.Indexes() {
		entry := dict.Index(index)
		fmt.Fprintf(w, "0x%04X\t\t%s\t%s\t%s\t\n", index, entry.Name, od.DataTypeName(entry.DataType), entry.AccessType)
		for _, subIndex := range entry.SubIndexes() {
			sub := entry.SubIndex(subIndex)
			value := sub.Value
			if value == nil {
				value = sub.DefaultValue
			}
			shown := ""
			if value != nil {
				shown = *value
			}
			fmt.Fprintf(w, "\t0x%02X\t\t%s\t%s\t%s\n", subIndex, od.DataTypeName(sub.DataType), sub.AccessType, shown)
		}
	}
	return w.Flush()
}
