package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pinlabs/pinblock/pkg/pinblock"
)

var formatDescriptions = []struct {
	format pinblock.Format
	usage  string
}{
	{pinblock.Format0, "PAN-masked, 0xF fill; online PIN verification"},
	{pinblock.Format1, "unique padding, no PAN; PAN not available at encoding time"},
	{pinblock.Format2, "0xF fill, no PAN; local offline use such as ICC submission"},
	{pinblock.Format3, "PAN-masked, random 0xA-0xF fill"},
	{pinblock.Format4, "128-bit PIN field for AES encipherment"},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported PIN block formats",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, f := range formatDescriptions {
			cmd.Printf("%s  %s\n", f.format, f.usage)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
