package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pinlabs/pinblock/pkg/pinblock"
)

var inspectCmd = &cobra.Command{
	Use:           "inspect",
	Short:         "Report the format of a PIN block without decoding it",
	Example:       "  pinblock inspect --block 041274EDCBA9876F",
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		blockHex, _ := cmd.Flags().GetString("block")
		if blockHex == "" {
			return errors.New("block is required")
		}

		block, err := hex.DecodeString(blockHex)
		if err != nil {
			return fmt.Errorf("invalid block hex: %w", err)
		}

		format, err := pinblock.GetFormat(block)
		if err != nil {
			return err
		}

		cmd.Printf("format: %s\n", format)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().String("block", "", "PIN block hex string")
}
