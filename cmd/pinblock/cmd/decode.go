package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pinlabs/pinblock/pkg/cryptoutils"
	"github.com/pinlabs/pinblock/pkg/pinblock"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Extract the clear PIN from a PIN block",
	Long: `Detect the format of a PIN block from its size and control field
and extract the clear PIN. Formats 0 and 3 require the PAN the block
was built with; for format 4 pass the deciphered plaintext PIN field.`,
	Example: `  # ISO format 0
  pinblock decode --block 041274EDCBA9876F --pan 4012345678909

  # ISO format 2
  pinblock decode --block 2534567FFFFFFFFF`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		blockHex, _ := cmd.Flags().GetString("block")
		panStr, _ := cmd.Flags().GetString("pan")

		if blockHex == "" {
			return errors.New("block is required")
		}
		block, err := hex.DecodeString(blockHex)
		if err != nil {
			return fmt.Errorf("invalid block hex: %w", err)
		}
		defer cryptoutils.Zeroize(block)

		var pan []byte
		if panStr != "" {
			if pan, err = pinblock.ParsePAN(panStr); err != nil {
				return err
			}
		}

		format, pin, err := pinblock.Decode(block, pan)
		if err != nil {
			return err
		}
		defer cryptoutils.Zeroize(pin)

		cmd.Printf("pin extracted (%s): %s\n", format, pinblock.PINString(pin))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().String("block", "", "PIN block hex string")
	decodeCmd.Flags().String("pan", "", "Primary Account Number (card number)")
}
