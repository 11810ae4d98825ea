package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pinlabs/pinblock/pkg/cryptoutils"
	"github.com/pinlabs/pinblock/pkg/pinblock"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build a PIN block from a PIN and, where required, a PAN",
	Long: `Build an ISO 9564-1 PIN block in the given format.
Formats 0 and 3 require a PAN; format 1 accepts an optional hex nonce;
format 4 produces the plaintext PIN field (and the PAN field when a PAN
is given) for the caller to encipher.`,
	Example: `  # ISO format 0
  pinblock encode --pin 1234 --pan 4012345678909 --format 0

  # ISO format 1 with a transaction counter nonce
  pinblock encode --pin 12345 --format 1 --nonce 9A33C56F87A9CBED

  # ISO format 4 PIN and PAN fields
  pinblock encode --pin 1234 --pan 4111111111111111 --format 4`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		pinStr, _ := cmd.Flags().GetString("pin")
		panStr, _ := cmd.Flags().GetString("pan")
		format, _ := cmd.Flags().GetInt("format")
		nonceHex, _ := cmd.Flags().GetString("nonce")

		if pinStr == "" {
			return errors.New("pin is required")
		}
		if format < 0 || format > 4 {
			return errors.New("format must be 0 to 4")
		}

		pin, err := pinblock.ParsePIN(pinStr)
		if err != nil {
			return err
		}
		defer cryptoutils.Zeroize(pin)

		var pan []byte
		if panStr != "" {
			if pan, err = pinblock.ParsePAN(panStr); err != nil {
				return err
			}
		}

		switch pinblock.Format(format) {
		case pinblock.Format0, pinblock.Format3:
			if pan == nil {
				return errors.New("pan is required for formats 0 and 3")
			}
			var block []byte
			if pinblock.Format(format) == pinblock.Format0 {
				block, err = pinblock.EncodeFormat0(pin, pan)
			} else {
				block, err = pinblock.EncodeFormat3(pin, pan)
			}
			if err != nil {
				return err
			}
			cmd.Printf("pin block (%s): %s\n", pinblock.Format(format), hexUpper(block))
			cryptoutils.Zeroize(block)
		case pinblock.Format1:
			var nonce []byte
			if nonceHex != "" {
				if nonce, err = hex.DecodeString(nonceHex); err != nil {
					return fmt.Errorf("invalid nonce hex: %w", err)
				}
			}
			block, err := pinblock.EncodeFormat1(pin, nonce)
			if err != nil {
				return err
			}
			cmd.Printf("pin block (%s): %s\n", pinblock.Format1, hexUpper(block))
			cryptoutils.Zeroize(block)
		case pinblock.Format2:
			block, err := pinblock.EncodeFormat2(pin)
			if err != nil {
				return err
			}
			cmd.Printf("pin block (%s): %s\n", pinblock.Format2, hexUpper(block))
			cryptoutils.Zeroize(block)
		case pinblock.Format4:
			pinField, err := pinblock.EncodeFormat4PINField(pin)
			if err != nil {
				return err
			}
			cmd.Printf("pin field (%s): %s\n", pinblock.Format4, hexUpper(pinField))
			cryptoutils.Zeroize(pinField)
			if pan != nil {
				panField, err := pinblock.EncodeFormat4PANField(pan)
				if err != nil {
					return err
				}
				cmd.Printf("pan field (%s): %s\n", pinblock.Format4, hexUpper(panField))
			}
		}

		return nil
	},
}

func hexUpper(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().String("pin", "", "PIN number (4-12 digits)")
	encodeCmd.Flags().String("pan", "", "Primary Account Number (card number)")
	encodeCmd.Flags().Int("format", 0, "ISO 9564-1 format number (0-4)")
	encodeCmd.Flags().String("nonce", "", "Hex nonce for format 1 (random when omitted)")
}
