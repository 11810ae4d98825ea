// Package cmd provides the CLI commands for the pinblock application.
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pinblock",
	Short: "ISO 9564 PIN block utilities and translation server",
	Long:  `Utilities and a TCP server for building, inspecting and decoding ISO 9564-1 PIN blocks in formats 0 to 4 for payment card processing.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
