package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()

	return buf.String(), err
}

// Flag values persist on the shared command tree, so the missing-pan
// case must run before any test that sets --pan.
func TestEncodeCommand_MissingPan(t *testing.T) {
	_, err := executeCommand(rootCmd, "encode", "--pin", "1234", "--format", "0")
	if err == nil {
		t.Fatalf("expected an error, got none")
	}
}

func TestEncodeCommand_Format0(t *testing.T) {
	output, err := executeCommand(
		rootCmd,
		"encode", "--pin", "1234", "--pan", "4012345678909", "--format", "0",
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(output, "041274EDCBA9876F") {
		t.Fatalf("expected block in output, got %q", output)
	}
}

func TestDecodeCommand_Format2(t *testing.T) {
	output, err := executeCommand(rootCmd, "decode", "--block", "2534567FFFFFFFFF")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(output, "34567") {
		t.Fatalf("expected pin in output, got %q", output)
	}
}

func TestInspectCommand(t *testing.T) {
	output, err := executeCommand(rootCmd, "inspect", "--block", "2534567FFFFFFFFF")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(output, "ISO-2") {
		t.Fatalf("expected format in output, got %q", output)
	}
}

func TestFormatsCommand(t *testing.T) {
	output, err := executeCommand(rootCmd, "formats")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output == "" {
		t.Fatalf("expected output, got none")
	}
}
