package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/pinlabs/pinblock/cmd/pinblock/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
