package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pinlabs/pinblock/internal/config"
	"github.com/pinlabs/pinblock/internal/logging"
	"github.com/pinlabs/pinblock/internal/server"
)

var (
	host  string
	port  int
	debug bool
	human bool
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PIN block server",
	Long:  `Start the PIN block translation server to process encode, decode and inspect commands over TCP.`,
	Run: func(_ *cobra.Command, _ []string) {
		if err := config.Initialize(); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize configuration")
		}
		cfg := config.Get()

		if host == "" {
			host = cfg.Server.Host
		}
		if port == 0 {
			port = cfg.Server.Port
		}
		logging.InitLogger(
			debug || cfg.Log.Level == "debug",
			human || cfg.Log.Format == "human",
		)

		srv, err := server.NewServer(fmt.Sprintf("%s:%d", host, port))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize server")
		}

		// Ensure the stop channel is closed only once.
		var stopOnce sync.Once
		stopChan := make(chan os.Signal, 1)
		signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-stopChan
			log.Info().Msgf("signal %v received, shutting down server", sig)

			stopOnce.Do(func() {
				if err := srv.Stop(); err != nil {
					log.Error().Err(err).Msg("failed to stop server")
				}
				close(stopChan)
			})
		}()

		// Start the server.
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}

		// Block the main goroutine to keep the server running until a termination signal is received.
		<-stopChan

		log.Info().Msg("server stopped gracefully")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&host, "host", "", "Server host (overrides config)")
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "Server port (overrides config)")
	serveCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&human, "human", false, "Enable human-readable logs")
}
