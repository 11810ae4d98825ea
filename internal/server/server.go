// Package server exposes the PIN block codecs over a length-prefixed
// TCP protocol. Requests open with a two-character command code; the
// response echoes the code with its second character incremented,
// followed by a two-character status and the command body.
package server

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	anetserver "github.com/andrei-cloud/anet/server"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pinlabs/pinblock/internal/errorcodes"
	"github.com/pinlabs/pinblock/internal/logging"
)

// logAdapter implements anet.Logger using zerolog.
type logAdapter struct{}

// Server wraps the anet TCP server and the PIN block command handlers.
type Server struct {
	address     string
	srv         *anetserver.Server
	activeConns int32
}

func (l logAdapter) Print(v ...any) {
	log.Info().Msg(fmt.Sprint(v...))
}

func (l logAdapter) Printf(format string, v ...any) {
	log.Info().Msgf(format, v...)
}

func (l logAdapter) Infof(format string, v ...any) {
	log.Info().Msgf(format, v...)
}

func (l logAdapter) Warnf(format string, v ...any) {
	log.Warn().Msgf(format, v...)
}

func (l logAdapter) Errorf(format string, v ...any) {
	log.Error().Msgf(format, v...)
}

// NewServer configures and returns the PIN block server instance.
func NewServer(address string) (*Server, error) {
	cfg := &anetserver.ServerConfig{
		MaxConns:        100,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     0 * time.Second, // disable idle connection closure.
		ShutdownTimeout: 5 * time.Second,
		Logger:          logAdapter{},
	}

	s := &Server{address: address}
	handler := anetserver.HandlerFunc(s.handle)
	srv, err := anetserver.NewServer(address, handler, cfg)
	if err != nil {
		return nil, fmt.Errorf("server setup failed: %w", err)
	}
	s.srv = srv

	return s, nil
}

// Start begins listening for connections.
func (s *Server) Start() error {
	log.Info().Str("address", s.address).Msg("server started")
	return s.srv.Start()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	return s.srv.Stop()
}

// incrementCode returns the next command code by incrementing the second character.
func incrementCode(cmd string) string {
	b := []byte(cmd)
	if len(b) < 2 {
		return cmd
	}
	if b[1] == 'Z' {
		b[1] = 'A'
	} else {
		b[1]++
	}

	return string(b)
}

func (s *Server) handle(conn *anetserver.ServerConn, data []byte) ([]byte, error) {
	client := conn.Conn.RemoteAddr().String()
	requestID := uuid.NewString()
	atomic.AddInt32(&s.activeConns, 1)
	defer atomic.AddInt32(&s.activeConns, -1)

	start := time.Now()
	log.Debug().
		Str("event", "handle_start").
		Str("client_ip", client).
		Str("request_id", requestID).
		Msg("starting request handling")

	if len(data) < 2 {
		log.Error().
			Str("client_ip", client).
			Str("request_id", requestID).
			Msg("malformed request")
		return nil, errors.New("malformed request")
	}

	cmd := string(data[:2])
	payload := data[2:]
	logging.LogRequest(
		client,
		requestID,
		cmd,
		len(payload),
		int(atomic.LoadInt32(&s.activeConns)),
	)

	respCmd := incrementCode(cmd)
	body, code := execute(cmd, payload)
	if code != errorcodes.Err00 {
		log.Warn().
			Str("event", "command_error").
			Str("client_ip", client).
			Str("request_id", requestID).
			Str("command", cmd).
			Str("error_code", code.CodeOnly()).
			Str("error", code.Description).
			Msg("command completed with error")
	}

	resp := append([]byte(respCmd+code.CodeOnly()), body...)
	logging.LogResponse(
		client,
		requestID,
		cmd,
		respCmd,
		code.CodeOnly(),
		int(atomic.LoadInt32(&s.activeConns)),
	)

	log.Debug().
		Str("event", "handle_done").
		Str("request_id", requestID).
		Str("duration", time.Since(start).String()).
		Msg("completed request handling")

	return resp, nil
}
