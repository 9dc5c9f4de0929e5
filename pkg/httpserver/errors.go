package httpserver

import "errors"

var (
	ErrStart          = errors.New("failed to start HTTP server")
	ErrAlreadyRunning = errors.New("HTTP server is already running")
	ErrShutdown       = errors.New("failed to shutdown HTTP server gracefully")
)
