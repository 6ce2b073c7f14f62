package server

import "errors"

var (
	// ErrMissingAddress rejects a Config without a listen address.
	ErrMissingAddress = errors.New("server: address is required")

	// ErrNoPorts rejects a ListenGroup call with an empty port list.
	ErrNoPorts = errors.New("server: at least one port is required")

	// ErrServerAlreadyRunning rejects a second Start on a serving Server.
	ErrServerAlreadyRunning = errors.New("server: already running")
)
