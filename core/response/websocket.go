package response

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/cascade/core/chain"
)

type wsConfig struct {
	upgrader       *websocket.Upgrader
	responseHeader http.Header
	onError        func(context.Context, error)
}

// WebSocketOption configures the WebSocket terminal.
type WebSocketOption func(*wsConfig)

// WithWSReadBuffer sets the read buffer size for upgraded connections.
func WithWSReadBuffer(size int) WebSocketOption {
	return func(c *wsConfig) {
		c.upgrader.ReadBufferSize = size
	}
}

// WithWSWriteBuffer sets the write buffer size for upgraded connections.
func WithWSWriteBuffer(size int) WebSocketOption {
	return func(c *wsConfig) {
		c.upgrader.WriteBufferSize = size
	}
}

// WithWSHandshakeTimeout bounds the upgrade handshake duration.
func WithWSHandshakeTimeout(timeout time.Duration) WebSocketOption {
	return func(c *wsConfig) {
		c.upgrader.HandshakeTimeout = timeout
	}
}

// WithWSOriginCheck sets a custom origin check for the upgrade request.
func WithWSOriginCheck(fn func(r *http.Request) bool) WebSocketOption {
	return func(c *wsConfig) {
		c.upgrader.CheckOrigin = fn
	}
}

// WithWSSubprotocols advertises supported subprotocols during the handshake.
func WithWSSubprotocols(protocols ...string) WebSocketOption {
	return func(c *wsConfig) {
		c.upgrader.Subprotocols = protocols
	}
}

// WithWSUpgradeHeaders adds headers to the 101 upgrade response.
func WithWSUpgradeHeaders(header http.Header) WebSocketOption {
	return func(c *wsConfig) {
		c.responseHeader = header
	}
}

// WithWSErrorHandler observes session errors; the connection is already
// hijacked by then, so rendering is not possible, only logging.
func WithWSErrorHandler(fn func(context.Context, error)) WebSocketOption {
	return func(c *wsConfig) {
		c.onError = fn
	}
}

// WebSocket creates a terminal that upgrades the request and hands the
// connection to the session function. The session runs on the request's
// context, so host cancellation closes it down; the connection closes when
// the session returns. A failed upgrade writes its own error response and
// the terminal still reports participation.
func WebSocket(session func(ctx context.Context, conn *websocket.Conn) error, opts ...WebSocketOption) chain.Handler {
	cfg := &wsConfig{
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			conn, err := cfg.upgrader.Upgrade(c.ResponseWriter(), c.Request(), cfg.responseHeader)
			if err != nil {
				// Upgrader has already written the handshake failure.
				if cfg.onError != nil {
					cfg.onError(c, err)
				}
				return c, nil
			}
			defer conn.Close()

			if err := session(c, conn); err != nil && cfg.onError != nil {
				cfg.onError(c, err)
			}
			return c, nil
		}
	}
}
