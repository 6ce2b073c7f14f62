// Package cascade is a functional-composition web toolkit for Go. Request
// handling is built from small fallible handlers that compose into one
// pipeline: each handler either produces a response, declines so the next
// candidate can try, or fails into a single error boundary.
//
// # Package Organization
//
//	github.com/dmitrymomot/cascade/core/chain    - Handler pipeline algebra: Compose, Choose, Warbler, net/http adapter
//	github.com/dmitrymomot/cascade/core/route    - Route templates with typed placeholders, struct binding, sub-routes
//	github.com/dmitrymomot/cascade/core/response - Terminal handlers: text, JSON/XML, templ, streams, WebSocket, negotiation
//	github.com/dmitrymomot/cascade/core/server   - HTTP server with graceful shutdown and multi-port listen groups
//	github.com/dmitrymomot/cascade/core/config   - Type-safe environment variable loading
//	github.com/dmitrymomot/cascade/core/logger   - slog constructors and attribute helpers
//	github.com/dmitrymomot/cascade/middleware    - Auth guards, request IDs, logging, language negotiation
//
// # Example Usage
//
//	package main
//
//	import (
//		"context"
//		"log"
//
//		"github.com/dmitrymomot/cascade/core/chain"
//		"github.com/dmitrymomot/cascade/core/response"
//		"github.com/dmitrymomot/cascade/core/route"
//		"github.com/dmitrymomot/cascade/core/server"
//	)
//
//	func main() {
//		routes := chain.Choose(
//			chain.Compose(route.Exact("/"), response.String("index")),
//			chain.Compose(route.Exact("/ping"), response.String("pong")),
//			route.Routef("/user/%s/%i", func(args []any) chain.Handler {
//				return response.JSON(map[string]any{
//					"name": args[0].(string),
//					"id":   args[1].(int32),
//				})
//			}),
//			route.SubRoute("/api", chain.Compose(route.Exact("/health"), response.JSON(map[string]string{"status": "ok"}))),
//		)
//
//		handler := chain.HTTPHandler(routes,
//			chain.WithErrorHandler(response.JSONErrorHandler),
//			chain.WithNotFound(response.NotFoundJSON),
//		)
//
//		if err := server.Run(context.Background(), ":8080", handler); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The pipeline tries handlers in order; the first one that participates
// wins. Route matchers decline on mismatch, terminal handlers always
// participate, and once a response has started no further handler can write.
package cascade
