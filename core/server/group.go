package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// ListenGroup serves one listener per port over a shared handler, blocking
// until the context is canceled or any server fails. Because every listener
// belongs to this process, http.LocalAddrContextKey is populated on each
// request, which is what route.Ports dispatches on.
//
//	pipeline := route.Ports(map[int]chain.Handler{
//		8080: publicRoutes,
//		9090: adminRoutes,
//	})
//	err := server.ListenGroup(ctx, chain.HTTPHandler(pipeline), 8080, 9090)
//
// All servers share the group's options; per-port tuning wants separate
// Server values under the caller's own errgroup.
func ListenGroup(ctx context.Context, handler http.Handler, ports []int, opts ...Option) error {
	if len(ports) == 0 {
		return ErrNoPorts
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, port := range ports {
		srv := New(fmt.Sprintf(":%d", port), opts...)
		g.Go(srv.Run(gctx, handler))
	}
	return g.Wait()
}

// ListenGroupWithLogger is ListenGroup with a shared logger for all ports.
func ListenGroupWithLogger(ctx context.Context, logger *slog.Logger, handler http.Handler, ports []int, opts ...Option) error {
	return ListenGroup(ctx, handler, ports, append([]Option{WithLogger(logger)}, opts...)...)
}
