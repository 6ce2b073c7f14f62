// Package server provides an HTTP server with graceful shutdown, functional
// options, and environment-based configuration.
//
// Basic usage:
//
//	pipeline := chain.HTTPHandler(routes)
//	if err := server.Run(ctx, ":8080", pipeline); err != nil {
//		log.Fatal(err)
//	}
//
// With configuration from the environment:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = srv.Start(ctx, pipeline)
//
// ListenGroup runs the same pipeline on several ports at once, which pairs
// with route.Ports for port-based dispatch.
package server
