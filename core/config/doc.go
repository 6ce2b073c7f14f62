// Package config provides type-safe environment variable loading with
// per-type caching. Struct fields use `env`/`envDefault` tags; a .env file
// is auto-loaded on first use.
//
//	type AppConfig struct {
//		Addr  string `env:"SERVER_ADDR" envDefault:":8080"`
//		Debug bool   `env:"DEBUG" envDefault:"false"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// Each configuration type is loaded once per application lifetime; repeated
// loads of the same type return the cached value, so packages can load their
// own config independently without re-reading the environment.
package config
