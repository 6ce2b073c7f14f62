// Package logger provides slog constructors and attribute helpers shared by
// the toolkit's components. Attribute helpers follow the empty-Attr pattern:
// they return a zero slog.Attr for nil/empty input, which handlers drop, so
// callers never guard log statements:
//
//	log.Error("pipeline failed", logger.Error(err), logger.Component("chain"))
package logger
