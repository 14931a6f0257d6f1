// Package logger provides structured logging for golinq using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. The linq package uses it
// for traversal tracing (see linq.Range.Trace); the CLI uses it for
// diagnostics.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	logger.Register("linq", logger.WithComponent("linq"))
//	log := logger.Get("linq")
//	log.Info("traversal finished", logger.Fields("stage", "adults", "yielded", 3))
package logger
