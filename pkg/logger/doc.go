// Package logger builds context-aware slog loggers.
//
// New creates a *slog.Logger configured by Option functions: output format
// (text or json), minimum level, static attributes and ContextExtractor
// callbacks that copy values from context.Context into every record. The
// handler is wrapped by LogHandlerDecorator, which runs the extractors before
// delegating.
//
// # Usage
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log := logger.New(logger.WithConfig(cfg))
//	log.InfoContext(ctx, "validation failed",
//	    logger.Entity("account"),
//	    logger.Stage("save"),
//	    logger.Error(err),
//	)
//
// Helpers such as Error and Errors return an empty attribute for nil errors,
// so they can be passed unconditionally. Discard returns a logger that drops
// everything; library types use it when no logger is configured.
package logger
