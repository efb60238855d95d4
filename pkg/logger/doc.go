// Package logger builds slog loggers for the service and the CLI.
//
// New applies functional options on top of production defaults (JSON, info
// level, stdout) and wraps the handler in a decorator that copies
// request-scoped values from the context into every record:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "brkit"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "document rejected",
//	    logger.DocumentKind("cpf"),
//	    logger.Reason("check_digit_mismatch"),
//	    logger.Value(sanitizer.MaskCPF(raw)),
//	)
//
// Attribute helpers return an empty slog.Attr for nil inputs; slog drops
// empty attributes, so callers need no nil checks.
//
// Never log raw documents. Mask them with the sanitizer package first.
package logger
