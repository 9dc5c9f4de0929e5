// Package logger builds *slog.Logger values from functional options and
// injects request-scoped attributes, such as the request ID, from the
// context passed to each *Context logging call.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "petadopt"),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	log.InfoContext(ctx, "animal listed", logger.AnimalID(a.ID))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
