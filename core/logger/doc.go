// Package logger provides structured logging utilities built on Go's standard slog package.
//
// It offers environment presets, a small option set for constructing loggers and
// attribute helpers for the fields the storefront client logs most often.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithDevelopment("storefront"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("cart loaded",
//		logger.Component("cart"),
//		logger.UserID(user.ID),
//		logger.Count("items", len(items)),
//	)
//
// # Environment Configurations
//
//	// Development: text format, debug level, stdout
//	devLogger := logger.New(logger.WithDevelopment("storefront"))
//
//	// Production: JSON format, info level, stdout
//	prodLogger := logger.New(logger.WithProduction("storefront"))
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty values so they can be
// passed unconditionally:
//
//	log.Error("persist failed", logger.Error(err)) // err may be nil
//
// Components that accept a *slog.Logger default to Discard when none is given.
package logger
