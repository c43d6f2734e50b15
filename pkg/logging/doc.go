// Package logging configures the slog default logger shared by resep and
// resepd.
//
// Records are JSON on stderr and carry the module and version of the
// binary. Debug level adds the source location.
//
//	logging.SetDefaultStructuredLogger("resepd", version)
//	slog.Info("book loaded", "recipes", n)
//
// The level comes from LOG_LEVEL (debug, info, warn, error) unless the
// caller passes one, as the CLI does for --log-level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("resep", version, cmd.String("log-level"))
//
// NewLogLogger adapts the default handler for APIs that still want a
// *log.Logger, such as http.Server.ErrorLog.
package logging
