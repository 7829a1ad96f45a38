package randinit

import "github.com/decred/slog"

// log is the package logger. The default is the disabled logger; callers
// that want diagnostics provide one via UseLogger.
var log = slog.Disabled

// UseLogger sets the logger used for package diagnostics.
func UseLogger(logger slog.Logger) {
	log = logger
}
