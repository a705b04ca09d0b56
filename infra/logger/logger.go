package logger

import corelogger "github.com/kilianp07/dutylog/core/logger"

// Logger is the core logging interface.
type Logger = corelogger.Logger

// NopLogger discards everything.
type NopLogger = corelogger.Nop

// New returns a Logger tagged with component. APP_ENV=dev switches to the
// human readable console output.
func New(component string) Logger {
	return NewZerologLogger(component)
}
