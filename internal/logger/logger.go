package logger

import (
	"go.uber.org/zap"
)

// Log is a no-op logger until Init is called.
var Log = zap.NewNop()

// Init installs the process logger. Debug selects zap's development config
// (debug level, console encoding).
func Init(debug bool) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return
	}
	Log = l
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Log.Sync()
}
