package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLogUsableBeforeInit(t *testing.T) {
	if Log == nil {
		t.Fatal("Log should never be nil")
	}
	Log.Info("before init")
}

func TestInitDebug(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	Init(true)

	if !Log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug logger should enable debug level")
	}
}

func TestInitProduction(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	Init(false)

	if Log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("production logger should not enable debug level")
	}
}
