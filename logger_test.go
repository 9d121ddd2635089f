package colorlit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observe installs an observing logger for the duration of the test.
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	assert.NotNil(t, l)
	for _, level := range []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel} {
		assert.False(t, l.Core().Enabled(level), "default logger enabled at %v", level)
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	observe(t)
	assert.True(t, Logger().Core().Enabled(zapcore.DebugLevel))

	SetLogger(nil)
	assert.False(t, Logger().Core().Enabled(zapcore.DebugLevel))
}

func TestLogger_ExplicitParseFailure(t *testing.T) {
	logs := observe(t)

	_, _, err := Parse("#FF572")
	assert.Error(t, err)

	entries := logs.FilterMessage("explicit parse failed").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "#FF572", fields["text"])
		assert.Equal(t, "hex-rgb", fields["kind"])
	}
}

func TestLogger_SkippedCandidate(t *testing.T) {
	logs := observe(t)

	ms := Detect([]byte("a: rgb(1, 2); b: rgb(1, 2, 3);"))
	assert.Len(t, ms, 1)

	entries := logs.FilterMessage("skipping malformed candidate").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "rgb(1, 2)", entries[0].ContextMap()["text"])
	}
}

func TestLogger_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(zap.NewNop())
		}()
		go func() {
			defer wg.Done()
			_ = Logger()
		}()
	}
	wg.Wait()
	SetLogger(nil)
}
