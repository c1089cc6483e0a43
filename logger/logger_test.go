package logger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) record(level, msg string, args ...any) {
	r.lines = append(r.lines, level+": "+fmt.Sprintf(msg, args...))
}

func (r *recordingLogger) Debugf(msg string, args ...any) { r.record("debug", msg, args...) }
func (r *recordingLogger) Infof(msg string, args ...any)  { r.record("info", msg, args...) }
func (r *recordingLogger) Warnf(msg string, args ...any)  { r.record("warn", msg, args...) }
func (r *recordingLogger) Errorf(msg string, args ...any) { r.record("error", msg, args...) }
func (r *recordingLogger) Fatalf(msg string, args ...any) { r.record("fatal", msg, args...) }

func TestPackageLevelFunctionsUseCurrentLogger(t *testing.T) {
	recorder := &recordingLogger{}
	previous := SetLogger(recorder)
	defer SetLogger(previous)

	Debugf("d %d", 1)
	Infof("i %s", "x")
	Warnf("w")
	Errorf("e %v", false)
	Fatalf("f")

	assert.Equal(t, []string{"debug: d 1", "info: i x", "warn: w", "error: e false", "fatal: f"}, recorder.lines)
}
