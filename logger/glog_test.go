package logger

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGlogLogger(t *testing.T) {
	flag.Set("logtostderr", "true")

	logger := NewGlogLogger()

	glogLogger, ok := logger.(*GlogLogger)
	assert.True(t, ok, "Logger should be of type *GlogLogger")
	assert.Equal(t, 2, glogLogger.depth, "Default depth should skip the package level wrapper")
}

func TestGlogLogger_ImplementsLoggerInterface(t *testing.T) {
	var _ Logger = (*GlogLogger)(nil)
}

func TestGlogLogger_AllLevels(t *testing.T) {
	flag.Set("logtostderr", "true")
	flag.Set("v", "2")

	logger := NewGlogLogger()

	assert.NotPanics(t, func() {
		logger.Debugf("debug %s", "message")
		logger.Infof("info %d", 1)
		logger.Warnf("warn")
		logger.Errorf("error: %v", true)
	}, "All logging levels should work without panic")
}

func TestGlogLogger_Depth(t *testing.T) {
	flag.Set("logtostderr", "true")

	glogLogger := &GlogLogger{depth: 0}

	assert.NotPanics(t, func() {
		glogLogger.Infof("info with custom depth")
	}, "Logger with custom depth should not panic")
}
