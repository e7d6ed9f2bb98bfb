package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/patternplay/patternplay/pkg/logger"
)

func TestCreateLogger(t *testing.T) {
	log := logger.CreateLogger("info")
	if log == nil {
		t.Fatal("expected logger to be created")
	}
}

func TestCreateLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("not-a-level", &buf)

	log.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected info message at fallback level, got %q", buf.String())
	}
}

func TestCreateLogger_Levels(t *testing.T) {
	tests := []struct {
		level   string
		message string
	}{
		{"debug", "debug message"},
		{"info", "info message"},
		{"warn", "warning message"},
		{"error", "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.CreateLoggerWithOutput(tt.level, &buf)

			// Log at different levels - just verify no panic
			log.Debug(tt.message)
			log.Info(tt.message)
			log.Warn(tt.message)
			log.Error(tt.message)

			if buf.Len() == 0 {
				t.Error("expected some output")
			}
		})
	}
}

func TestLogger_WithDemo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("info", &buf)

	demoLog := log.WithDemo("observer")
	demoLog.Info("subscriber attached")

	out := buf.String()
	if !strings.Contains(out, "observer") {
		t.Errorf("expected demo name in output, got %q", out)
	}
	if !strings.Contains(out, "subscriber attached") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestLogger_DebugSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("info", &buf)

	log.Debug("should not appear")
	if strings.Contains(buf.String(), "should not appear") {
		t.Error("debug output leaked at info level")
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("info", &buf)

	log.Info("running", logger.WithField("count", 23))

	out := buf.String()
	if !strings.Contains(out, "count=23") {
		t.Errorf("expected structured field in output, got %q", out)
	}
}

func TestLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("info", &buf)

	log.Success("all demos completed")
	if !strings.Contains(buf.String(), "all demos completed") {
		t.Errorf("expected success message, got %q", buf.String())
	}
}
