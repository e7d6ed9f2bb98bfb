package notifier_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/patternplay/patternplay/pkg/logger"
	"github.com/patternplay/patternplay/pkg/notifier"
)

func TestNotifier_DisabledSendsNothing(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("debug", &buf)

	n := notifier.New(notifier.Config{Enabled: false}, log)

	n.NotifyRunComplete(23, 120*time.Millisecond)
	n.NotifyVerifyResult(nil)

	if buf.Len() != 0 {
		t.Errorf("disabled notifier should stay silent, got %q", buf.String())
	}
}

func TestNotifier_RunComplete(t *testing.T) {
	log := logger.CreateLogger("info")

	n := notifier.New(notifier.Config{Enabled: true}, log)

	// This would normally show a system notification.
	// In tests, we just verify it doesn't crash.
	n.NotifyRunComplete(23, 2*time.Second)
}

func TestNotifier_VerifyResult(t *testing.T) {
	log := logger.CreateLogger("info")

	n := notifier.New(notifier.Config{Enabled: true}, log)

	n.NotifyVerifyResult(nil)
	n.NotifyVerifyResult([]string{"observer", "state"})
}
