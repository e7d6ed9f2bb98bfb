// Package notifier provides run-completion notification functionality
package notifier

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/patternplay/patternplay/pkg/logger"
)

// RunNotifier sends a desktop notification when a catalog run finishes
type RunNotifier struct {
	enabled bool
	logger  logger.Logger
}

// Config represents notification configuration
type Config struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// New creates a new run notifier
func New(config Config, log logger.Logger) *RunNotifier {
	return &RunNotifier{
		enabled: config.Enabled,
		logger:  log,
	}
}

// NotifyRunComplete notifies that a catalog run finished
func (n *RunNotifier) NotifyRunComplete(demos int, duration time.Duration) {
	if !n.enabled {
		return
	}

	title := "🎭 PatternPlay"
	message := fmt.Sprintf("%d demo(s) completed in %s", demos, formatDuration(duration))

	n.send(title, message)
}

// NotifyVerifyResult notifies about the outcome of a verify run
func (n *RunNotifier) NotifyVerifyResult(failures []string) {
	if !n.enabled {
		return
	}

	if len(failures) == 0 {
		n.send("✅ Verify Passed", "every demo produced an identical trace twice")
		return
	}

	n.send("❌ Verify Failed", fmt.Sprintf("%d demo(s) were not deterministic", len(failures)))
}

func (n *RunNotifier) send(title, message string) {
	if err := beeep.Notify(title, message, ""); err != nil {
		// Desktop notifications are best effort; fall back to the log
		n.logger.Debug(fmt.Sprintf("%s: %s", title, message),
			logger.WithField("notify_error", err.Error()))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
