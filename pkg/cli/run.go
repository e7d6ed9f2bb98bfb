package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/patternplay/patternplay/pkg/catalog"
	"github.com/patternplay/patternplay/pkg/logger"
	"github.com/patternplay/patternplay/pkg/notifier"
	"github.com/patternplay/patternplay/pkg/patterns"
)

func newRunCmd() *cobra.Command {
	var notify bool

	cmd := &cobra.Command{
		Use:   "run [demo]",
		Short: "Run one demo or the whole catalogue",
		Long: `Run a single demo by name, or every registered demo in
presentation order (Behavioral, Creational, Structural) when no name is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runRun(cmd.OutOrStdout(), name, notify)
		},
	}

	cmd.Flags().BoolVar(&notify, "notify", false, "send a desktop notification when the run completes")

	return cmd
}

func runRun(w io.Writer, name string, notify bool) error {
	cfg, err := loadConfig()
	if err != nil {
		printError(err.Error())
		return err
	}
	log := newLogger(cfg)

	cat, err := patterns.NewCatalog()
	if err != nil {
		log.Error("catalog registration failed", logger.WithField("error", err.Error()))
		return err
	}

	if name != "" {
		if err := cat.Run(name, w); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				printError(fmt.Sprintf("no demo named %q; try 'patternplay list'", name))
			}
			return err
		}
		return nil
	}

	start := time.Now()
	count := 0
	for _, d := range cat.Demos() {
		if !cfg.GroupEnabled(d.Group()) {
			log.Debug("skipping demo", logger.WithField("demo", d.Name()))
			continue
		}
		writeDemoHeader(w, d)
		d.Run(w)
		count++
	}
	elapsed := time.Since(start)

	printSuccess(fmt.Sprintf("ran %d demo(s) in %s", count, elapsed.Round(time.Millisecond)))

	if notify || cfg.Notifications.Enabled {
		n := notifier.New(notifier.Config{Enabled: true}, log)
		n.NotifyRunComplete(count, elapsed)
	}

	return nil
}

// writeDemoHeader prints the banner line above a demo's trace
func writeDemoHeader(w io.Writer, d catalog.Demo) {
	fmt.Fprintf(w, "\n%s %s\n",
		color.CyanString("──"),
		color.New(color.Bold).Sprintf("%s (%s)", d.Name(), d.Group()))
}
