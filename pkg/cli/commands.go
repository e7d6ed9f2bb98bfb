package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/patternplay/patternplay/pkg/catalog"
	"github.com/patternplay/patternplay/pkg/patterns"
)

// demoIndexEntry is the machine-readable row emitted by `list -o yaml|json`
type demoIndexEntry struct {
	Name        string `json:"name" yaml:"name"`
	Group       string `json:"group" yaml:"group"`
	Description string `json:"description" yaml:"description"`
}

func newListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered demos",
		Long:  `List every demo in the catalogue in presentation order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, yaml, json)")

	return cmd
}

func runList(w io.Writer, output string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError(err.Error())
		return err
	}

	cat, err := patterns.NewCatalog()
	if err != nil {
		return err
	}

	var entries []demoIndexEntry
	for _, d := range cat.Demos() {
		if !cfg.GroupEnabled(d.Group()) {
			continue
		}
		entries = append(entries, demoIndexEntry{
			Name:        d.Name(),
			Group:       string(d.Group()),
			Description: d.Description(),
		})
	}

	switch output {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tGROUP\tDESCRIPTION")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Group, e.Description)
		}
		return tw.Flush()

	case "yaml":
		return yaml.NewEncoder(w).Encode(entries)

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)

	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <demo>",
		Short: "Describe a demo and replay its trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), args[0])
		},
	}
}

func runShow(w io.Writer, name string) error {
	cat, err := patterns.NewCatalog()
	if err != nil {
		return err
	}

	d, ok := cat.Lookup(name)
	if !ok {
		printError(fmt.Sprintf("no demo named %q; try 'patternplay list'", name))
		return fmt.Errorf("demo %q: %w", name, catalog.ErrNotFound)
	}

	fmt.Fprintf(w, "%s (%s)\n%s\n\n", d.Name(), d.Group(), d.Description())
	d.Run(w)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of PatternPlay",
		Long:  `Print the version number of PatternPlay`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "🎭 PatternPlay v%s\n", version)
		},
	}
}
