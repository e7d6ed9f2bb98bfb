// Package cli provides the command-line interface for PatternPlay
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/patternplay/patternplay/pkg/config"
	"github.com/patternplay/patternplay/pkg/logger"
)

var (
	cfgFile   string
	verbosity string
	noColor   bool
	version   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "patternplay",
	Short: "A runnable catalogue of classic design patterns",
	Long: `🎭 PatternPlay - Classic design patterns as runnable demos

PatternPlay registers one demo per pattern (Behavioral, Creational,
Structural) and replays its printed trace on demand. Run the whole
catalogue, a single pattern, or verify that every demo is deterministic.`,

	Run: func(cmd *cobra.Command, args []string) {
		// Check if version flag is set
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Fprintf(cmd.OutOrStdout(), "🎭 PatternPlay v%s\n", version)
			return
		}
		// If no subcommand, show help
		cmd.Help()
	},
}

// Execute runs the CLI
func Execute(v string) error {
	version = v

	// Initialize the root command explicitly (avoiding init())
	initializeRootCommand()

	return rootCmd.Execute()
}

// initializeRootCommand sets up the root command and its flags.
// This replaces the init() function to make initialization explicit and testable.
func initializeRootCommand() {
	// Set up config initialization
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: patternplay.config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&verbosity, "verbosity", "v", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add version flag
	rootCmd.Flags().Bool("version", false, "Print version information and quit")

	// Add subcommands
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in the working directory
		viper.AddConfigPath(".")
		viper.SetConfigName("patternplay.config")
		viper.SetConfigType("yaml")
	}

	// Read in environment variables
	viper.SetEnvPrefix("PATTERNPLAY")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		if verbosity == "debug" {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}

// loadConfig resolves the effective configuration from file, env and flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromViper()
	if err != nil {
		return nil, err
	}

	// Flags take precedence over the config file
	if verbosity != "" {
		cfg.LogLevel = verbosity
	}
	if noColor {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	return cfg, nil
}

// newLogger creates the diagnostic logger for the resolved configuration
func newLogger(cfg *config.Config) logger.Logger {
	return logger.CreateLogger(cfg.LogLevel)
}

// Helper functions

func printSuccess(message string) {
	mask := "🎭"
	fmt.Printf("%s %s %s\n", mask, color.GreenString("[PatternPlay]"), message)
}

func printError(message string) {
	mask := "🎭"
	fmt.Fprintf(os.Stderr, "%s %s %s\n", mask, color.RedString("[PatternPlay]"), message)
}

func printInfo(message string) {
	mask := "🎭"
	fmt.Printf("%s %s %s\n", mask, color.CyanString("[PatternPlay]"), message)
}
