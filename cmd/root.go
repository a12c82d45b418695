package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-fb-metrics/internal/config"
)

var (
	rootDir    string
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "fbmetrics",
	Short: "Football player ranking tool",
	Long: `Score players from per-match defense, attacking and passing stat tables
using linear feature weights, aggregate across matches and rank them.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "directory the default paths are relative to")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "JSON file overriding paths and top-N per category")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug detail to stderr")

	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(shellCmd)
}

// loadConfig builds the run layout from --root and --config.
func loadConfig() (config.Config, error) {
	cfg := config.Default(rootDir)
	if configPath != "" {
		if err := cfg.LoadFile(configPath); err != nil {
			return cfg, err
		}
		// --root on the command line beats the file.
		if rootCmd.PersistentFlags().Changed("root") {
			cfg.Root = rootDir
		}
	}
	return cfg.Resolve()
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
