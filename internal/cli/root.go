// Package cli implements the rewriter command line tool.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Click-Movement/ContentSoftware/internal/config"
	"github.com/Click-Movement/ContentSoftware/internal/observability"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:           "rewriter",
	Short:         "Rewrite news articles in the voice of a conservative commentator",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if flagVerbose {
			level = "debug"
		}
		logger := observability.NewLogger(cmd.ErrOrStderr(), level)
		slog.SetDefault(logger)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rewriter %s\n", Version)
	},
}

var (
	flagVerbose   bool
	flagSitesFile string
)

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&flagSitesFile, "sites-file", "", "Site bookmarks file (default $XDG_CONFIG_HOME/contentsoftware/sites.yaml)")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
