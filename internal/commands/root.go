package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spacevenue/internal/config"
	"spacevenue/internal/db"
	"spacevenue/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configPath string
	arabic     bool
	cfg        config.Config
	log        = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "spacevenue",
	Short: "Point-of-sale and timer billing for a gaming venue",
	Long: `spacevenue runs a small gaming venue from the terminal: per-station
rental timers with live billing, item sales, a cash register, and
daily/monthly revenue reports over an embedded database.

Start with 'spacevenue dashboard' for the live station board.`,
}

// initApp loads configuration, the log file, and the database. Commands that
// touch any of those wrap their Run with withApp.
func initApp() {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		panic(err)
	}

	if zl, err := logger.New(cfg.LogPath); err == nil {
		log = zl
	}

	if err := db.Initialize(cfg.DatabasePath); err != nil {
		log.Error("database init failed", zap.Error(err))
		panic(err)
	}
}

// withApp wraps a command function to initialize config, logging, and the
// database first.
func withApp(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		fn(cmd, args)
	}
}

// truncate shortens s to at most max runes, with a trailing ellipsis when
// cut. Indexing runes keeps multi-byte names (Arabic customers, for one)
// from being split mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// SetVersion sets the version information.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("spacevenue %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to venue config file")
	rootCmd.PersistentFlags().BoolVar(&arabic, "arabic", false, "Display amounts with Arabic-Indic numerals")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(cashCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
