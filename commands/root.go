package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daykit/go-session-extract/internal/extractor"
	"github.com/daykit/go-session-extract/internal/util"
)

var (
	// Logging related
	debug bool

	// Time window
	fromSpec  string
	untilSpec string

	// Output related
	outputPath  string
	statsOutput string
	timezone    string

	// Sampling and provider configuration
	sampleSize int
	agent      string
	cassBin    string

	rootCmd = &cobra.Command{
		Use:   "go-session-extract [flags]",
		Short: "Pre-extract agent session transcripts into readable text",
		Long: `go-session-extract pulls recorded agent sessions for a time window and
condenses each transcript into a bounded, representative text excerpt.

Instead of a reader running many expand commands per session, one extraction
run produces a single readable text file for the whole time block.

Examples:
  go-session-extract --from 2026-02-10T08:00 --until 2026-02-10T12:00 --output morning.txt
  go-session-extract --from 2026-02-10 --until 2026-02-10T23:59:59 --output full-day.txt --stats-output stats.json
  go-session-extract --from 2026-02-10 --until 2026-02-11 --output day.txt --sample-size 8`,
		RunE: runExtract,
	}
)

const (
	defaultLogFile = "~/.go-session-extract/logs/app.log"
	defaultAgent   = "claude_code"
)

func init() {
	// Time window (required)
	rootCmd.Flags().StringVar(&fromSpec, "from", "",
		"Start datetime (ISO format, e.g., 2026-02-10T08:00)")
	rootCmd.Flags().StringVar(&untilSpec, "until", "",
		"End datetime (ISO format, e.g., 2026-02-10T12:00)")
	rootCmd.MarkFlagRequired("from")
	rootCmd.MarkFlagRequired("until")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Output text file path")
	rootCmd.MarkFlagRequired("output")
	rootCmd.Flags().StringVar(&statsOutput, "stats-output", "",
		"Optional: output stats JSON file path")

	// Sampling configuration
	rootCmd.Flags().IntVar(&sampleSize, "sample-size", 5,
		"Messages per sample slice")

	// Provider configuration
	rootCmd.PersistentFlags().StringVar(&agent, "agent", defaultAgent,
		"Agent to extract sessions for")
	rootCmd.PersistentFlags().StringVar(&cassBin, "cass-bin", "cass",
		"Path to the cass binary")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runExtract(cmd *cobra.Command, args []string) error {
	initRuntime()

	config := &extractor.Config{
		From:        fromSpec,
		Until:       untilSpec,
		Output:      expandPath(outputPath),
		StatsOutput: expandOptionalPath(statsOutput),
		SampleSize:  sampleSize,
		Agent:       agent,
		CassBin:     cassBin,
	}

	e := extractor.New(config)
	return e.Run(context.Background())
}

// initRuntime sets up the global logger and time provider from the
// persistent flags. Shared by all commands.
func initRuntime() {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(logLevel, logFile, debug)
	if err := util.InitializeTimeProvider(timezone); err != nil {
		util.LogWarn(err.Error())
	}
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func expandOptionalPath(path string) string {
	if path == "" {
		return ""
	}
	return expandPath(path)
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
