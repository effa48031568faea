package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daykit/go-session-extract/internal/data/source"
	"github.com/daykit/go-session-extract/internal/data/stats"
	"github.com/daykit/go-session-extract/internal/util"
)

var (
	// Stats command flags
	statsFrom    string
	statsUntil   string
	statsOutFile string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Write only the aggregate stats artifact for a time window",
	Long:  `Gathers workspace/agent aggregates and the hourly session distribution without extracting transcripts.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsFrom, "from", "",
		"Start datetime (ISO format)")
	statsCmd.Flags().StringVar(&statsUntil, "until", "",
		"End datetime (ISO format)")
	statsCmd.Flags().StringVarP(&statsOutFile, "output", "o", "",
		"Output stats JSON file path")
	statsCmd.MarkFlagRequired("from")
	statsCmd.MarkFlagRequired("until")
	statsCmd.MarkFlagRequired("output")
}

func runStats(cmd *cobra.Command, args []string) error {
	initRuntime()

	src := source.NewCassSource(cassBin)

	util.LogInfo("Gathering stats...")
	report := stats.Gather(context.Background(), src, statsFrom, statsUntil, agent)

	outPath := expandPath(statsOutFile)
	if err := stats.WriteFile(outPath, report); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	util.LogInfo(fmt.Sprintf("Stats written to %s", outPath))

	return nil
}
