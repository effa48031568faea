package stats

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/daykit/go-session-extract/internal/core/model"
	"github.com/daykit/go-session-extract/internal/data/source"
	"github.com/daykit/go-session-extract/internal/util"
)

// Report is the companion stats artifact: aggregate counts by workspace
// and agent plus an hour-keyed session distribution. All fields other
// than the time range are best-effort; a failed provider call leaves its
// field empty.
type Report struct {
	TimeRange          TimeRange      `json:"timeRange"`
	TotalMatches       int            `json:"totalMatches,omitempty"`
	Workspaces         []BucketCount  `json:"workspaces,omitempty"`
	Agents             []BucketCount  `json:"agents,omitempty"`
	TotalSessions      int            `json:"totalSessions,omitempty"`
	HourlyDistribution map[string]int `json:"hourlyDistribution,omitempty"`
}

type TimeRange struct {
	From  string `json:"from"`
	Until string `json:"until"`
}

type BucketCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Gather collects the stats report from the listing provider. Each of the
// three provider calls degrades independently: a failure is logged and
// the corresponding fields stay empty.
func Gather(ctx context.Context, src source.Source, from, until, agent string) *Report {
	report := &Report{
		TimeRange: TimeRange{From: from, Until: until},
	}

	// Workspace breakdown, scoped to the extraction agent.
	if result, err := src.Aggregate(ctx, source.AggregateQuery{
		Query: "the",
		Since: from,
		Until: until,
		Agent: agent,
		Field: "workspace",
	}); err != nil {
		util.LogWarn(fmt.Sprintf("Workspace aggregate failed: %v", err))
	} else {
		report.TotalMatches = result.TotalMatches
		report.Workspaces = toBucketCounts(result.Aggregations["workspace"].Buckets)
	}

	// Agent breakdown across all agents.
	if result, err := src.Aggregate(ctx, source.AggregateQuery{
		Query: "the",
		Since: from,
		Until: until,
		Field: "agent",
	}); err != nil {
		util.LogWarn(fmt.Sprintf("Agent aggregate failed: %v", err))
	} else {
		report.Agents = toBucketCounts(result.Aggregations["agent"].Buckets)
	}

	// Hour-grouped timeline for session count and hourly distribution.
	if result, err := src.Timeline(ctx, source.TimelineQuery{
		Since:   from,
		Until:   until,
		Agent:   agent,
		GroupBy: "hour",
	}); err != nil {
		util.LogWarn(fmt.Sprintf("Hourly timeline failed: %v", err))
	} else {
		report.TotalSessions = result.TotalSessions
		report.HourlyDistribution = hourlyDistribution(result.Groups)
	}

	return report
}

func toBucketCounts(buckets []source.Bucket) []BucketCount {
	counts := make([]BucketCount, 0, len(buckets))
	for _, b := range buckets {
		counts = append(counts, BucketCount{Name: b.Key, Count: b.Count})
	}
	return counts
}

// hourlyDistribution reduces "YYYY-MM-DD HH:00"-labeled groups to an
// "HH" -> session count map. Labels without a time part are skipped.
func hourlyDistribution(groups map[string][]model.SessionSummary) map[string]int {
	if len(groups) == 0 {
		return nil
	}
	hourly := make(map[string]int)
	for label, sessions := range groups {
		_, timePart, ok := strings.Cut(label, " ")
		if !ok {
			continue
		}
		hour, _, _ := strings.Cut(timePart, ":")
		hourly[hour] += len(sessions)
	}
	return hourly
}

// WriteFile encodes the report as indented JSON at path, creating parent
// directories as needed.
func WriteFile(path string, report *Report) error {
	data, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	return nil
}
