package extractor

import (
	"context"
	"fmt"

	"github.com/daykit/go-session-extract/internal/core/model"
	"github.com/daykit/go-session-extract/internal/data/parser"
	"github.com/daykit/go-session-extract/internal/data/source"
	"github.com/daykit/go-session-extract/internal/data/stats"
	"github.com/daykit/go-session-extract/internal/extract"
	"github.com/daykit/go-session-extract/internal/presentation/report"
	"github.com/daykit/go-session-extract/internal/util"
)

type Config struct {
	From        string
	Until       string
	Output      string
	StatsOutput string
	SampleSize  int
	Agent       string
	CassBin     string
}

// Extractor drives one extraction run: list sessions, filter, then for
// each session classify and sample its transcript, and finally write the
// report (and optionally the stats artifact). Sessions are processed
// strictly in chronological order, one at a time.
type Extractor struct {
	config *Config
	source source.Source
	parser *parser.Parser
	policy extract.Config
}

func New(config *Config) *Extractor {
	return NewWithSource(config, source.NewCassSource(config.CassBin))
}

// NewWithSource wires an explicit session source; used by tests to run
// the pipeline against in-memory fixtures.
func NewWithSource(config *Config, src source.Source) *Extractor {
	policy := extract.DefaultConfig()
	if config.SampleSize > 0 {
		policy.SampleSize = config.SampleSize
	}

	return &Extractor{
		config: config,
		source: src,
		parser: parser.NewParser(),
		policy: policy,
	}
}

func (e *Extractor) Run(ctx context.Context) error {
	tp := util.GetTimeProvider()

	fromMs, err := tp.ParseTimeSpec(e.config.From)
	if err != nil {
		util.LogWarn(fmt.Sprintf("Warning: %v", err))
	}
	untilMs, err := tp.ParseTimeSpec(e.config.Until)
	if err != nil {
		util.LogWarn(fmt.Sprintf("Warning: %v", err))
	}

	util.LogInfo(fmt.Sprintf("Discovering sessions from %s to %s...", e.config.From, e.config.Until))

	listed := e.listSessions(ctx)
	sessions, filteredCount := extract.FilterSessions(listed, fromMs, untilMs, e.policy)
	util.LogInfo(fmt.Sprintf("Found %d sessions (%d filtered)", len(sessions), filteredCount))

	// Extract content from each session, skipping those with nothing to show.
	var kept []model.SessionSummary
	var contents []string
	skippedEmpty := 0
	for _, s := range sessions {
		content, ok := e.extractSession(s)
		if !ok {
			skippedEmpty++
			continue
		}
		kept = append(kept, s)
		contents = append(contents, content)
	}

	if skippedEmpty > 0 {
		util.LogInfo(fmt.Sprintf("Skipped %d sessions with no meaningful content", skippedEmpty))
	}

	if err := report.Write(e.config.Output, kept, contents, filteredCount+skippedEmpty); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	util.LogInfo(fmt.Sprintf("Extracted %d sessions to %s", len(kept), e.config.Output))

	if e.config.StatsOutput != "" {
		util.LogInfo("Gathering stats...")
		statsReport := stats.Gather(ctx, e.source, e.config.From, e.config.Until, e.config.Agent)
		if err := stats.WriteFile(e.config.StatsOutput, statsReport); err != nil {
			return fmt.Errorf("failed to write stats: %w", err)
		}
		util.LogInfo(fmt.Sprintf("Stats written to %s", e.config.StatsOutput))
	}

	return nil
}

// listSessions queries the provider; an unavailable or malformed listing
// degrades to an empty result so the report is still written.
func (e *Extractor) listSessions(ctx context.Context) []model.SessionSummary {
	result, err := e.source.Timeline(ctx, source.TimelineQuery{
		Since:   e.config.From,
		Until:   e.config.Until,
		Agent:   e.config.Agent,
		GroupBy: "none",
	})
	if err != nil {
		util.LogWarn(fmt.Sprintf("Session listing failed: %v", err))
		return nil
	}
	return result.Sessions
}

// extractSession turns one session into its formatted text block. The
// second return is false when the session has no meaningful content,
// including when its transcript is missing or unreadable.
func (e *Extractor) extractSession(s model.SessionSummary) (string, bool) {
	entries, err := e.parser.ParseFile(s.SourcePath)
	if err != nil {
		util.LogWarn(fmt.Sprintf("Session file not readable: %s - %v", s.SourcePath, err))
	}

	s.Workspace = extract.Workspace(entries)

	meaningful := extract.Classify(entries, e.policy)
	if len(meaningful) == 0 {
		return "", false
	}

	sections := extract.Sample(meaningful, e.policy)
	return report.FormatSession(s, sections, e.policy), true
}
