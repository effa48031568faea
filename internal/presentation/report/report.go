package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/daykit/go-session-extract/internal/core/model"
	"github.com/daykit/go-session-extract/internal/util"
)

const divider = "=================================================="

// Build concatenates the session blocks into the full report document:
// fixed header with counts and generation time, numbered session blocks
// (or a single no-sessions line), fixed footer.
func Build(sessions []model.SessionSummary, contents []string, filteredCount int) string {
	tp := util.GetTimeProvider()

	var lines []string
	lines = append(lines, divider)
	lines = append(lines, "PRE-EXTRACTED SESSIONS")
	lines = append(lines, fmt.Sprintf("Sessions: %d (%d filtered as subagent/teammate)", len(sessions), filteredCount))
	lines = append(lines, fmt.Sprintf("Generated: %s", tp.FormatNow("2006-01-02T15:04:05")))
	lines = append(lines, divider)
	lines = append(lines, "")

	if len(sessions) == 0 {
		lines = append(lines, "No sessions found in this time range.")
	} else {
		for i, content := range contents {
			lines = append(lines, fmt.Sprintf("--- SESSION %d of %d ---", i+1, len(sessions)))
			lines = append(lines, content)
			lines = append(lines, "")
		}
	}

	lines = append(lines, divider)
	lines = append(lines, "END OF PRE-EXTRACTED SESSIONS")
	lines = append(lines, divider)

	return strings.Join(lines, "\n")
}

// Write renders the report and writes it wholesale to path, creating
// parent directories as needed. The document lands via a same-directory
// temp file and rename so a failed run never leaves a partial report.
func Write(path string, sessions []model.SessionSummary, contents []string, filteredCount int) error {
	if len(sessions) != len(contents) {
		return fmt.Errorf("session/content count mismatch: %d vs %d", len(sessions), len(contents))
	}

	document := Build(sessions, contents, filteredCount)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp output file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(document); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close report: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to finalize report: %w", err)
	}

	return nil
}
