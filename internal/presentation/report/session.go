package report

import (
	"fmt"
	"strings"

	"github.com/daykit/go-session-extract/internal/core/model"
	"github.com/daykit/go-session-extract/internal/extract"
	"github.com/daykit/go-session-extract/internal/util"
)

// FormatSession renders one session's metadata and sample sections into
// its text block: header, separator, then one labeled section per sample
// with one line per entry.
func FormatSession(s model.SessionSummary, sections []model.SampleSection, cfg extract.Config) string {
	tp := util.GetTimeProvider()

	title := s.Title
	if title == "" {
		title = "Untitled"
	}
	workspace := s.Workspace
	if workspace == "" {
		workspace = "unknown"
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Title: %s", util.TruncateTitle(title, cfg.TitleMax)))
	lines = append(lines, fmt.Sprintf("Workspace: %s", workspace))
	lines = append(lines, fmt.Sprintf("Time: %s - %s | Messages: %d",
		tp.FormatClock(s.StartedAt), tp.FormatClock(s.EndedAt), s.MessageCount))
	lines = append(lines, "---")
	lines = append(lines, "")

	if len(sections) == 0 {
		lines = append(lines, "[NO MEANINGFUL CONTENT]")
		return strings.Join(lines, "\n")
	}

	for _, section := range sections {
		lines = append(lines, fmt.Sprintf("[%s]", section.Label))
		lines = append(lines, "")
		for _, entry := range section.Entries {
			lines = append(lines, formatEntry(entry, cfg)...)
		}
	}

	return strings.Join(lines, "\n")
}

func formatEntry(entry model.MeaningfulEntry, cfg extract.Config) []string {
	var lines []string
	if entry.Role == model.RoleUser {
		lines = append(lines, fmt.Sprintf("USER: %s", entry.Text))
	} else {
		lines = append(lines, fmt.Sprintf("ASSISTANT: %s", util.TruncateText(entry.Text, cfg.AssistantTextMax)))
		if len(entry.Tools) > 0 {
			lines = append(lines, fmt.Sprintf("[used tools: %s]", strings.Join(entry.Tools, ", ")))
		}
	}
	lines = append(lines, "")
	return lines
}
