package extract

import (
	"sort"
	"strings"

	"github.com/daykit/go-session-extract/internal/core/model"
)

// FilterSessions keeps sessions that started inside the closed window
// [from, until] (epoch ms, boundary inclusive) and are not subagent or
// teammate sessions. A zero boundary disables that side of the window.
// Returns the kept sessions sorted by start time ascending plus the
// number of sessions removed.
func FilterSessions(sessions []model.SessionSummary, from, until int64, cfg Config) ([]model.SessionSummary, int) {
	var kept []model.SessionSummary
	for _, s := range sessions {
		if from != 0 && s.StartedAt < from {
			continue
		}
		if until != 0 && s.StartedAt > until {
			continue
		}
		// Path and title predicates are independent; both are checked for
		// every candidate.
		subagent := hasPathSegment(s.SourcePath, cfg.SubagentMarker)
		teammate := hasTitlePrefix(s.Title, cfg.SkipTitlePrefixes)
		if subagent || teammate {
			continue
		}
		kept = append(kept, s)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].StartedAt < kept[j].StartedAt
	})

	return kept, len(sessions) - len(kept)
}

// hasPathSegment reports whether any slash-delimited segment of path
// equals marker exactly. Handles both separators since transcripts may
// come from Windows hosts.
func hasPathSegment(path, marker string) bool {
	if marker == "" {
		return false
	}
	for _, seg := range strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	}) {
		if seg == marker {
			return true
		}
	}
	return false
}

func hasTitlePrefix(title string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(title, prefix) {
			return true
		}
	}
	return false
}
