package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daykit/go-session-extract/internal/core/model"
)

func session(title, path string, startedAt int64) model.SessionSummary {
	return model.SessionSummary{
		Title:      title,
		SourcePath: path,
		StartedAt:  startedAt,
	}
}

func TestFilterSessionsWindowBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	from := int64(1000)
	until := int64(2000)

	sessions := []model.SessionSummary{
		session("exactly from", "/s/a.jsonl", 1000),
		session("exactly until", "/s/b.jsonl", 2000),
		session("one ms early", "/s/c.jsonl", 999),
		session("one ms late", "/s/d.jsonl", 2001),
		session("inside", "/s/e.jsonl", 1500),
	}

	kept, removed := FilterSessions(sessions, from, until, cfg)

	require.Len(t, kept, 3)
	assert.Equal(t, 2, removed)
	assert.Equal(t, "exactly from", kept[0].Title)
	assert.Equal(t, "inside", kept[1].Title)
	assert.Equal(t, "exactly until", kept[2].Title)
}

func TestFilterSessionsZeroBoundariesUnbounded(t *testing.T) {
	cfg := DefaultConfig()

	sessions := []model.SessionSummary{
		session("ancient", "/s/a.jsonl", 1),
		session("future", "/s/b.jsonl", 1<<50),
	}

	kept, removed := FilterSessions(sessions, 0, 0, cfg)

	assert.Len(t, kept, 2)
	assert.Equal(t, 0, removed)
}

func TestFilterSessionsSubagentPath(t *testing.T) {
	cfg := DefaultConfig()

	sessions := []model.SessionSummary{
		session("main", "/home/dev/.cass/sessions/a.jsonl", 10),
		session("sub", "/home/dev/.cass/subagents/b.jsonl", 20),
		session("lookalike", "/home/dev/.cass/subagents-archive/c.jsonl", 30),
		session("windows sub", `C:\cass\subagents\d.jsonl`, 40),
	}

	kept, removed := FilterSessions(sessions, 0, 0, cfg)

	require.Len(t, kept, 2)
	assert.Equal(t, 2, removed)
	assert.Equal(t, "main", kept[0].Title)
	assert.Equal(t, "lookalike", kept[1].Title, "marker must match a whole path segment")
}

func TestFilterSessionsTeammateTitles(t *testing.T) {
	cfg := DefaultConfig()

	sessions := []model.SessionSummary{
		session("<teammate-message from=worker>", "/s/a.jsonl", 10),
		session("Your task is to create a detailed summary of today", "/s/b.jsonl", 20),
		session("Refactor the parser", "/s/c.jsonl", 30),
	}

	kept, removed := FilterSessions(sessions, 0, 0, cfg)

	require.Len(t, kept, 1)
	assert.Equal(t, 2, removed)
	assert.Equal(t, "Refactor the parser", kept[0].Title)
}

func TestFilterSessionsSortsByStartTime(t *testing.T) {
	cfg := DefaultConfig()

	sessions := []model.SessionSummary{
		session("third", "/s/a.jsonl", 300),
		session("first", "/s/b.jsonl", 100),
		session("second", "/s/c.jsonl", 200),
	}

	kept, _ := FilterSessions(sessions, 0, 0, cfg)

	require.Len(t, kept, 3)
	assert.Equal(t, "first", kept[0].Title)
	assert.Equal(t, "second", kept[1].Title)
	assert.Equal(t, "third", kept[2].Title)
}

func TestFilterSessionsEmptyInput(t *testing.T) {
	kept, removed := FilterSessions(nil, 0, 0, DefaultConfig())

	assert.Empty(t, kept)
	assert.Equal(t, 0, removed)
}
