package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daykit/go-session-extract/internal/core/model"
)

func writeTranscript(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseFileValidTranscript(t *testing.T) {
	p := NewParser()

	content := `{"type":"user","cwd":"/home/dev/project","message":{"role":"user","content":"Fix the login bug"}}
{"type":"assistant","message":{"role":"assistant","content":[{"type":"text","text":"Looking at it now."},{"type":"tool_use","name":"Read"}]}}`

	entries, err := p.ParseFile(writeTranscript(t, "session.jsonl", content))

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, model.EntryUser, entries[0].Type)
	assert.Equal(t, "/home/dev/project", entries[0].Cwd)
	assert.True(t, entries[0].Message.Content.IsString)
	assert.Equal(t, "Fix the login bug", entries[0].Message.Content.Text)

	assert.Equal(t, model.EntryAssistant, entries[1].Type)
	require.Len(t, entries[1].Message.Content.Blocks, 2)
	assert.Equal(t, model.BlockText, entries[1].Message.Content.Blocks[0].Type)
	assert.Equal(t, model.BlockToolUse, entries[1].Message.Content.Blocks[1].Type)
	assert.Equal(t, "Read", entries[1].Message.Content.Blocks[1].Name)
}

func TestParseFileSkipsInvalidLines(t *testing.T) {
	p := NewParser()

	content := `{"type":"user","message":{"role":"user","content":"first"}}
not json at all
{broken
{"type":"user","message":{"role":"user","content":"second"}}`

	entries, err := p.ParseFile(writeTranscript(t, "mixed.jsonl", content))

	require.NoError(t, err, "invalid lines should be skipped, not fatal")
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Message.Content.Text)
	assert.Equal(t, "second", entries[1].Message.Content.Text)
}

func TestParseFileSkipsBlankLines(t *testing.T) {
	p := NewParser()

	content := "\n\n" + `{"type":"user","message":{"role":"user","content":"only"}}` + "\n\n"

	entries, err := p.ParseFile(writeTranscript(t, "blank.jsonl", content))

	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestParseFileEmpty(t *testing.T) {
	p := NewParser()

	entries, err := p.ParseFile(writeTranscript(t, "empty.jsonl", ""))

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseFileMissing(t *testing.T) {
	p := NewParser()

	entries, err := p.ParseFile("/path/that/does/not/exist.jsonl")

	assert.Error(t, err)
	assert.Nil(t, entries)
}

func TestParseFileThinkingBlocks(t *testing.T) {
	p := NewParser()

	content := `{"type":"assistant","message":{"role":"assistant","content":[{"type":"thinking","thinking":"pondering"},{"type":"text","text":"Done."}]}}`

	entries, err := p.ParseFile(writeTranscript(t, "thinking.jsonl", content))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Message.Content.Blocks, 2)
	assert.Equal(t, model.BlockThink, entries[0].Message.Content.Blocks[0].Type)
}

func TestParseFileLargeTranscript(t *testing.T) {
	p := NewParser()

	var lines []string
	for i := 0; i < 500; i++ {
		lines = append(lines, fmt.Sprintf(`{"type":"user","message":{"role":"user","content":"message %d"}}`, i))
	}

	entries, err := p.ParseFile(writeTranscript(t, "large.jsonl", strings.Join(lines, "\n")))

	require.NoError(t, err)
	require.Len(t, entries, 500)
	assert.Equal(t, "message 0", entries[0].Message.Content.Text)
	assert.Equal(t, "message 499", entries[499].Message.Content.Text)
}
