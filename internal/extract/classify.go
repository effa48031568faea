package extract

import (
	"strings"

	"github.com/daykit/go-session-extract/internal/core/model"
)

// Classify reduces raw transcript entries to the ordered sequence of
// meaningful user/assistant turns. Output order mirrors input order;
// dropped records are simply omitted.
//
// A user record contributes its trimmed string content unless the text
// starts with a system-generated prefix. An assistant record contributes
// the newline-joined text of its text blocks plus the tool names of its
// tool_use blocks; it is emitted only when the joined text is non-empty,
// so a tool-only turn produces nothing. Thinking blocks and every other
// record shape are ignored.
func Classify(entries []model.TranscriptEntry, cfg Config) []model.MeaningfulEntry {
	var meaningful []model.MeaningfulEntry

	for _, entry := range entries {
		role := entry.Message.Role
		content := entry.Message.Content

		switch {
		case entry.Type == model.EntryUser && role == model.RoleUser && content.IsString:
			text := strings.TrimSpace(content.Text)
			if text == "" || hasTitlePrefix(text, cfg.SystemPrefixes) {
				continue
			}
			meaningful = append(meaningful, model.MeaningfulEntry{
				Role: model.RoleUser,
				Text: text,
			})

		case entry.Type == model.EntryAssistant && role == model.RoleAssistant && !content.IsString:
			var texts []string
			var tools []string
			for _, block := range content.Blocks {
				switch block.Type {
				case model.BlockText:
					if t := strings.TrimSpace(block.Text); t != "" {
						texts = append(texts, t)
					}
				case model.BlockToolUse:
					name := block.Name
					if name == "" {
						name = "unknown"
					}
					tools = append(tools, name)
				}
			}
			if len(texts) == 0 {
				continue
			}
			meaningful = append(meaningful, model.MeaningfulEntry{
				Role:  model.RoleAssistant,
				Text:  strings.Join(texts, "\n"),
				Tools: tools,
			})
		}
	}

	return meaningful
}

// Workspace resolves a session's workspace from the first transcript entry
// carrying a cwd, falling back to "unknown".
func Workspace(entries []model.TranscriptEntry) string {
	for _, entry := range entries {
		if entry.Cwd != "" {
			return entry.Cwd
		}
	}
	return "unknown"
}
