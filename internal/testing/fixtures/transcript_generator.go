package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TranscriptLine is one line of a generated transcript fixture, matching
// the record shape the extraction pipeline decodes.
type TranscriptLine struct {
	Type    string  `json:"type"`
	Cwd     string  `json:"cwd,omitempty"`
	Message Message `json:"message"`
}

type Message struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

// Block is one element of an assistant content array.
type Block struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Name     string `json:"name,omitempty"`
	Thinking string `json:"thinking,omitempty"`
}

// TranscriptGenerator writes transcript JSONL fixtures for tests.
type TranscriptGenerator struct {
	baseDir string
}

// NewTranscriptGenerator creates a generator rooted at baseDir.
func NewTranscriptGenerator(baseDir string) *TranscriptGenerator {
	return &TranscriptGenerator{baseDir: baseDir}
}

// UserLine builds a plain user turn.
func UserLine(text string) TranscriptLine {
	return TranscriptLine{
		Type:    "user",
		Message: Message{Role: "user", Content: text},
	}
}

// AssistantLine builds an assistant turn from content blocks.
func AssistantLine(blocks ...Block) TranscriptLine {
	return TranscriptLine{
		Type:    "assistant",
		Message: Message{Role: "assistant", Content: blocks},
	}
}

// WriteTranscript writes the lines as a JSONL file under the base
// directory and returns its path.
func (g *TranscriptGenerator) WriteTranscript(name string, lines []TranscriptLine) (string, error) {
	path := filepath.Join(g.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	for _, line := range lines {
		if err := encoder.Encode(line); err != nil {
			return "", err
		}
	}
	return path, nil
}

// Conversation generates an alternating user/assistant transcript with
// the given number of turns.
func Conversation(turns int, cwd string) []TranscriptLine {
	lines := make([]TranscriptLine, 0, turns)
	for i := 0; i < turns; i++ {
		if i%2 == 0 {
			line := UserLine(fmt.Sprintf("user turn %d", i))
			if i == 0 {
				line.Cwd = cwd
			}
			lines = append(lines, line)
		} else {
			lines = append(lines, AssistantLine(Block{Type: "text", Text: fmt.Sprintf("assistant turn %d", i)}))
		}
	}
	return lines
}
