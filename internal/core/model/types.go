package model

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// TranscriptEntry is one line of a session transcript file. Only the fields
// the extraction pipeline needs are decoded; everything else in the record
// is ignored. Unknown type/role combinations are kept as-is and dropped
// later by the classifier.
type TranscriptEntry struct {
	Type      string  `json:"type"`
	Cwd       string  `json:"cwd,omitempty"`
	Timestamp string  `json:"timestamp,omitempty"`
	SessionId string  `json:"sessionId,omitempty"`
	Uuid      string  `json:"uuid,omitempty"`
	IsMeta    bool    `json:"isMeta,omitempty"`
	Message   Message `json:"message"`
}

type Message struct {
	Role    string          `json:"role"`
	Content FlexibleContent `json:"content"`
	Model   string          `json:"model,omitempty"`
}

// FlexibleContent accepts both content shapes that appear in transcripts:
// a plain string (typical for user turns) or an array of typed blocks
// (assistant turns with text/tool_use/thinking blocks).
type FlexibleContent struct {
	// Text is set when the content was a plain JSON string.
	Text string
	// Blocks is set when the content was a block array.
	Blocks []ContentBlock
	// IsString distinguishes an empty string from an empty block list.
	IsString bool
}

func (fc *FlexibleContent) UnmarshalJSON(data []byte) error {
	var str string
	if err := sonic.Unmarshal(data, &str); err == nil {
		fc.Text = str
		fc.Blocks = nil
		fc.IsString = true
		return nil
	}

	var blocks []ContentBlock
	if err := sonic.Unmarshal(data, &blocks); err == nil {
		fc.Text = ""
		fc.Blocks = blocks
		fc.IsString = false
		return nil
	}

	return fmt.Errorf("content must be either string or array of blocks")
}

// ContentBlock is one element of an assistant message's content array.
type ContentBlock struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Name     string `json:"name,omitempty"`
	Thinking string `json:"thinking,omitempty"`
	Id       string `json:"id,omitempty"`
}

const (
	BlockText    = "text"
	BlockToolUse = "tool_use"
	BlockThink   = "thinking"

	EntryUser      = "user"
	EntryAssistant = "assistant"

	RoleUser      = "user"
	RoleAssistant = "assistant"
)
