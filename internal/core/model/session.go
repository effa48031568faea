package model

// SessionSummary is one session as reported by the listing provider.
// Workspace is resolved lazily from the transcript (first entry carrying a
// cwd) after the listing call; the summary is not mutated after that.
type SessionSummary struct {
	Title        string `json:"title"`
	Workspace    string `json:"workspace,omitempty"`
	SourcePath   string `json:"source_path"`
	StartedAt    int64  `json:"started_at"`
	EndedAt      int64  `json:"ended_at"`
	MessageCount int    `json:"message_count"`
	Agent        string `json:"agent,omitempty"`
}

// MeaningfulEntry is a single user or assistant turn that survived
// classification: non-empty text plus the tool names used in that turn,
// in original block order.
type MeaningfulEntry struct {
	Role  string
	Text  string
	Tools []string
}

// SampleSection is a labeled contiguous excerpt of a session's meaningful
// entries. Adjacent sections of the same session may overlap; that is
// accepted behavior, not deduplicated.
type SampleSection struct {
	Label   string
	Entries []MeaningfulEntry
}
