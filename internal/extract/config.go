package extract

// Config holds the filtering and sampling policy for one extraction run.
// Values are injected rather than read from package globals so tests can
// tighten thresholds.
type Config struct {
	// SkipTitlePrefixes marks subagent/teammate sessions by title.
	SkipTitlePrefixes []string
	// SystemPrefixes marks system-generated user messages (local command
	// markers, reminder tags, bash I/O tags) that carry no human intent.
	SystemPrefixes []string
	// SubagentMarker is the path segment under which subagent transcripts live.
	SubagentMarker string

	// SampleSize is the floor for entries per sample slice.
	SampleSize int
	// SliceCap is the hard ceiling for entries per sample slice.
	SliceCap int

	// Tier cutoffs on meaningful-entry count: at most FullMax entries the
	// whole session is shown, at most TwoPartMax two slices, at most
	// ThreePartMax three, above that five.
	FullMax      int
	TwoPartMax   int
	ThreePartMax int

	// AssistantTextMax bounds rendered assistant text, TitleMax the header title.
	AssistantTextMax int
	TitleMax         int
}

// DefaultConfig returns the policy used by the CLI.
func DefaultConfig() Config {
	return Config{
		SkipTitlePrefixes: []string{
			"<teammate-message",
			"Your task is to create a detailed summar",
		},
		SystemPrefixes: []string{
			"<local-command-",
			"<command-",
			"<system-reminder>",
			"<bash-input>",
			"<bash-stdout>",
			"<bash-stderr>",
			"<user-prompt-submit-hook>",
		},
		SubagentMarker:   "subagents",
		SampleSize:       5,
		SliceCap:         10,
		FullMax:          20,
		TwoPartMax:       60,
		ThreePartMax:     150,
		AssistantTextMax: 1000,
		TitleMax:         80,
	}
}
