package parser

import (
	"bufio"
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/daykit/go-session-extract/internal/core/model"
	"github.com/daykit/go-session-extract/internal/util"
)

// Parser reads transcript JSONL files into TranscriptEntry slices.
// Malformed lines are skipped; a whole file is only an error when it
// cannot be opened or read.
type Parser struct{}

// NewParser creates a new Parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile parses the transcript file at the specified path and returns
// its entries in original line order.
func (p *Parser) ParseFile(filepath string) ([]model.TranscriptEntry, error) {
	if info, err := util.GetFileInfo(filepath); err == nil {
		util.LogDebug(fmt.Sprintf("Start parsing transcript: %s (size=%d inode=%d)",
			filepath, info.Size, info.Inode))
	}

	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []model.TranscriptEntry
	scanner := bufio.NewScanner(file)
	// Assistant turns with embedded file contents can run into megabytes.
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	lineCount := 0
	for scanner.Scan() {
		lineCount++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry model.TranscriptEntry
		if err := sonic.Unmarshal(line, &entry); err != nil {
			util.LogDebug(fmt.Sprintf("Skip invalid JSON line %s:%d - %v", filepath, lineCount, err))
			continue
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		util.LogDebug(fmt.Sprintf("Error scanning transcript: %s - %v", filepath, err))
		return nil, err
	}

	util.LogDebug(fmt.Sprintf("Parsed transcript %s: %d lines, %d entries", filepath, lineCount, len(entries)))
	return entries, nil
}
