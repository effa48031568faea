package util

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"golang.org/x/term"
)

// ConsoleOutput writes logs to the console. Entries below minLevel are
// dropped so the console can stay quieter than the log file. Levels are
// colorized only when the writer is a real terminal.
type ConsoleOutput struct {
	writer   io.Writer
	minLevel LogLevel
	colored  bool
	mu       sync.Mutex
}

// NewConsoleOutput creates a new console output
func NewConsoleOutput(writer io.Writer, minLevel LogLevel) Output {
	colored := false
	if f, ok := writer.(*os.File); ok {
		colored = term.IsTerminal(int(f.Fd()))
	}
	return &ConsoleOutput{
		writer:   writer,
		minLevel: minLevel,
		colored:  colored,
	}
}

var levelColors = map[string]string{
	"DEBUG": "\033[90m",
	"INFO":  "\033[36m",
	"WARN":  "\033[33m",
	"ERROR": "\033[31m",
	"FATAL": "\033[31m",
}

// Write writes a log entry to console
func (c *ConsoleOutput) Write(entry LogEntry) error {
	if parseLogLevel(entry.Level) < c.minLevel {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	level := entry.Level
	if c.colored {
		if color, ok := levelColors[level]; ok {
			level = color + level + "\033[0m"
		}
	}

	timestamp := entry.Timestamp.Format("2006/01/02 15:04:05")
	output := fmt.Sprintf("%s [%s] %s", timestamp, level, entry.Message)
	output += formatFields(entry.Fields)

	_, err := fmt.Fprintln(c.writer, output)
	return err
}

// Close closes the console output
func (c *ConsoleOutput) Close() error {
	return nil
}

// FileOutput writes logs to a file
type FileOutput struct {
	file   *os.File
	format LogFormat
	mu     sync.Mutex
}

// NewFileOutput creates a new file output
func NewFileOutput(path string, format LogFormat) (Output, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &FileOutput{
		file:   file,
		format: format,
	}, nil
}

// Write writes a log entry to file
func (f *FileOutput) Write(entry LogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var output string
	if f.format == FormatJSON {
		data, err := sonic.Marshal(entry)
		if err != nil {
			return err
		}
		output = string(data)
	} else {
		timestamp := entry.Timestamp.Format("2006/01/02 15:04:05")
		output = fmt.Sprintf("%s [%s] %s", timestamp, entry.Level, entry.Message)
		output += formatFields(entry.Fields)
	}

	_, err := fmt.Fprintln(f.file, output)
	return err
}

// Close closes the file
func (f *FileOutput) Close() error {
	return f.file.Close()
}

func formatFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	fieldStrs := make([]string, 0, len(fields))
	for k, v := range fields {
		fieldStrs = append(fieldStrs, fmt.Sprintf("%s=%v", k, v))
	}
	return " " + strings.Join(fieldStrs, " ")
}
