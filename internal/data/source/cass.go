package source

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/daykit/go-session-extract/internal/util"
)

// runnerFunc executes the provider binary and returns its stdout.
// Swappable in tests so no real binary is needed.
type runnerFunc func(ctx context.Context, bin string, args []string) ([]byte, error)

// CassSource implements Source over the cass command-line data service.
// Each call is a one-shot subprocess invocation; cass applies its own
// bounds, so no timeout is enforced here beyond the caller's context.
type CassSource struct {
	bin    string
	runner runnerFunc
}

// NewCassSource creates a Source backed by the given cass binary.
func NewCassSource(bin string) *CassSource {
	if bin == "" {
		bin = "cass"
	}
	return &CassSource{
		bin:    bin,
		runner: runCommand,
	}
}

func runCommand(ctx context.Context, bin string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%s %s: %w: %s", bin, strings.Join(args, " "), err, msg)
		}
		return nil, fmt.Errorf("%s %s: %w", bin, strings.Join(args, " "), err)
	}
	return stdout.Bytes(), nil
}

// Timeline runs `cass timeline --json` for the queried window.
func (s *CassSource) Timeline(ctx context.Context, q TimelineQuery) (*TimelineResult, error) {
	groupBy := q.GroupBy
	if groupBy == "" {
		groupBy = "none"
	}

	args := []string{
		"timeline", "--json", "--group-by", groupBy,
		"--since", q.Since,
		"--until", q.Until,
	}
	if q.Agent != "" {
		args = append(args, "--agent", q.Agent)
	}

	out, err := s.run(ctx, args)
	if err != nil {
		return nil, err
	}

	var result TimelineResult
	if err := sonic.Unmarshal(out, &result); err != nil {
		return nil, fmt.Errorf("failed to decode timeline output: %w", err)
	}
	return &result, nil
}

// Aggregate runs `cass search --aggregate` for the queried field.
func (s *CassSource) Aggregate(ctx context.Context, q AggregateQuery) (*AggregateResult, error) {
	limit := q.Limit
	if limit == 0 {
		limit = 500
	}
	maxTokens := q.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1000
	}

	args := []string{
		"search", q.Query,
		"--since", q.Since,
		"--until", q.Until,
		"--limit", strconv.Itoa(limit),
		"--json",
		"--aggregate", q.Field,
		"--max-tokens", strconv.Itoa(maxTokens),
	}
	if q.Agent != "" {
		args = append(args, "--agent", q.Agent)
	}

	out, err := s.run(ctx, args)
	if err != nil {
		return nil, err
	}

	var result AggregateResult
	if err := sonic.Unmarshal(out, &result); err != nil {
		return nil, fmt.Errorf("failed to decode aggregate output: %w", err)
	}
	return &result, nil
}

func (s *CassSource) run(ctx context.Context, args []string) ([]byte, error) {
	util.LogDebug(fmt.Sprintf("Running %s %s", s.bin, strings.Join(args, " ")))
	out, err := s.runner(ctx, s.bin, args)
	if err != nil {
		return nil, err
	}
	return out, nil
}
