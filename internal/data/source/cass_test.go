package source

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeRunner(t *testing.T, wantArgs []string, output string, err error) runnerFunc {
	t.Helper()
	return func(_ context.Context, bin string, args []string) ([]byte, error) {
		assert.Equal(t, "cass", bin)
		for _, want := range wantArgs {
			assert.Contains(t, strings.Join(args, " "), want)
		}
		if err != nil {
			return nil, err
		}
		return []byte(output), nil
	}
}

func TestTimelineDecodesSessions(t *testing.T) {
	payload := `{
		"total_sessions": 2,
		"sessions": [
			{"title": "Fix parser", "source_path": "/s/a.jsonl", "started_at": 1000, "ended_at": 2000, "message_count": 12},
			{"title": "Add tests", "source_path": "/s/b.jsonl", "started_at": 3000, "ended_at": 4000, "message_count": 30}
		]
	}`

	s := NewCassSource("cass")
	s.runner = fakeRunner(t, []string{"timeline --json --group-by none", "--since 2026-02-10", "--agent claude_code"}, payload, nil)

	result, err := s.Timeline(context.Background(), TimelineQuery{
		Since: "2026-02-10",
		Until: "2026-02-10T23:59:59",
		Agent: "claude_code",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalSessions)
	require.Len(t, result.Sessions, 2)
	assert.Equal(t, "Fix parser", result.Sessions[0].Title)
	assert.Equal(t, int64(1000), result.Sessions[0].StartedAt)
	assert.Equal(t, 30, result.Sessions[1].MessageCount)
}

func TestTimelineGroupedByHour(t *testing.T) {
	payload := `{
		"total_sessions": 3,
		"groups": {
			"2026-02-10 09:00": [{"title": "a", "source_path": "/a", "started_at": 1}],
			"2026-02-10 14:00": [{"title": "b", "source_path": "/b", "started_at": 2}, {"title": "c", "source_path": "/c", "started_at": 3}]
		}
	}`

	s := NewCassSource("")
	s.runner = fakeRunner(t, []string{"--group-by hour"}, payload, nil)

	result, err := s.Timeline(context.Background(), TimelineQuery{GroupBy: "hour"})

	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalSessions)
	assert.Len(t, result.Groups["2026-02-10 09:00"], 1)
	assert.Len(t, result.Groups["2026-02-10 14:00"], 2)
}

func TestTimelineCommandFailure(t *testing.T) {
	s := NewCassSource("cass")
	s.runner = fakeRunner(t, nil, "", errors.New("exit status 1"))

	result, err := s.Timeline(context.Background(), TimelineQuery{})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestTimelineMalformedOutput(t *testing.T) {
	s := NewCassSource("cass")
	s.runner = fakeRunner(t, nil, "not json", nil)

	result, err := s.Timeline(context.Background(), TimelineQuery{})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestAggregateDecodesBuckets(t *testing.T) {
	payload := `{
		"total_matches": 42,
		"aggregations": {
			"workspace": {
				"buckets": [
					{"key": "/home/dev/api", "count": 30},
					{"key": "/home/dev/web", "count": 12}
				]
			}
		}
	}`

	s := NewCassSource("cass")
	s.runner = fakeRunner(t, []string{"search the", "--aggregate workspace", "--limit 500", "--max-tokens 1000"}, payload, nil)

	result, err := s.Aggregate(context.Background(), AggregateQuery{
		Query: "the",
		Since: "2026-02-10",
		Until: "2026-02-11",
		Field: "workspace",
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result.TotalMatches)
	buckets := result.Aggregations["workspace"].Buckets
	require.Len(t, buckets, 2)
	assert.Equal(t, "/home/dev/api", buckets[0].Key)
	assert.Equal(t, 30, buckets[0].Count)
}

func TestAggregateOmitsAgentFlagWhenEmpty(t *testing.T) {
	s := NewCassSource("cass")
	s.runner = func(_ context.Context, _ string, args []string) ([]byte, error) {
		assert.NotContains(t, args, "--agent")
		return []byte(`{"total_matches": 0}`), nil
	}

	_, err := s.Aggregate(context.Background(), AggregateQuery{Query: "the", Field: "agent"})
	require.NoError(t, err)
}

func TestNewCassSourceDefaultBinary(t *testing.T) {
	s := NewCassSource("")
	assert.Equal(t, "cass", s.bin)
}
