package source

import (
	"context"

	"github.com/daykit/go-session-extract/internal/core/model"
)

// Source lists recorded sessions and answers search aggregates. The
// extraction pipeline only talks to this interface so tests can feed it
// fixed in-memory listings.
type Source interface {
	// Timeline returns the sessions recorded in the queried window.
	Timeline(ctx context.Context, q TimelineQuery) (*TimelineResult, error)
	// Aggregate returns full-text-search bucket counts for a field.
	Aggregate(ctx context.Context, q AggregateQuery) (*AggregateResult, error)
}

// TimelineQuery selects sessions by time window and agent.
type TimelineQuery struct {
	Since   string
	Until   string
	Agent   string
	GroupBy string // "none" or "hour"
}

// TimelineResult is the provider's session listing. Groups is only
// populated for grouped queries and maps a group label (for hourly
// grouping, "YYYY-MM-DD HH:00") to the sessions in that group.
type TimelineResult struct {
	Sessions      []model.SessionSummary            `json:"sessions"`
	TotalSessions int                               `json:"total_sessions"`
	Groups        map[string][]model.SessionSummary `json:"groups"`
}

// AggregateQuery is a bucketed full-text search. Agent is optional; an
// empty value means all agents.
type AggregateQuery struct {
	Query     string
	Since     string
	Until     string
	Agent     string
	Field     string // "workspace" or "agent"
	Limit     int
	MaxTokens int
}

// Bucket is one aggregate bucket.
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Aggregation holds the buckets for one aggregated field.
type Aggregation struct {
	Buckets []Bucket `json:"buckets"`
}

// AggregateResult is the provider's aggregate answer.
type AggregateResult struct {
	TotalMatches int                    `json:"total_matches"`
	Aggregations map[string]Aggregation `json:"aggregations"`
}
