package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUTCProvider(t *testing.T) *TimeProvider {
	t.Helper()
	tp := &TimeProvider{}
	require.NoError(t, tp.SetTimezone("UTC"))
	return tp
}

func TestParseTimeSpecLayouts(t *testing.T) {
	tp := newUTCProvider(t)

	tests := []struct {
		name string
		spec string
		want time.Time
	}{
		{
			name: "full datetime",
			spec: "2026-02-10T08:30:15",
			want: time.Date(2026, 2, 10, 8, 30, 15, 0, time.UTC),
		},
		{
			name: "datetime without seconds",
			spec: "2026-02-10T08:30",
			want: time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC),
		},
		{
			name: "date only",
			spec: "2026-02-10",
			want: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tp.ParseTimeSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want.UnixMilli(), got)
		})
	}
}

func TestParseTimeSpecInvalid(t *testing.T) {
	tp := newUTCProvider(t)

	for _, spec := range []string{"", "not-a-date", "10/02/2026", "2026-02-10 08:30"} {
		got, err := tp.ParseTimeSpec(spec)
		assert.Error(t, err, "spec %q should not parse", spec)
		assert.Equal(t, int64(0), got, "unparseable spec should yield zero boundary")
	}
}

func TestFormatClock(t *testing.T) {
	tp := newUTCProvider(t)

	ts := time.Date(2026, 2, 10, 14, 5, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, "14:05", tp.FormatClock(ts))
}

func TestFormatClockZeroTimestamp(t *testing.T) {
	tp := newUTCProvider(t)

	assert.Equal(t, "??:??", tp.FormatClock(0))
}

func TestSetTimezoneInvalid(t *testing.T) {
	tp := &TimeProvider{}
	err := tp.SetTimezone("Not/AZone")
	assert.Error(t, err)
}
