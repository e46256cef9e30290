package conditional_test

import (
	"testing"
	"time"

	"github.com/spatialtx/datastore/internal/conditional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStale(t *testing.T) {
	t.Parallel()
	base := time.Date(2024, time.March, 15, 12, 30, 45, 0, time.UTC)
	tests := []struct {
		name         string
		lastModified time.Time
		since        time.Time
		want         bool
	}{
		{"equal-not-stale", base, base, false},
		{"one-second-newer-stale", base.Add(time.Second), base, true},
		{"one-second-older-not-stale", base.Add(-time.Second), base, false},
		{"sub-second-newer-not-stale", base.Add(500 * time.Millisecond), base, false},
		{"sub-second-straddles-second-boundary", base.Add(999 * time.Millisecond), base.Add(-time.Millisecond), true},
		{"zero-last-modified-uses-sentinel", time.Time{}, conditional.Epoch, false},
		{"zero-last-modified-before-sentinel-client", time.Time{}, conditional.Epoch.Add(-time.Hour), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conditional.Stale(tt.lastModified, tt.since))
		})
	}
}

func TestStale_Idempotent(t *testing.T) {
	t.Parallel()
	// A client that stores the reported last-modified and presents it back
	// must get "not modified" until the resource actually changes.
	lm := time.Date(2024, time.March, 15, 12, 30, 45, 123456789, time.UTC)
	reported, ok := conditional.ParseHTTPDate(conditional.FormatHTTPDate(lm))
	require.True(t, ok)
	assert.False(t, conditional.Stale(lm, reported))
	assert.True(t, conditional.Stale(lm.Add(time.Second), reported))
}

func TestParseHTTPDate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		in     string
		want   time.Time
		wantOk bool
	}{
		{"valid", "Fri, 15 Mar 2024 12:30:45 GMT", time.Date(2024, time.March, 15, 12, 30, 45, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "yesterday-ish", time.Time{}, false},
		{"wrong-layout", "2024-03-15T12:30:45Z", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := conditional.ParseHTTPDate(tt.in)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.True(t, tt.want.Equal(got))
			}
		})
	}
}

func TestFormatHTTPDate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(2024, time.March, 15, 12, 30, 45, 0, time.UTC), "Fri, 15 Mar 2024 12:30:45 GMT"},
		{"normalizes-zone", time.Date(2024, time.March, 15, 14, 30, 45, 0, time.FixedZone("CEST", 2*3600)), "Fri, 15 Mar 2024 12:30:45 GMT"},
		{"zero-uses-sentinel", time.Time{}, "Sun, 01 Jan 2012 00:00:00 GMT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conditional.FormatHTTPDate(tt.in))
		})
	}
}
