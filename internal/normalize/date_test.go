package normalize

import (
	"testing"
	"time"
)

// fixed processing time for deterministic assertions
var testNow = time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

func TestDate_RecognizedPatterns(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "month day year",
			raw:  "Dec 25 2025",
			want: time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "month day comma year",
			raw:  "Dec 25, 2025",
			want: time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "long month name",
			raw:  "December 25, 2025",
			want: time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "day month year",
			raw:  "25 Dec 2025",
			want: time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "numeric slash",
			raw:  "12/25/2025",
			want: time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "numeric dash",
			raw:  "12-25-2025",
			want: time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "weekday prefix stripped",
			raw:  "Saturday, December 25 2025",
			want: time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "date embedded in longer text",
			raw:  "Doors open Dec 25 2025 7:30 PM",
			want: time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Date(tt.raw, testNow)
			if !got.Equal(tt.want) {
				t.Errorf("Date(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDate_Fallback(t *testing.T) {
	want := testNow.AddDate(0, 0, 30)

	for _, raw := range []string{"", "sometime soon", "TBA"} {
		got := Date(raw, testNow)
		if !got.Equal(want) {
			t.Errorf("Date(%q) = %v, want now+30d %v", raw, got, want)
		}
	}
}

func TestDate_PastDateCorrection(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "more than 7 days past gains a year",
			raw:  "Jan 15 2025",
			want: time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "within grace window unchanged",
			raw:  "Oct 28 2025",
			want: time.Date(2025, time.October, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly at boundary unchanged",
			raw:  "Oct 25 2025",
			want: time.Date(2025, time.October, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "two years stale still bumped once only",
			raw:  "Jan 15 2023",
			want: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "future date unchanged",
			raw:  "Mar 1 2026",
			want: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Date(tt.raw, testNow)
			if !got.Equal(tt.want) {
				t.Errorf("Date(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
