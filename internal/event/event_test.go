package event

import (
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	ev := &NormalizedEvent{
		Name:     "  Afrobeats Night ",
		OccursAt: time.Date(2025, 12, 25, 20, 30, 0, 0, time.UTC),
		Location: "Lagos, Nigeria",
	}

	key := ev.Key()
	if key.Name != "afrobeats night" {
		t.Errorf("Name = %q, want trimmed lowercase", key.Name)
	}
	if want := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC); !key.Date.Equal(want) {
		t.Errorf("Date = %v, want day-truncated %v", key.Date, want)
	}
	if key.Location != "lagos, nigeria" {
		t.Errorf("Location = %q, want lowercase", key.Location)
	}
}

func TestKey_SameDayDifferentTimes(t *testing.T) {
	morning := &NormalizedEvent{
		Name:     "Tech Summit",
		OccursAt: time.Date(2025, 12, 25, 9, 0, 0, 0, time.UTC),
		Location: "Abuja",
	}
	evening := &NormalizedEvent{
		Name:     "Tech Summit",
		OccursAt: time.Date(2025, 12, 25, 21, 0, 0, 0, time.UTC),
		Location: "Abuja",
	}

	if morning.Key() != evening.Key() {
		t.Error("same-day events produced different keys")
	}
}

func TestDateOnly(t *testing.T) {
	// A non-UTC time truncates to the UTC day it falls in.
	lagos := time.FixedZone("WAT", 60*60)
	in := time.Date(2025, 12, 26, 0, 30, 0, 0, lagos) // 23:30 UTC on the 25th
	want := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)

	if got := DateOnly(in); !got.Equal(want) {
		t.Errorf("DateOnly(%v) = %v, want %v", in, got, want)
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("Category %q not valid", c)
		}
	}
	if Category("Webinar").Valid() {
		t.Error("unknown category reported valid")
	}
	if Category("").Valid() {
		t.Error("empty category reported valid")
	}
}
