package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestLogger_Log(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "test message",
			fields:  Fields{"key": "value"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false, // won't log (below INFO)
		},
		{
			name:    "warn message",
			level:   LevelWarn,
			message: "warn message",
			want:    true,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "error occurred",
			err:     errors.New("test error"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(LevelInfo, &buf)

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			logged := buf.Len() > 0
			if logged != tt.want {
				t.Errorf("logged = %v, want %v", logged, tt.want)
			}
			if !logged {
				return
			}

			var entry LogEntry
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			if entry.Level != string(tt.level) {
				t.Errorf("Level = %q, want %q", entry.Level, tt.level)
			}
			if entry.Message != tt.message {
				t.Errorf("Message = %q, want %q", entry.Message, tt.message)
			}
			if tt.err != nil && entry.Error != tt.err.Error() {
				t.Errorf("Error = %q, want %q", entry.Error, tt.err.Error())
			}
		})
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug, &buf)

	logger.Info("event saved", Fields{"name": "Afrobeats Night", "price": 15000})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry.Fields["name"] != "Afrobeats Night" {
		t.Errorf("Fields[name] = %v, want Afrobeats Night", entry.Fields["name"])
	}
	// json.Unmarshal decodes numbers into float64.
	if entry.Fields["price"] != float64(15000) {
		t.Errorf("Fields[price] = %v, want 15000", entry.Fields["price"])
	}
}

func TestMetricsCounters(t *testing.T) {
	c := NewMetrics()

	c.IncrCounter("events.saved")
	c.IncrCounter("events.saved")
	c.IncrCounter("events.duplicate")

	if got := c.Counter("events.saved"); got != 2 {
		t.Errorf("Counter(events.saved) = %d, want 2", got)
	}
	if got := c.Counter("events.duplicate"); got != 1 {
		t.Errorf("Counter(events.duplicate) = %d, want 1", got)
	}
	if got := c.Counter("never.touched"); got != 0 {
		t.Errorf("Counter(never.touched) = %d, want 0", got)
	}

	snap := c.Snapshot()
	if len(snap) != 2 {
		t.Errorf("Snapshot has %d keys, want 2", len(snap))
	}

	// The snapshot is a copy; mutating it does not affect the counters.
	snap["events.saved"] = 99
	if got := c.Counter("events.saved"); got != 2 {
		t.Errorf("Counter(events.saved) after snapshot mutation = %d, want 2", got)
	}
}
