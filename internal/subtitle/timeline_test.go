package subtitle

import (
	"errors"
	"testing"
	"time"
)

func sampleCues() []Cue {
	return []Cue{
		{Start: 1 * time.Second, Stop: 1500 * time.Millisecond, Text: "one"},
		{Start: 2 * time.Second, Stop: 2500 * time.Millisecond, Text: "two"},
		{Start: 3 * time.Second, Stop: 3500 * time.Millisecond, Text: "three"},
	}
}

func TestTimelineIndexAt(t *testing.T) {
	tl := NewTimeline(sampleCues())

	tests := []struct {
		name    string
		at      time.Duration
		want    int
		wantErr error
	}{
		{"before first", 0, 0, nil},
		{"exact first", time.Second, 0, nil},
		{"between", 2100 * time.Millisecond, 2, nil},
		{"last start", 3 * time.Second, 2, nil},
		{"past end", 4 * time.Second, 3, ErrNoMoreCues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tl.IndexAt(tt.at)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("IndexAt(%v) error = %v, want %v", tt.at, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("IndexAt(%v) = %d, want %d", tt.at, got, tt.want)
			}
		})
	}
}

func TestTimelineDuration(t *testing.T) {
	if got := NewTimeline(sampleCues()).Duration(); got != 3500*time.Millisecond {
		t.Errorf("Duration() = %v, want 3.5s", got)
	}

	open := []Cue{{Start: time.Second}, {Start: 3 * time.Second}}
	if got := NewTimeline(open).Duration(); got != 3*time.Second+time.Microsecond {
		t.Errorf("Duration() = %v, want 3.000001s", got)
	}

	empty := NewTimeline(nil)
	if empty.Duration() != 0 {
		t.Errorf("Duration() = %v, want 0", empty.Duration())
	}
	if _, err := empty.IndexAt(0); !errors.Is(err, ErrNoMoreCues) {
		t.Errorf("IndexAt on empty timeline: %v", err)
	}
	if empty.Position() != 1.0 {
		t.Errorf("Position() = %v, want 1", empty.Position())
	}
}

func TestTimelineIndexAtFraction(t *testing.T) {
	tl := NewTimeline(sampleCues())
	if got, err := tl.IndexAtFraction(0.5); err != nil || got != 1 {
		t.Errorf("IndexAtFraction(0.5) = %d, %v, want 1", got, err)
	}
	if got, err := tl.IndexAtFraction(0); err != nil || got != 0 {
		t.Errorf("IndexAtFraction(0) = %d, %v, want 0", got, err)
	}
	if _, err := tl.IndexAtFraction(1); !errors.Is(err, ErrNoMoreCues) {
		t.Errorf("IndexAtFraction(1) error = %v, want ErrNoMoreCues", err)
	}
}

func TestTimelineReadPosition(t *testing.T) {
	tl := NewTimeline(sampleCues())

	if err := tl.SetTime(2 * time.Second); err != nil {
		t.Fatalf("SetTime: %v", err)
	}
	if tl.Current() != 1 {
		t.Errorf("Current() = %d, want 1", tl.Current())
	}
	if at, err := tl.Time(); err != nil || at != 2*time.Second {
		t.Errorf("Time() = %v, %v, want 2s", at, err)
	}
	if got, want := tl.Position(), 2.0/3.5; got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}

	cue, ok := tl.Next()
	if !ok || cue.Text != "two" {
		t.Errorf("Next() = %+v, %v", cue, ok)
	}
	if tl.Current() != 2 {
		t.Errorf("Current() after Next = %d, want 2", tl.Current())
	}

	if err := tl.SetPosition(1); !errors.Is(err, ErrNoMoreCues) {
		t.Fatalf("SetPosition(1) error = %v, want ErrNoMoreCues", err)
	}
	if _, err := tl.Time(); !errors.Is(err, ErrNoMoreCues) {
		t.Errorf("Time() past end error = %v", err)
	}
	if tl.Position() != 1.0 {
		t.Errorf("Position() past end = %v, want 1", tl.Position())
	}
	if _, ok := tl.Next(); ok {
		t.Error("Next() past end should report false")
	}

	if err := tl.SetPosition(0); err != nil {
		t.Fatalf("SetPosition(0): %v", err)
	}
	if tl.Current() != 0 {
		t.Errorf("Current() = %d, want 0", tl.Current())
	}
	if tl.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tl.Len())
	}
}
