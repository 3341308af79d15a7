package subtitle

import (
	"time"
)

// Timeline answers seek and position queries over a finished cue sequence
// and tracks the cue a consumer would read next.
type Timeline struct {
	cues     []Cue
	duration time.Duration
	current  int
}

func NewTimeline(cues []Cue) *Timeline {
	t := &Timeline{cues: cues}
	if n := len(cues); n > 0 {
		t.duration = cues[n-1].Stop
		// +1 keeps the length of a track without stop times above zero
		if t.duration <= 0 {
			t.duration = cues[n-1].Start + time.Microsecond
		}
	}
	return t
}

// total track length
func (t *Timeline) Duration() time.Duration {
	return t.duration
}

func (t *Timeline) Len() int {
	return len(t.cues)
}

// index of the first cue starting at or after at
func (t *Timeline) IndexAt(at time.Duration) (int, error) {
	i := 0
	for i < len(t.cues) && t.cues[i].Start < at {
		i++
	}
	if i >= len(t.cues) {
		return len(t.cues), ErrNoMoreCues
	}
	return i, nil
}

// IndexAtFraction is IndexAt for a fraction of the total duration.
func (t *Timeline) IndexAtFraction(fraction float64) (int, error) {
	return t.IndexAt(time.Duration(fraction * float64(t.duration)))
}

// moves the read position to the first cue starting at or after at
func (t *Timeline) SetTime(at time.Duration) error {
	i, err := t.IndexAt(at)
	t.current = i
	return err
}

// moves the read position to a fraction of the total duration
func (t *Timeline) SetPosition(fraction float64) error {
	i, err := t.IndexAtFraction(fraction)
	t.current = i
	return err
}

// start of the cue at the read position
func (t *Timeline) Time() (time.Duration, error) {
	if t.current >= len(t.cues) {
		return 0, ErrNoMoreCues
	}
	return t.cues[t.current].Start, nil
}

// read position as a fraction of the duration, 1 once past the last cue
func (t *Timeline) Position() float64 {
	if t.current >= len(t.cues) {
		return 1.0
	}
	if t.duration <= 0 {
		return 0.0
	}
	return float64(t.cues[t.current].Start) / float64(t.duration)
}

// index of the cue at the read position
func (t *Timeline) Current() int {
	return t.current
}

// returns the cue at the read position and advances past it
func (t *Timeline) Next() (Cue, bool) {
	if t.current >= len(t.cues) {
		return Cue{}, false
	}
	cue := t.cues[t.current]
	t.current++
	return cue, true
}
