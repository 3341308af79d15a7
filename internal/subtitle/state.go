package subtitle

import (
	"strings"
	"time"
)

const (
	defaultFrameDuration  = 40 * time.Millisecond
	defaultJacoResolution = 30
	// MPSub data lines before any FORMAT= directive are read as seconds
	defaultMPSubScale = 100.0
)

// State is the mutable context of one parse session. It is never shared
// between sessions.
type State struct {
	format        Format
	frameDuration time.Duration
	fpsOverride   float64

	header strings.Builder

	mpsubTotal float64
	mpsubScale float64

	samiResume  string
	samiPending bool

	jacoShift      int64
	jacoResolution int64
	jacoComment    int

	discarded int
}

// builds a fresh session state from the declared and override frame rates;
// rates below 1.0 are ignored
func NewState(format Format, fps, fpsOverride float64) *State {
	st := &State{
		format:         format,
		frameDuration:  defaultFrameDuration,
		mpsubScale:     defaultMPSubScale,
		jacoResolution: defaultJacoResolution,
	}
	if fps >= 1.0 {
		st.frameDuration = frameDurationFor(fps)
	}
	if fpsOverride >= 1.0 {
		st.fpsOverride = fpsOverride
		st.frameDuration = frameDurationFor(fpsOverride)
	}
	return st
}

// whole microseconds per frame, truncated
func frameDurationFor(fps float64) time.Duration {
	return time.Duration(int64(1000000/fps)) * time.Microsecond
}

func (st *State) FrameDuration() time.Duration {
	return st.frameDuration
}

// accumulated SSA header text
func (st *State) Header() string {
	return st.header.String()
}

// number of lines dropped because they matched no cue pattern
func (st *State) Discarded() int {
	return st.discarded
}

func (st *State) hasOverride() bool {
	return st.fpsOverride > 0
}

func (st *State) discard() {
	st.discarded++
}
