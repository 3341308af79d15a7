package subtitle

import (
	"io"
	"strings"
	"time"
)

const mpsubFormatPrefix = "FORMAT="

// two relative times, each added to the running total
var mpsubDataRegex = linePattern(floatField, `\s+`, floatField)

// MPSub times are deltas: each data line advances the session total by its
// start offset and then by its duration.
func parseMPSub(c *Cursor, st *State, index int) (Cue, error) {
	var cue Cue
	for {
		line, ok := c.Next()
		if !ok {
			return Cue{}, io.EOF
		}

		if value, found := strings.CutPrefix(line, mpsubFormatPrefix); found && value != "" {
			st.setMPSubFormat(value)
			continue
		}

		matches := mpsubDataRegex.FindStringSubmatch(line)
		if matches == nil {
			st.discard()
			continue
		}
		st.mpsubTotal += leadingFloat(matches[1]) * st.mpsubScale
		cue.Start = mpsubTime(st.mpsubTotal)
		st.mpsubTotal += leadingFloat(matches[2]) * st.mpsubScale
		cue.Stop = mpsubTime(st.mpsubTotal)
		break
	}

	var sb strings.Builder
	for {
		line, ok := c.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		if line == "" {
			break
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	cue.Text = sb.String()
	return cue, nil
}

// FORMAT=TIME counts seconds; FORMAT=<fps> counts frames and seeds the
// session frame rate unless one was forced
func (st *State) setMPSubFormat(value string) {
	if strings.HasPrefix(value, "TIME") {
		st.mpsubScale = 100.0
		return
	}
	if fps := leadingFloat(value); fps > 0 && !st.hasOverride() {
		st.fpsOverride = fps
		st.frameDuration = frameDurationFor(fps)
	}
	st.mpsubScale = 1.0
}

// the running total is kept in hundredths of a second
func mpsubTime(total float64) time.Duration {
	return time.Duration(int64(10000.0*total)) * time.Microsecond
}
