package subtitle

import (
	"io"
	"strings"
	"time"
)

// {start}{stop}Line1|Line2, frame numbers; stop may be empty
var microDVDRegex = linePattern(`\{`, intField, `\}\{(`, intField, `)?\}(.+)`)

func parseMicroDVD(c *Cursor, st *State, index int) (Cue, error) {
	for {
		line, ok := c.Next()
		if !ok {
			return Cue{}, io.EOF
		}

		matches := microDVDRegex.FindStringSubmatch(line)
		if matches == nil {
			st.discard()
			continue
		}

		start := atoi64(matches[1])
		var stop int64
		if matches[2] != "" {
			stop = atoi64(matches[3])
		}
		text := matches[4]

		// {1}{1}23.976 declares the frame rate and is never shown
		if start == 1 && stop == 1 {
			if fps := leadingFloat(text); fps > 0 && !st.hasOverride() {
				st.frameDuration = frameDurationFor(fps)
			}
			continue
		}

		return Cue{
			Start: time.Duration(start) * st.frameDuration,
			Stop:  time.Duration(stop) * st.frameDuration,
			Text:  strings.ReplaceAll(text, "|", "\n"),
		}, nil
	}
}
