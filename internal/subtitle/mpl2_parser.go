package subtitle

import (
	"io"
	"time"
)

// [start][stop]Line1|/Line2 with times in deciseconds; stop may be empty
var mpl2Regex = linePattern(`\[`, intField, `\]\[(`, intField, `)?\]\s*(\S.*)`)

func parseMPL2(c *Cursor, st *State, index int) (Cue, error) {
	for {
		line, ok := c.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		matches := mpl2Regex.FindStringSubmatch(line)
		if matches == nil {
			st.discard()
			continue
		}

		var stop int64
		if matches[2] != "" {
			stop = atoi64(matches[3])
		}
		return Cue{
			Start: time.Duration(atoi64(matches[1])) * 100 * time.Millisecond,
			Stop:  time.Duration(stop) * 100 * time.Millisecond,
			Text:  mpl2Text(matches[4]),
		}, nil
	}
}

// turns | into line breaks and drops the italic marker / that may open
// each line
func mpl2Text(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ch == '|' {
			ch = '\n'
		}
		if ch == '/' && (len(out) == 0 || out[len(out)-1] == '\n') {
			continue
		}
		out = append(out, ch)
	}
	return string(out)
}
