package subtitle

import (
	"io"
	"strings"
	"time"
)

// start,stop,"text"
var pjsRegex = linePattern(intField, `,`, intField, `,"(.+)`)

func parsePJS(c *Cursor, st *State, index int) (Cue, error) {
	for {
		line, ok := c.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		matches := pjsRegex.FindStringSubmatch(line)
		if matches == nil {
			st.discard()
			continue
		}
		return Cue{
			Start: time.Duration(10*atoi64(matches[1])) * time.Microsecond,
			Stop:  time.Duration(10*atoi64(matches[2])) * time.Microsecond,
			Text:  strings.TrimSuffix(matches[3], `"`),
		}, nil
	}
}
