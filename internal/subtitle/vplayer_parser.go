package subtitle

import (
	"io"
	"strings"
	"time"
)

// h:m:s:Line1|Line2 or h:m:s Line1|Line2, any single separator character
var vplayerRegex = linePattern(intField, `:`, intField, `:`, intField, `[^0-9](.+)`)

func parseVPlayer(c *Cursor, st *State, index int) (Cue, error) {
	for {
		line, ok := c.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		matches := vplayerRegex.FindStringSubmatch(line)
		if matches == nil {
			st.discard()
			continue
		}
		return Cue{
			Start: clock(matches[1], matches[2], matches[3], "0", time.Second),
			Text:  strings.ReplaceAll(matches[4], "|", "\n"),
		}, nil
	}
}
