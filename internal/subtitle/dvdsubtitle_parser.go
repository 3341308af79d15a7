package subtitle

import (
	"io"
	"strings"
	"time"
)

// {T h:m:s:c opens a block that a line holding only } closes
var dvdSubtitleRegex = linePattern(
	`\{T\s*`, intField, `:`, intField, `:`, intField, `:`, intField,
)

func parseDVDSubtitle(c *Cursor, st *State, index int) (Cue, error) {
	var cue Cue
	for {
		line, ok := c.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		matches := dvdSubtitleRegex.FindStringSubmatch(line)
		if matches == nil {
			st.discard()
			continue
		}
		cue.Start = clock(matches[1], matches[2], matches[3], matches[4], 10*time.Millisecond)
		break
	}

	var sb strings.Builder
	for {
		line, ok := c.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		if line == "}" {
			break
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	cue.Text = sb.String()
	return cue, nil
}
