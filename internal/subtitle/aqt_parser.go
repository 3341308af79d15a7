package subtitle

import (
	"io"
	"strings"
	"time"
)

// -->> 123 marks the start of a block
var aqtMarkerRegex = linePattern(`-->>`, intField)

// A block runs from one marker to the next; reaching a second marker pushes
// it back for the following call.
func parseAQT(c *Cursor, st *State, index int) (Cue, error) {
	var cue Cue
	var sb strings.Builder
	opened := false
	for {
		line, ok := c.Next()
		if !ok {
			return Cue{}, io.EOF
		}

		if matches := aqtMarkerRegex.FindStringSubmatch(line); matches != nil {
			if opened {
				c.PushBack()
				break
			}
			opened = true
			cue.Start = time.Duration(atoi64(matches[1])) * time.Microsecond
			continue
		}

		sb.WriteString(line)
		sb.WriteString("\n")
		if c.AtEnd() {
			break
		}
	}
	cue.Text = sb.String()
	return cue, nil
}
