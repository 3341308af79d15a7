package subtitle

import (
	"io"
	"regexp"
	"strings"
	"time"
)

var (
	// 00:00:01,000 --> 00:00:04,000
	subRipTimingRegex = linePattern(
		intField, `:`, intField, `:`, intField, `,`, intField,
		`\s*-->`,
		intField, `:`, intField, `:`, intField, `,`, intField,
	)
	// 00:00:01.00,00:00:04.00
	subViewerTimingRegex = linePattern(
		intField, `:`, intField, `:`, intField, `\.`, intField,
		`,`,
		intField, `:`, intField, `:`, intField, `\.`, intField,
	)
)

func parseSubRip(c *Cursor, st *State, index int) (Cue, error) {
	return parseTimedBlock(c, st, subRipTimingRegex, false)
}

func parseSubViewer(c *Cursor, st *State, index int) (Cue, error) {
	return parseTimedBlock(c, st, subViewerTimingRegex, true)
}

// a timing line followed by text lines up to the first empty line; cue
// numbers and any other stray lines before the timing are skipped
func parseTimedBlock(
	c *Cursor,
	st *State,
	timing *regexp.Regexp,
	replaceBreaks bool,
) (Cue, error) {
	var cue Cue
	for {
		line, ok := c.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		matches := timing.FindStringSubmatch(line)
		if matches == nil {
			st.discard()
			continue
		}
		cue.Start = clock(matches[1], matches[2], matches[3], matches[4], time.Millisecond)
		cue.Stop = clock(matches[5], matches[6], matches[7], matches[8], time.Millisecond)
		break
	}

	var sb strings.Builder
	for {
		line, ok := c.Next()
		if !ok {
			// unterminated block
			return Cue{}, io.EOF
		}
		if line == "" {
			break
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	cue.Text = sb.String()
	if replaceBreaks {
		cue.Text = strings.ReplaceAll(cue.Text, "[br]", "\n")
	}
	return cue, nil
}
