package subtitle

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// Dialogue: Marked=0,0:02:40.65,0:02:41.79,Style,Name,0000,0000,0000,,Text
var dialogueRegex = linePattern(
	`Dialogue:\s*([^,]{1,15}),`,
	intField, `:`, intField, `:`, intField, `\.`, intField, `,`,
	intField, `:`, intField, `:`, intField, `\.`, intField, `,`,
	`(.+)`,
)

// override blocks such as {\pos(100,200)} or {\i1}
var overrideTagRegex = regexp.MustCompile(`\{[^}]*\}`)

// ssaParser reads Dialogue lines for the three SubStation dialects. Every
// other line is appended verbatim to the session header.
type ssaParser struct {
	dialect Format
}

func (p *ssaParser) ParseCue(c *Cursor, st *State, index int) (Cue, error) {
	for {
		line, ok := c.Next()
		if !ok {
			return Cue{}, io.EOF
		}

		matches := dialogueRegex.FindStringSubmatch(line)
		if matches == nil {
			st.header.WriteString(line)
			st.header.WriteString("\n")
			continue
		}

		return Cue{
			Start: clock(matches[2], matches[3], matches[4], matches[5], 10*time.Millisecond),
			Stop:  clock(matches[6], matches[7], matches[8], matches[9], 10*time.Millisecond),
			Text:  p.repairFields(matches[1], matches[10], index),
		}, nil
	}
}

// The renderer expects ReadOrder, Layer, Style, Name, MarginL, MarginR,
// MarginV, Effect, Text. SSA-1 lacks one field and only gets a leading
// comma; the other dialects get ReadOrder and Layer prepended.
func (p *ssaParser) repairFields(marker, rest string, index int) string {
	if p.dialect == FormatSSA1 {
		return "," + rest
	}
	var layer int64
	if p.dialect == FormatASS {
		layer = leadingInt(marker)
	}
	return fmt.Sprintf("%d,%d,%s", index, layer, rest)
}

// PlainText returns the display text of a cue with SSA field prefixes and
// override tags removed and \N, \n turned into line breaks. Text of other
// grammars only loses its trailing line break.
func PlainText(format Format, text string) string {
	if format.IsSSA() {
		fields := 9
		if format == FormatSSA1 {
			fields = 7
		}
		parts := strings.SplitN(text, ",", fields)
		text = parts[len(parts)-1]
		text = overrideTagRegex.ReplaceAllString(text, "")
		text = strings.ReplaceAll(text, "\\N", "\n")
		text = strings.ReplaceAll(text, "\\n", "\n")
		text = strings.ReplaceAll(text, "\\h", " ")
	}
	return strings.TrimRight(text, "\n")
}
