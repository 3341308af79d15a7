package subtitle

import (
	"io"
	"strings"
	"time"
)

var (
	// h:m:s.f h:m:s.f text
	jacoClockRegex = linePattern(
		intField, `:`, intField, `:`, intField, `\.(\d+)\s+`,
		intField, `:`, intField, `:`, intField, `\.(\d+)`,
		`\s*(\S.*)`,
	)
	// @f1 @f2 text
	jacoFrameRegex = linePattern(`@`, intField, `\s*@`, intField, `\s*(\S.*)`)
)

// JacoSub frames are fractions of a second at the session time resolution,
// offset by the session time shift. Both are set by # directive lines and
// stay in force for the rest of the session.
func parseJacoSub(c *Cursor, st *State, index int) (Cue, error) {
	for {
		line, ok := c.Next()
		if !ok {
			return Cue{}, io.EOF
		}

		var cue Cue
		var text string
		if m := jacoClockRegex.FindStringSubmatch(line); m != nil {
			cue.Start = clock(m[1], m[2], m[3], "0", time.Second) + st.jacoFrames(atoi64(m[4]))
			cue.Stop = clock(m[5], m[6], m[7], "0", time.Second) + st.jacoFrames(atoi64(m[8]))
			text = m[9]
		} else if m := jacoFrameRegex.FindStringSubmatch(line); m != nil {
			cue.Start = st.jacoFrames(atoi64(m[1]))
			cue.Stop = st.jacoFrames(atoi64(m[2]))
			text = m[3]
		} else if strings.HasPrefix(line, "#") {
			st.jacoDirective(line)
			continue
		} else {
			st.discard()
			continue
		}

		text, err := st.stripJacoText(c, skipJacoDirective(text))
		if err != nil {
			return Cue{}, err
		}
		cue.Text = text
		return cue, nil
	}
}

func (st *State) jacoFrames(frames int64) time.Duration {
	return time.Duration((frames+st.jacoShift)*1000000/st.jacoResolution) * time.Microsecond
}

// handles #S[HIFT] and #T[IMERES]; other directives are ignored
func (st *State) jacoDirective(line string) {
	if len(line) < 2 {
		return
	}
	args := func(long int) string {
		if len(line) > 2 && isASCIILetter(line[2]) {
			if len(line) <= long {
				return ""
			}
			return line[long:]
		}
		return line[2:]
	}

	switch line[1] {
	case 'S', 's':
		if shift, ok := parseJacoShift(args(len("#SHIFT")), st.jacoResolution); ok {
			st.jacoShift = shift
		}
	case 'T', 't':
		if res := leadingInt(args(len("#TIMERES"))); res > 0 {
			st.jacoResolution = res
		}
	}
}

// [-][[h:]m:]s[.f] to frames at the given resolution
func parseJacoShift(arg string, resolution int64) (int64, bool) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return 0, false
	}
	arg = fields[0]

	sign := int64(1)
	if rest, found := strings.CutPrefix(arg, "-"); found {
		sign = -1
		arg = rest
	} else {
		arg = strings.TrimPrefix(arg, "+")
	}
	if arg == "" || arg[0] < '0' || arg[0] > '9' {
		return 0, false
	}

	clockPart, frames, _ := strings.Cut(arg, ".")
	units := strings.Split(clockPart, ":")
	if len(units) > 3 {
		return 0, false
	}
	var seconds int64
	for _, u := range units {
		seconds = seconds*60 + leadingInt(u)
	}
	return sign * (seconds*resolution + leadingInt(frames)), true
}

// A leading upper-case code such as D, VL or RLB[2] before the text is a
// rendering directive and is not displayed.
func skipJacoDirective(text string) string {
	text = strings.TrimLeft(text, " \t")
	word, rest, found := strings.Cut(text, " ")
	if !found || word == "" {
		return text
	}
	if word[0] != '[' {
		for i := 0; i < len(word); i++ {
			ch := word[i]
			if !(ch >= 'A' && ch <= 'Z') && !(ch >= '0' && ch <= '9') && ch != '[' && ch != ']' {
				return text
			}
		}
		if word[0] < 'A' || word[0] > 'Z' {
			return text
		}
	}
	return strings.TrimLeft(rest, " \t")
}

// Removes JacoSub control codes: {comments} (depth carried across cues),
// ~ hard spaces, runs of blanks, \n breaks, \C \F \B \I \U \D \N style
// escapes and trailing-backslash line continuations.
func (st *State) stripJacoText(c *Cursor, text string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		ch := text[i]
		var next byte
		if i+1 < len(text) {
			next = text[i+1]
		}

		switch ch {
		case '{':
			st.jacoComment++
		case '}':
			if st.jacoComment > 0 {
				st.jacoComment = 0
				if next == ' ' {
					i++
				}
			}
		case '~':
			if st.jacoComment == 0 {
				sb.WriteByte(' ')
			}
		case ' ', '\t':
			if next == ' ' || next == '\t' {
				continue
			}
			if st.jacoComment == 0 {
				sb.WriteByte(' ')
			}
		case '\\':
			switch {
			case next == 'n':
				if st.jacoComment == 0 {
					sb.WriteByte('\n')
				}
				i++
			case next == 'C' || next == 'c' || next == 'F' || next == 'f':
				i += 2
			case strings.IndexByte("BbIiUuDN", next) >= 0 && next != 0:
				i++
			case next == '~' || next == '{' || next == '\\':
				i++
				if st.jacoComment == 0 {
					sb.WriteByte(next)
				}
			case i+1 == len(text):
				line, ok := c.Next()
				if !ok {
					return "", io.EOF
				}
				text = strings.TrimLeft(line, " ")
				i = -1
			default:
				if st.jacoComment == 0 {
					sb.WriteByte(ch)
				}
			}
		default:
			if st.jacoComment == 0 {
				sb.WriteByte(ch)
			}
		}
	}
	return sb.String(), nil
}

func isASCIILetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
