package subtitle

import (
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

// SAMI cue text is held in a fixed 8 KiB buffer; overflow is dropped
const samiTextLimit = 8 << 10

// searches for token in rest when have is set, then in the following lines,
// and returns whatever follows the token
func samiSearch(c *Cursor, rest string, have bool, token string) (string, bool) {
	if have {
		if i := indexFold(rest, token); i >= 0 {
			return rest[i+len(token):], true
		}
	}
	for {
		line, ok := c.Next()
		if !ok {
			return "", false
		}
		if i := indexFold(line, token); i >= 0 {
			return line[i+len(token):], true
		}
	}
}

// splits a leading signed decimal off s
func samiNumber(s string) (int64, string) {
	s = strings.TrimLeft(s, " \t")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return atoi64(s[:end]), s[end:]
}

func parseSAMI(c *Cursor, st *State, index int) (Cue, error) {
	rest, have := st.samiResume, st.samiPending
	st.samiResume, st.samiPending = "", false

	s, ok := samiSearch(c, rest, have, "Start=")
	if !ok {
		return Cue{}, io.EOF
	}
	start, s := samiNumber(s)

	if s, ok = samiSearch(c, s, true, "<P"); !ok {
		return Cue{}, io.EOF
	}
	if s, ok = samiSearch(c, s, true, ">"); !ok {
		return Cue{}, io.EOF
	}

	text := make([]byte, 0, 64)
	truncated := false
	for {
		for ok && s == "" {
			s, ok = c.Next()
		}
		if !ok {
			break
		}

		var ch byte
		if s[0] == '<' {
			if hasPrefixFold(s, "<br") {
				ch = '\n'
			} else if indexFold(s, "Start=") >= 0 {
				// the next cue resumes at this tag
				st.samiResume, st.samiPending = s, true
				break
			}
			s, ok = samiSearch(c, s, true, ">")
		} else if strings.HasPrefix(s, "&nbsp;") {
			ch = ' '
			s = s[len("&nbsp;"):]
		} else if s[0] == '\t' {
			ch = ' '
			s = s[1:]
		} else {
			ch = s[0]
			s = s[1:]
		}

		if ch == 0 {
			continue
		}
		if len(text)+1 < samiTextLimit {
			text = append(text, ch)
		} else {
			truncated = true
		}
	}

	if truncated {
		// never leave a partial rune behind the cut
		for len(text) > 0 && !utf8.Valid(text) {
			r, size := utf8.DecodeLastRune(text)
			if r != utf8.RuneError || size != 1 {
				break
			}
			text = text[:len(text)-1]
		}
	}

	return Cue{
		Start: time.Duration(start) * time.Millisecond,
		Text:  string(text),
	}, nil
}
