package subtitle

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// building blocks for the line patterns; an integer field tolerates
// leading blanks and a sign the way a %d conversion does
const (
	intField   = `\s*([+-]?\d+)`
	floatField = `\s*([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`
)

// compiles a pattern assembled from fragments, anchored at line start
func linePattern(parts ...string) *regexp.Regexp {
	return regexp.MustCompile("^" + strings.Join(parts, ""))
}

func atoi64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

// parses the leading integer of s and ignores the rest, 0 when absent
func leadingInt(s string) int64 {
	s = strings.TrimLeft(s, " \t")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return atoi64(s[:end])
}

// parses the leading decimal number of s, 0 when absent
func leadingFloat(s string) float64 {
	m := leadingFloatRegex.FindString(s)
	if m == "" {
		return 0
	}
	f, _ := strconv.ParseFloat(strings.TrimSpace(m), 64)
	return f
}

var leadingFloatRegex = linePattern(floatField)

// clock fields to a duration; frac is scaled by unit
func clock(h, m, s, frac string, unit time.Duration) time.Duration {
	return time.Duration(atoi64(h))*time.Hour +
		time.Duration(atoi64(m))*time.Minute +
		time.Duration(atoi64(s))*time.Second +
		time.Duration(atoi64(frac))*unit
}

// case-insensitive strings.Index
func indexFold(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
