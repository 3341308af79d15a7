package subtitle

// number of lines inspected before giving up
const probeLineLimit = 256

// signature recognises one grammar from a single line. A weak signature only
// records a tentative result; scanning goes on and a later strong match wins.
type signature struct {
	format Format
	weak   bool
	match  func(line string) bool
}

var (
	probeMicroDVDRegex = linePattern(`\{`, intField, `\}\{(`, intField, `)?\}`)
	probeJacoClock     = linePattern(intField, `:`, intField, `:`, intField, `\.`, intField, `\s+`, intField, `:`, intField, `:`, intField)
	probeJacoFrames    = linePattern(`@`, intField, `\s*@`, intField)
	probeVPlayerRegex  = linePattern(intField, `:`, intField, `:`, intField)
	probeMPL2Regex     = linePattern(`\[`, intField, `\]\[(`, intField, `)?\]`)
	probeMPSubRegex    = linePattern(`FORMAT=(?:`, intField, `|TIME)`)
	probePJSRegex      = linePattern(intField, `,`, intField, `,"`)
)

// Order matters: the first matching row decides a line, and patterns
// overlap between grammars.
var signatures = []signature{
	{FormatSAMI, false, func(s string) bool { return indexFold(s, "<SAMI>") >= 0 }},
	{FormatMicroDVD, false, probeMicroDVDRegex.MatchString},
	{FormatSubRip, false, subRipTimingRegex.MatchString},
	{FormatSSA1, false, func(s string) bool { return hasPrefixFold(s, "!: This is a Sub Station Alpha v1") }},
	{FormatASS, false, func(s string) bool { return hasPrefixFold(s, "ScriptType: v4.00+") }},
	{FormatSSA2to4, false, func(s string) bool { return hasPrefixFold(s, "ScriptType: v4.00") }},
	{FormatSSA2to4, false, func(s string) bool { return hasPrefixFold(s, "Dialogue: Marked") }},
	{FormatASS, false, func(s string) bool { return hasPrefixFold(s, "Dialogue:") }},
	{FormatSubViewer, false, func(s string) bool { return indexFold(s, "[INFORMATION]") >= 0 }},
	{FormatJacoSub, true, func(s string) bool { return probeJacoClock.MatchString(s) || probeJacoFrames.MatchString(s) }},
	{FormatVPlayer, false, probeVPlayerRegex.MatchString},
	{FormatDVDSubtitle, false, dvdSubtitleRegex.MatchString},
	{FormatMPL2, false, probeMPL2Regex.MatchString},
	{FormatMPSub, true, probeMPSubRegex.MatchString},
	{FormatAQT, true, aqtMarkerRegex.MatchString},
	{FormatPJS, true, probePJSRegex.MatchString},
}

// Probe guesses the grammar from the first lines of c and rewinds it.
// FormatUnknown means no signature matched.
func Probe(c *Cursor) Format {
	defer c.Rewind()

	result := FormatUnknown
	for i := 0; i < probeLineLimit; i++ {
		line, ok := c.Next()
		if !ok {
			break
		}
		sig, found := matchSignature(line)
		if !found {
			continue
		}
		result = sig.format
		if !sig.weak {
			break
		}
	}
	return result
}

func matchSignature(line string) (signature, bool) {
	for _, sig := range signatures {
		if sig.match(line) {
			return sig, true
		}
	}
	return signature{}, false
}

// ProbeText is Probe over an in-memory document.
func ProbeText(text string) Format {
	c, err := NewCursor(splitLines(text))
	if err != nil {
		return FormatUnknown
	}
	return Probe(c)
}
