package subtitle

import (
	"fmt"
)

// Parser reads exactly one cue per call from the cursor, leaving it
// positioned after the consumed lines. Lines that match no cue pattern are
// discarded and scanning continues; io.EOF ends the session.
type Parser interface {
	ParseCue(c *Cursor, st *State, index int) (Cue, error)
}

// adapts a plain function to the Parser interface
type ParserFunc func(c *Cursor, st *State, index int) (Cue, error)

func (f ParserFunc) ParseCue(c *Cursor, st *State, index int) (Cue, error) {
	return f(c, st, index)
}

// selects the reader for a grammar
func NewParser(format Format) (Parser, error) {
	switch format {
	case FormatMicroDVD:
		return ParserFunc(parseMicroDVD), nil
	case FormatSubRip:
		return ParserFunc(parseSubRip), nil
	case FormatSubViewer:
		return ParserFunc(parseSubViewer), nil
	case FormatSSA1, FormatSSA2to4, FormatASS:
		return &ssaParser{dialect: format}, nil
	case FormatVPlayer:
		return ParserFunc(parseVPlayer), nil
	case FormatSAMI:
		return ParserFunc(parseSAMI), nil
	case FormatDVDSubtitle:
		return ParserFunc(parseDVDSubtitle), nil
	case FormatMPL2:
		return ParserFunc(parseMPL2), nil
	case FormatAQT:
		return ParserFunc(parseAQT), nil
	case FormatPJS:
		return ParserFunc(parsePJS), nil
	case FormatMPSub:
		return ParserFunc(parseMPSub), nil
	case FormatJacoSub:
		return ParserFunc(parseJacoSub), nil
	default:
		return nil, fmt.Errorf("%w: no parser for %q", ErrUnrecognizedFormat, format)
	}
}
