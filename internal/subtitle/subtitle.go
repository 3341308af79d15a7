package subtitle

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// zero lines were loaded from the source
	ErrEmptyInput = errors.New("subtitle: empty input")
	// probing found no signature, or a format name is not known
	ErrUnrecognizedFormat = errors.New("subtitle: unrecognized format")
	// a timeline query landed past the last cue
	ErrNoMoreCues = errors.New("subtitle: no further cues")
)

// represents single timed text entry
type Cue struct {
	Start time.Duration
	// zero when the grammar carries no stop time
	Stop time.Duration
	Text string
}

// represents a fully parsed subtitle track
type Subtitle struct {
	Cues   []Cue
	Format Format
	// verbatim non-dialogue script text, SSA family only
	Header string
}

// represents supported subtitle grammars
type Format string

const (
	FormatUnknown     Format = "unknown"
	FormatMicroDVD    Format = "microdvd"
	FormatSubRip      Format = "subrip"
	FormatSubViewer   Format = "subviewer"
	FormatSSA1        Format = "ssa1"
	FormatSSA2to4     Format = "ssa2-4"
	FormatASS         Format = "ass"
	FormatVPlayer     Format = "vplayer"
	FormatSAMI        Format = "sami"
	FormatDVDSubtitle Format = "dvdsubtitle"
	FormatMPL2        Format = "mpl2"
	FormatAQT         Format = "aqt"
	FormatPJS         Format = "pjs"
	FormatMPSub       Format = "mpsub"
	FormatJacoSub     Format = "jacosub"
)

// name accepted wherever a format may be selected explicitly
const FormatAuto = "auto"

var formats = []Format{
	FormatMicroDVD,
	FormatSubRip,
	FormatSubViewer,
	FormatSSA1,
	FormatSSA2to4,
	FormatASS,
	FormatVPlayer,
	FormatSAMI,
	FormatDVDSubtitle,
	FormatMPL2,
	FormatAQT,
	FormatPJS,
	FormatMPSub,
	FormatJacoSub,
}

var displayNames = map[Format]string{
	FormatMicroDVD:    "MicroDVD",
	FormatSubRip:      "SubRIP",
	FormatSubViewer:   "SubViewer",
	FormatSSA1:        "SSA-1",
	FormatSSA2to4:     "SSA-2/3/4",
	FormatASS:         "SSA/ASS",
	FormatVPlayer:     "VPlayer",
	FormatSAMI:        "SAMI",
	FormatDVDSubtitle: "DVDSubtitle",
	FormatMPL2:        "MPL2",
	FormatAQT:         "AQTitle",
	FormatPJS:         "PhoenixSub",
	FormatMPSub:       "MPSub",
	FormatJacoSub:     "JacoSub",
}

// all known grammars, in selection-table order
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// resolves a format name; "auto" and "" resolve to FormatUnknown
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == FormatAuto {
		return FormatUnknown, nil
	}
	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, name)
}

// human readable grammar name
func (f Format) DisplayName() string {
	if name, ok := displayNames[f]; ok {
		return name
	}
	return "Unknown"
}

// reports whether f belongs to the SubStation Alpha family
func (f Format) IsSSA() bool {
	return f == FormatSSA1 || f == FormatSSA2to4 || f == FormatASS
}

// elementary stream codec tag a renderer expects for this grammar
func (f Format) Codec() string {
	if f.IsSSA() {
		return "ssa"
	}
	return "subt"
}
