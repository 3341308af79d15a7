package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/asticode/go-astisub"
)

// represents export formats
type OutputFormat string

const (
	OutputSRT  OutputFormat = "srt"
	OutputVTT  OutputFormat = "vtt"
	OutputASS  OutputFormat = "ass"
	OutputTTML OutputFormat = "ttml"
)

// cues without a stop time are shown this long when nothing follows them
const openCueDuration = 2 * time.Second

// interface for writing subtitles out
type Writer interface {
	Write(sub *Subtitle, w io.Writer) error
}

// SubRip format
type SRTWriter struct{}

// WebVTT format
type VTTWriter struct{}

// Advanced SubStation Alpha format
type ASSWriter struct {
	Title    string
	FontName string
	FontSize int
}

// Timed Text Markup Language, rendered by go-astisub
type TTMLWriter struct{}

func NewWriter(format OutputFormat) (Writer, error) {
	switch format {
	case OutputSRT:
		return &SRTWriter{}, nil
	case OutputVTT:
		return &VTTWriter{}, nil
	case OutputASS:
		return &ASSWriter{
			Title:    "subdemux export",
			FontName: "Arial",
			FontSize: 20,
		}, nil
	case OutputTTML:
		return &TTMLWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// writes sub to path with the writer for format
func WriteFile(sub *Subtitle, format OutputFormat, path string) error {
	writer, err := NewWriter(format)
	if err != nil {
		return err
	}
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	return writeAndClose(writer, sub, file)
}

// a close failure is reported when the write itself succeeded
func writeAndClose(writer Writer, sub *Subtitle, dst io.WriteCloser) (err error) {
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	buf := bufio.NewWriter(dst)
	if err := writer.Write(sub, buf); err != nil {
		return err
	}
	return buf.Flush()
}

// display text and resolved timing of each cue
type exportCue struct {
	start time.Duration
	end   time.Duration
	text  string
}

func exportCues(sub *Subtitle) []exportCue {
	out := make([]exportCue, len(sub.Cues))
	for i, cue := range sub.Cues {
		out[i] = exportCue{
			start: cue.Start,
			end:   resolveStop(sub.Cues, i),
			text:  PlainText(sub.Format, cue.Text),
		}
	}
	return out
}

// open-ended cues run until the next cue starts
func resolveStop(cues []Cue, i int) time.Duration {
	if cues[i].Stop > cues[i].Start {
		return cues[i].Stop
	}
	if i+1 < len(cues) && cues[i+1].Start > cues[i].Start {
		return cues[i+1].Start
	}
	return cues[i].Start + openCueDuration
}

// writes the subtitle as SRT
func (w *SRTWriter) Write(sub *Subtitle, out io.Writer) error {
	var sb strings.Builder
	for i, cue := range exportCues(sub) {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTime(cue.start),
			formatSRTTime(cue.end)))

		sb.WriteString(cue.text)
		sb.WriteString("\n\n")
	}
	_, err := io.WriteString(out, sb.String())
	return err
}

// writes the subtitle as WebVTT
func (w *VTTWriter) Write(sub *Subtitle, out io.Writer) error {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")

	for i, cue := range exportCues(sub) {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatVTTTime(cue.start),
			formatVTTTime(cue.end)))

		sb.WriteString(cue.text)
		sb.WriteString("\n\n")
	}
	_, err := io.WriteString(out, sb.String())
	return err
}

// writes the subtitle as ASS; an SSA source keeps its own header
func (w *ASSWriter) Write(sub *Subtitle, out io.Writer) error {
	var sb strings.Builder

	if sub.Format.IsSSA() && sub.Header != "" {
		sb.WriteString(sub.Header)
	} else {
		sb.WriteString(w.defaultHeader())
	}

	for _, cue := range exportCues(sub) {
		sb.WriteString(fmt.Sprintf("Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
			formatASSTime(cue.start),
			formatASSTime(cue.end),
			escapeASSText(cue.text)))
	}

	_, err := io.WriteString(out, sb.String())
	return err
}

// script header for sources that carry none of their own
func (w *ASSWriter) defaultHeader() string {
	lines := []string{
		"[Script Info]",
		"Title: " + w.Title,
		"ScriptType: v4.00+",
		"WrapStyle: 0",
		"ScaledBorderAndShadow: yes",
		"",
		"[V4+ Styles]",
		"Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, " +
			"Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, " +
			"Shadow, Alignment, MarginL, MarginR, MarginV, Encoding",
		fmt.Sprintf("Style: Default,%s,%d,&H00FFFFFF,&H000000FF,&H00000000,&H80000000,"+
			"0,0,0,0,100,100,0,0,1,2,1,2,10,10,10,1", w.FontName, w.FontSize),
		"",
		"[Events]",
		"Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text",
	}
	return strings.Join(lines, "\n") + "\n"
}

// writes the subtitle as TTML
func (w *TTMLWriter) Write(sub *Subtitle, out io.Writer) error {
	doc := astisub.NewSubtitles()
	for _, cue := range exportCues(sub) {
		item := &astisub.Item{
			StartAt: cue.start,
			EndAt:   cue.end,
		}
		for _, line := range strings.Split(cue.text, "\n") {
			item.Lines = append(item.Lines, astisub.Line{
				Items: []astisub.LineItem{{Text: line}},
			})
		}
		doc.Items = append(doc.Items, item)
	}
	if err := doc.WriteToTTML(out); err != nil {
		return fmt.Errorf("failed to write TTML: %w", err)
	}
	return nil
}

// h:mm:ss split from d, with the sub-second remainder in the given unit
func clockParts(d time.Duration, unit time.Duration) (h, m, sec, frac int64) {
	if d < 0 {
		d = 0
	}
	h = int64(d / time.Hour)
	m = int64(d/time.Minute) % 60
	sec = int64(d/time.Second) % 60
	frac = int64(d%time.Second) / int64(unit)
	return h, m, sec, frac
}

// 00:00:01,000 for SRT, 00:00:01.000 for VTT
func formatMillisTime(d time.Duration, sep byte) string {
	h, m, sec, ms := clockParts(d, time.Millisecond)
	return fmt.Sprintf("%02d:%02d:%02d%c%03d", h, m, sec, sep, ms)
}

func formatSRTTime(d time.Duration) string {
	return formatMillisTime(d, ',')
}

func formatVTTTime(d time.Duration) string {
	return formatMillisTime(d, '.')
}

// 0:00:01.00, centiseconds
func formatASSTime(d time.Duration) string {
	h, m, sec, cs := clockParts(d, 10*time.Millisecond)
	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, sec, cs)
}

func escapeASSText(text string) string {
	text = strings.ReplaceAll(text, "\n", "\\N")
	return text
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// output format based on file extension
func GetOutputFormatFromExtension(path string) OutputFormat {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return OutputSRT
	case ".vtt":
		return OutputVTT
	case ".ass", ".ssa":
		return OutputASS
	case ".ttml", ".xml", ".dfxp":
		return OutputTTML
	default:
		return OutputSRT
	}
}

// file extension for an output format
func GetExtensionForOutputFormat(format OutputFormat) string {
	switch format {
	case OutputSRT:
		return ".srt"
	case OutputVTT:
		return ".vtt"
	case OutputASS:
		return ".ass"
	case OutputTTML:
		return ".ttml"
	default:
		return ".srt"
	}
}
