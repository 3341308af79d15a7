package subtitle

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSRTWriterResolvesOpenCues(t *testing.T) {
	sub := &Subtitle{
		Format: FormatVPlayer,
		Cues: []Cue{
			{Start: time.Second, Text: "A"},
			{Start: 3 * time.Second, Text: "B|C"},
		},
	}

	var buf bytes.Buffer
	if err := (&SRTWriter{}).Write(sub, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "1\n00:00:01,000 --> 00:00:03,000\nA\n\n" +
		"2\n00:00:03,000 --> 00:00:05,000\nB|C\n\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestVTTWriter(t *testing.T) {
	sub := &Subtitle{
		Format: FormatSubRip,
		Cues:   []Cue{{Start: 61 * time.Second, Stop: 62500 * time.Millisecond, Text: "Hello\nthere\n"}},
	}

	var buf bytes.Buffer
	if err := (&VTTWriter{}).Write(sub, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "WEBVTT\n\n1\n00:01:01.000 --> 00:01:02.500\nHello\nthere\n\n"
	if buf.String() != want {
		t.Errorf("got:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestASSWriter(t *testing.T) {
	t.Run("keeps ssa header", func(t *testing.T) {
		sub := &Subtitle{
			Format: FormatASS,
			Header: "[Script Info]\nScriptType: v4.00+\n\n[Events]\n",
			Cues: []Cue{
				{Start: time.Second, Stop: 2 * time.Second, Text: `0,0,Default,,0,0,0,,{\b1}Hi\Nthere`},
			},
		}
		writer, err := NewWriter(OutputASS)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var buf bytes.Buffer
		if err := writer.Write(sub, &buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := buf.String()
		if !strings.HasPrefix(got, sub.Header) {
			t.Errorf("header not preserved:\n%s", got)
		}
		if !strings.Contains(got, `Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Hi\Nthere`) {
			t.Errorf("dialogue missing:\n%s", got)
		}
	})

	t.Run("builds header for other formats", func(t *testing.T) {
		sub := &Subtitle{
			Format: FormatMicroDVD,
			Cues:   []Cue{{Start: time.Second, Stop: 2 * time.Second, Text: "One\nTwo"}},
		}
		var buf bytes.Buffer
		if err := (&ASSWriter{Title: "t", FontName: "Arial", FontSize: 20}).Write(sub, &buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := buf.String()
		if !strings.Contains(got, "[V4+ Styles]") {
			t.Errorf("styles section missing:\n%s", got)
		}
		if !strings.Contains(got, `,Default,,0,0,0,,One\NTwo`) {
			t.Errorf("dialogue missing:\n%s", got)
		}
	})
}

func TestTTMLWriter(t *testing.T) {
	sub := &Subtitle{
		Format: FormatSubRip,
		Cues: []Cue{
			{Start: time.Second, Stop: 2 * time.Second, Text: "Hello\nWorld\n"},
			{Start: 3 * time.Second, Stop: 4 * time.Second, Text: "Bye\n"},
		},
	}

	var buf bytes.Buffer
	if err := (&TTMLWriter{}).Write(sub, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := buf.String()
	for _, want := range []string{"<tt", "Hello", "World", "Bye"} {
		if !strings.Contains(got, want) {
			t.Errorf("TTML output missing %q:\n%s", want, got)
		}
	}
}

func TestWriteFile(t *testing.T) {
	sub := &Subtitle{
		Format: FormatMPL2,
		Cues:   []Cue{{Start: time.Second, Stop: 2 * time.Second, Text: "Hi"}},
	}
	path := filepath.Join(t.TempDir(), "nested", "out.srt")

	if err := WriteFile(sub, OutputSRT, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "1\n00:00:01,000 --> 00:00:02,000\nHi\n") {
		t.Errorf("unexpected output:\n%s", data)
	}

	if err := WriteFile(sub, OutputFormat("sbv"), path); err == nil {
		t.Error("expected error for unsupported format")
	}
}

type closeRecorder struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.closeErr
}

func TestWriteAndCloseReportsCloseError(t *testing.T) {
	sub := &Subtitle{
		Format: FormatMPL2,
		Cues:   []Cue{{Start: time.Second, Stop: 2 * time.Second, Text: "Hi"}},
	}

	t.Run("close error surfaces", func(t *testing.T) {
		dst := &closeRecorder{closeErr: errors.New("disk full")}
		err := writeAndClose(&SRTWriter{}, sub, dst)
		if err == nil || !strings.Contains(err.Error(), "disk full") {
			t.Fatalf("expected close error, got %v", err)
		}
		if !dst.closed {
			t.Error("destination was not closed")
		}
	})

	t.Run("clean close", func(t *testing.T) {
		dst := &closeRecorder{}
		if err := writeAndClose(&SRTWriter{}, sub, dst); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !dst.closed {
			t.Error("destination was not closed")
		}
		if !strings.HasPrefix(dst.String(), "1\n00:00:01,000 --> 00:00:02,000\nHi\n") {
			t.Errorf("unexpected output:\n%s", dst.String())
		}
	})
}

func TestOutputFormatExtensions(t *testing.T) {
	tests := []struct {
		path string
		want OutputFormat
	}{
		{"a.srt", OutputSRT},
		{"a.VTT", OutputVTT},
		{"a.ssa", OutputASS},
		{"a.ass", OutputASS},
		{"a.ttml", OutputTTML},
		{"a.dfxp", OutputTTML},
		{"a.txt", OutputSRT},
	}
	for _, tt := range tests {
		if got := GetOutputFormatFromExtension(tt.path); got != tt.want {
			t.Errorf("GetOutputFormatFromExtension(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}

	for _, f := range []OutputFormat{OutputSRT, OutputVTT, OutputASS, OutputTTML} {
		if got := GetOutputFormatFromExtension("x" + GetExtensionForOutputFormat(f)); got != f {
			t.Errorf("extension round trip for %s gave %s", f, got)
		}
	}
}

func TestClockFormatting(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		srt  string
		vtt  string
		ass  string
	}{
		{"zero", 0, "00:00:00,000", "00:00:00.000", "0:00:00.00"},
		{"negative clamps", -time.Second, "00:00:00,000", "00:00:00.000", "0:00:00.00"},
		{"sub-second", 1234 * time.Millisecond, "00:00:01,234", "00:00:01.234", "0:00:01.23"},
		{"hours", 2*time.Hour + 3*time.Minute + 4*time.Second + 56*time.Millisecond,
			"02:03:04,056", "02:03:04.056", "2:03:04.05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSRTTime(tt.d); got != tt.srt {
				t.Errorf("srt: got %q, want %q", got, tt.srt)
			}
			if got := formatVTTTime(tt.d); got != tt.vtt {
				t.Errorf("vtt: got %q, want %q", got, tt.vtt)
			}
			if got := formatASSTime(tt.d); got != tt.ass {
				t.Errorf("ass: got %q, want %q", got, tt.ass)
			}
		})
	}
}
