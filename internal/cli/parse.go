package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mgpai22/subdemux/internal/subtitle"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [subtitle_file]",
	Short: "Parse a subtitle file and print its cues",
	Long: `Parse a subtitle file into timed cues and print them.

The format is detected automatically unless --format is given. Frame based
formats (MicroDVD, JacoSub, MPSub) use --fps, the rate of --video, or the
rate declared inside the file, and --sub-fps forces a rate over all of them.

Examples:
  subdemux parse movie.srt
  subdemux parse movie.sub --video movie.avi
  subdemux parse episode.ass --header --json
  subdemux parse old.txt -f mpl2 --delay -1.2s`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	addSessionFlags(parseCmd)
	parseCmd.Flags().
		Bool("json", false, "Print the result as JSON")
	parseCmd.Flags().
		Bool("header", false, "Also print the script header of SSA/ASS files")
}

func runParse(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	withHeader, _ := cmd.Flags().GetBool("header")

	sub, err := openSubtitle(cmd.Context(), cmd, args[0])
	if err != nil {
		return err
	}

	logger.Infow("Parsed subtitles",
		"input", args[0],
		"format", sub.Format.DisplayName(),
		"cues", len(sub.Cues),
	)

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), sub, withHeader)
	}
	return writeListing(cmd.OutOrStdout(), sub, withHeader)
}

type cueJSON struct {
	Index   int    `json:"index"`
	StartUS int64  `json:"start_us"`
	StopUS  int64  `json:"stop_us"`
	Text    string `json:"text"`
}

type subtitleJSON struct {
	Format     string    `json:"format"`
	Codec      string    `json:"codec"`
	DurationUS int64     `json:"duration_us"`
	Header     string    `json:"header,omitempty"`
	Cues       []cueJSON `json:"cues"`
}

func writeJSON(w io.Writer, sub *subtitle.Subtitle, withHeader bool) error {
	doc := subtitleJSON{
		Format:     string(sub.Format),
		Codec:      sub.Format.Codec(),
		DurationUS: subtitle.NewTimeline(sub.Cues).Duration().Microseconds(),
		Cues:       make([]cueJSON, len(sub.Cues)),
	}
	if withHeader {
		doc.Header = sub.Header
	}
	for i, cue := range sub.Cues {
		doc.Cues[i] = cueJSON{
			Index:   i,
			StartUS: cue.Start.Microseconds(),
			StopUS:  cue.Stop.Microseconds(),
			Text:    cue.Text,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeListing(w io.Writer, sub *subtitle.Subtitle, withHeader bool) error {
	var sb strings.Builder
	if withHeader && sub.Header != "" {
		sb.WriteString(sub.Header)
		sb.WriteString("\n")
	}
	for i, cue := range sub.Cues {
		sb.WriteString(formatCue(i, cue))
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// index and timing line followed by the text
func formatCue(index int, cue subtitle.Cue) string {
	return fmt.Sprintf("#%d %s --> %s\n%s\n",
		index,
		formatClock(cue.Start, false),
		formatClock(cue.Stop, cue.Stop <= 0),
		strings.TrimRight(cue.Text, "\n"))
}
