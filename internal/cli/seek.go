package cli

import (
	"errors"
	"fmt"

	"github.com/mgpai22/subdemux/internal/subtitle"
	"github.com/spf13/cobra"
)

var seekCmd = &cobra.Command{
	Use:   "seek [subtitle_file]",
	Short: "Find the first cue at or after a point in time",
	Long: `Parse a subtitle file and look up the first cue starting at or after
a time (--at) or a fraction of the track length (--position).

Examples:
  subdemux seek movie.srt --at 1h2m
  subdemux seek movie.sub --position 0.5 --fps 25`,
	Args: cobra.ExactArgs(1),
	RunE: runSeek,
}

func init() {
	rootCmd.AddCommand(seekCmd)

	addSessionFlags(seekCmd)
	seekCmd.Flags().
		Duration("at", 0, "Time to seek to (e.g. 90s, 1h2m3s)")
	seekCmd.Flags().
		Float64("position", 0, "Fraction of the track length to seek to, 0 to 1")
	seekCmd.MarkFlagsMutuallyExclusive("at", "position")
	seekCmd.MarkFlagsOneRequired("at", "position")
}

func runSeek(cmd *cobra.Command, args []string) error {
	at, _ := cmd.Flags().GetDuration("at")
	position, _ := cmd.Flags().GetFloat64("position")
	byPosition := cmd.Flags().Changed("position")

	if byPosition && (position < 0 || position > 1) {
		return fmt.Errorf("position must be between 0 and 1, got %v", position)
	}

	sub, err := openSubtitle(cmd.Context(), cmd, args[0])
	if err != nil {
		return err
	}

	timeline := subtitle.NewTimeline(sub.Cues)
	if byPosition {
		err = timeline.SetPosition(position)
	} else {
		err = timeline.SetTime(at)
	}

	out := cmd.OutOrStdout()
	if errors.Is(err, subtitle.ErrNoMoreCues) {
		fmt.Fprintf(out, "no further cues (duration %s)\n", formatClock(timeline.Duration(), false))
		return nil
	}
	if err != nil {
		return err
	}

	index := timeline.Current()
	fraction := timeline.Position()
	cue, _ := timeline.Next()
	fmt.Fprintf(out, "%s(%.1f%% of %s)\n",
		formatCue(index, cue),
		100*fraction,
		formatClock(timeline.Duration(), false))
	return nil
}
