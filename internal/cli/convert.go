package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/subdemux/internal/subtitle"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert a subtitle file to SRT, VTT, ASS or TTML",
	Long: `Parse a subtitle file in any supported grammar and write it out in a
modern format. Cues without a stop time end where the next cue starts.

The output format follows --to, or the extension of --output.

Examples:
  subdemux convert movie.sub -o movie.srt --fps 23.976
  subdemux convert episode.ssa -t vtt
  subdemux convert talk.smi -o talk.ttml`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	addSessionFlags(convertCmd)
	convertCmd.Flags().
		StringP("output", "o", "", "Output file path")
	convertCmd.Flags().
		StringP("to", "t", "", "Output format (srt, vtt, ass, ttml)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")
	to, _ := cmd.Flags().GetString("to")

	format, outputPath, err := resolveOutput(inputPath, outputPath, to)
	if err != nil {
		return err
	}

	sub, err := openSubtitle(cmd.Context(), cmd, inputPath)
	if err != nil {
		return err
	}

	logger.Infow("Converting subtitles",
		"input", inputPath,
		"output", outputPath,
		"from", sub.Format.DisplayName(),
		"to", format,
		"cues", len(sub.Cues),
	)

	if err := subtitle.WriteFile(sub, format, outputPath); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles converted successfully: %s\n", absOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "  Entries: %d\n", len(sub.Cues))
	return nil
}

// picks the output format and path from whichever of them was given
func resolveOutput(inputPath, outputPath, to string) (subtitle.OutputFormat, string, error) {
	var format subtitle.OutputFormat
	switch strings.ToLower(to) {
	case "":
		if outputPath == "" {
			format = subtitle.OutputSRT
		} else {
			format = subtitle.GetOutputFormatFromExtension(outputPath)
		}
	case "srt":
		format = subtitle.OutputSRT
	case "vtt":
		format = subtitle.OutputVTT
	case "ass", "ssa":
		format = subtitle.OutputASS
	case "ttml", "dfxp":
		format = subtitle.OutputTTML
	default:
		return "", "", fmt.Errorf("unsupported output format %q: use srt, vtt, ass or ttml", to)
	}

	if outputPath == "" {
		baseName := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = baseName + subtitle.GetExtensionForOutputFormat(format)
	}
	if filepath.Clean(outputPath) == filepath.Clean(inputPath) {
		return "", "", fmt.Errorf("output would overwrite the input file: %s", inputPath)
	}
	return format, outputPath, nil
}
