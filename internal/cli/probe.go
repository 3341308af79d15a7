package cli

import (
	"fmt"
	"os"

	"github.com/mgpai22/subdemux/internal/charset"
	"github.com/mgpai22/subdemux/internal/config"
	"github.com/mgpai22/subdemux/internal/subtitle"
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe [subtitle_file...]",
	Short: "Detect the format of subtitle files",
	Long: `Detect which subtitle grammar each file follows by inspecting its first lines.

Examples:
  subdemux probe movie.sub
  subdemux probe *.txt --encoding windows-1250`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)

	probeCmd.Flags().
		StringP(config.KeyEncoding, "e", "", "Source character set (default: BOM sniffing, then UTF-8)")
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range args {
		format, err := probeFile(path, cfg.Encoding)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(out, "%s: %v\n", path, err)
		case format == subtitle.FormatUnknown:
			failed++
			fmt.Fprintf(out, "%s: unrecognized format\n", path)
		default:
			fmt.Fprintf(out, "%s: %s\n", path, format.DisplayName())
		}
		logger.Debugw("Probed file", "input", path, "format", format)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files not recognized", failed, len(args))
	}
	return nil
}

func probeFile(path, encoding string) (subtitle.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return subtitle.FormatUnknown, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	r, err := charset.NewReader(file, encoding)
	if err != nil {
		return subtitle.FormatUnknown, err
	}

	cursor, err := subtitle.Load(r)
	if err != nil {
		return subtitle.FormatUnknown, err
	}
	return subtitle.Probe(cursor), nil
}
