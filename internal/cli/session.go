package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mgpai22/subdemux/internal/config"
	"github.com/mgpai22/subdemux/internal/media"
	"github.com/mgpai22/subdemux/internal/subtitle"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// frame rate lookup for --video, replaced in tests
var frameRateProber = media.NewFrameRateProber(nil)

// registers the flags every parsing command shares
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().
		StringP(config.KeyFormat, "f", string(subtitle.FormatAuto), "Subtitle format, or auto to detect it")
	cmd.Flags().
		Float64(config.KeyFPS, 0, "Declared frame rate of the source")
	cmd.Flags().
		Float64(config.KeySubFPS, 0, "Force this frame rate over any declared one")
	cmd.Flags().
		Duration(config.KeyDelay, 0, "Shift every cue by this amount (e.g. 1.5s, -200ms)")
	cmd.Flags().
		StringP(config.KeyEncoding, "e", "", "Source character set (default: BOM sniffing, then UTF-8)")
	cmd.Flags().
		String(config.KeyVideo, "", "Companion video; its frame rate is used when --fps is not set")
}

// merges flags, environment and the config file for cmd
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}
	return config.Load(v, configFile)
}

// parses path with the session settings of cmd
func openSubtitle(ctx context.Context, cmd *cobra.Command, path string) (*subtitle.Subtitle, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if cfg.FPS == 0 && cfg.Video != "" {
		fps, err := frameRateProber.FrameRate(ctx, cfg.Video)
		if err != nil {
			return nil, fmt.Errorf("failed to read frame rate of %s: %w", cfg.Video, err)
		}
		logger.Infow("Using video frame rate",
			"video", cfg.Video,
			"fps", fps,
		)
		cfg.FPS = fps
	}

	logger.Debugw("Parsing subtitles",
		"input", path,
		"format", cfg.Format,
		"fps", cfg.FPS,
		"sub_fps", cfg.SubFPS,
		"delay", cfg.Delay.String(),
	)

	return subtitle.Open(ctx, path, cfg.Options(logger.SugaredLogger))
}

// h:mm:ss.mmm, or "?" for an unknown stop time
func formatClock(d time.Duration, open bool) string {
	if open {
		return "?"
	}
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%s%d:%02d:%02d.%03d", sign, hours, minutes, seconds, millis)
}
