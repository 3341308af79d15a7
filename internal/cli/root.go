package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/mgpai22/subdemux/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configFile string
	logger     *logging.Logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "subdemux",
	Short: "Parse and convert legacy text subtitle formats",
	Long: `Subdemux reads text subtitles in any of the legacy grammars
(MicroDVD, SubRip, SubViewer, SSA/ASS, VPlayer, SAMI, DVDSubtitle, MPL2,
AQT, PJS, MPSub, JacoSub), detects the format when it is not given and
turns the file into a timed cue list.

Session settings can come from flags, a config file (--config) or
SUBDEMUX_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")
}
