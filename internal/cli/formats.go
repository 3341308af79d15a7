package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/mgpai22/subdemux/internal/subtitle"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the subtitle formats that can be parsed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tFORMAT\tCODEC")
		for _, f := range subtitle.Formats() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", f, f.DisplayName(), f.Codec())
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
