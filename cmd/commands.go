package cmd

import (
	"github.com/sjzsdu/tdoc/lang"
	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: lang.T("Show the commands documents"),
	Long:  lang.T("Show the translation status of the commands section only"),
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := buildOptions(cmd)
		opts.OnlyShowCommands = true
		return runStatus(cmd.Context(), cmd.OutOrStdout(), opts.Normalize())
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
