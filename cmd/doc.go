package cmd

import (
	"github.com/sjzsdu/tdoc/lang"
	"github.com/spf13/cobra"
)

var docCmd = &cobra.Command{
	Use:   "doc <docId>",
	Short: lang.T("Show document info"),
	Long:  lang.T("Show version and link of a document in both languages, e.g. tdoc doc /commands/status.md"),
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := buildOptions(cmd)
		opts.ShowDoc = normalizeDocID(args[0])
		return runDoc(cmd.Context(), cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
}
