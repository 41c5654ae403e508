package cmd

import (
	"fmt"

	"github.com/sjzsdu/tdoc/lang"
	"github.com/sjzsdu/tdoc/share"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: lang.T("Print version information"),
	Long:  lang.T("Print detailed version information of tdoc"),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", lang.T("tdoc version"), share.VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
