package cmd

import (
	"fmt"

	"github.com/sjzsdu/tdoc/lang"
	"github.com/sjzsdu/tdoc/toc"
	"github.com/spf13/cobra"
)

var tocCmd = &cobra.Command{
	Use:   "toc [lang...]",
	Short: lang.T("Show the table of contents"),
	Long:  lang.T("Print the manifest tree of the given languages, all languages when none is given"),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := buildOptions(cmd)
		src, err := newSource(opts)
		if err != nil {
			return err
		}
		if err := ensureRepository(cmd.Context(), src, opts); err != nil {
			return err
		}
		manifest, err := toc.LoadManifest(opts.DocRoot())
		if err != nil {
			return err
		}
		langs := args
		if len(langs) == 0 {
			langs = manifest.Languages()
		}
		out := cmd.OutOrStdout()
		for _, l := range langs {
			tree, err := manifest.Tree(l)
			if err != nil {
				return err
			}
			fmt.Fprint(out, tree.String())
			fmt.Fprintln(out, tree.Stats())
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tocCmd)
}
