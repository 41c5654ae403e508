package cmd

import (
	"fmt"
	"os"

	"github.com/sjzsdu/tdoc/config"
	"github.com/sjzsdu/tdoc/helper"
	"github.com/sjzsdu/tdoc/lang"
	"github.com/sjzsdu/tdoc/share"
	"github.com/spf13/cobra"
)

var RootCmd = rootCmd

var rootCmd = &cobra.Command{
	Use:   share.BUILDNAME,
	Short: lang.T("Documentation translation status"),
	Long:  lang.T("Compare translated documents with the source language and show which ones are outdated"),
	Args:  cobra.NoArgs,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := buildOptions(cmd)
		if opts.ShowDoc != "" {
			return runDoc(cmd.Context(), cmd.OutOrStdout(), opts)
		}
		return runStatus(cmd.Context(), cmd.OutOrStdout(), opts)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&workDir, "directory", "d", "", lang.T("Local repository path"))
	flags.StringVarP(&repoURL, "repository", "r", "", lang.T("Git repository URL to clone"))
	flags.BoolVarP(&debugMode, "debug", "v", false, lang.T("Debug mode"))
	flags.StringVarP(&targetLang, "target-lang", "t", share.TARGET_LANG, lang.T("The language to be translated"))
	flags.BoolVarP(&longHash, "long-hash", "L", false, lang.T("Display the full commit hash"))
	flags.StringVar(&backend, "backend", "", lang.T("Git backend: library or command"))
	flags.IntVar(&workers, "workers", 0, lang.T("Number of concurrent status workers"))
	flags.StringVar(&matchPattern, "match", "", lang.T("Only show documents whose path matches the glob pattern"))
	flags.StringVar(&rendererType, "renderer", "", lang.T("Output format: text or markdown"))
	flags.BoolVar(&showProgress, "progress", false, lang.T("Show comparison progress on stderr"))

	rootCmd.Flags().BoolVarP(&showCommands, "show-commands", "a", false, lang.T("Display the full document list"))
	rootCmd.Flags().BoolVarP(&onlyCommands, "only-show-commands", "c", false, lang.T("Display only the commands documents"))
	rootCmd.Flags().StringVarP(&showDoc, "show-doc", "s", "", lang.T("Show document info"))

	// 设置全局 debug 模式
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		share.SetDebug(debugMode)
		logFile := config.GetConfig(config.KeyLogFile)
		if abs, err := helper.GetAbsPath(logFile); err == nil && logFile != "" {
			logFile = abs
		}
		helper.SetLogFile(logFile)
	}
}
