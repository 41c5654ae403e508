package cmd

import (
	"strings"

	"github.com/sjzsdu/tdoc/config"
	"github.com/sjzsdu/tdoc/helper"
	"github.com/spf13/cobra"
)

// buildOptions 在配置文件和环境变量之上叠加命令行参数，只覆盖显式设置的参数
func buildOptions(cmd *cobra.Command) config.Options {
	return applyFlags(cmd, config.LoadOptions()).Normalize()
}

func applyFlags(cmd *cobra.Command, opts config.Options) config.Options {
	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}

	if changed("directory") {
		opts.RepoPath = workDir
	}
	if changed("repository") {
		opts.RepoURL = repoURL
	}
	if changed("target-lang") {
		opts.TargetLang = targetLang
	}
	if changed("backend") {
		opts.Backend = backend
	}
	if changed("workers") {
		opts.Workers = workers
	}
	if changed("renderer") {
		opts.Renderer = rendererType
	}
	if changed("match") {
		opts.Match = matchPattern
	}
	if changed("long-hash") {
		opts.LongHash = longHash
	}
	if changed("show-commands") {
		opts.ShowCommands = showCommands
	}
	if changed("only-show-commands") {
		opts.OnlyShowCommands = onlyCommands
	}
	if changed("progress") {
		opts.Progress = showProgress
	}
	if changed("show-doc") {
		opts.ShowDoc = normalizeDocID(showDoc)
	}
	return opts
}

// normalizeDocID 文档 ID 统一以 "/" 开头
func normalizeDocID(id string) string {
	return helper.StandardizePath(strings.TrimSpace(id))
}
