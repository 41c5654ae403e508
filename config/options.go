package config

import (
	"path/filepath"
	"strconv"

	"github.com/sjzsdu/tdoc/helper"
	"github.com/sjzsdu/tdoc/share"
)

// Options 一次运行所需的全部配置
// 启动时由默认值、配置文件/环境变量和命令行参数依次合并而成，之后只读传递
type Options struct {
	RepoURL    string
	RepoPath   string
	DocDir     string
	OriginLang string
	TargetLang string
	Branch     string
	Backend    string
	Workers    int
	Renderer   string
	Theme      string
	LogFile    string

	LongHash         bool
	ShowCommands     bool
	OnlyShowCommands bool
	Match            string
	ShowDoc          string
	Progress         bool
}

// DefaultOptions 内置默认值
func DefaultOptions() Options {
	return Options{
		RepoURL:    share.DEFAULT_REPO_URL,
		RepoPath:   helper.GetPath(share.DEFAULT_REPO_DIR),
		DocDir:     share.DEFAULT_DOC_DIR,
		OriginLang: share.ORIGIN_LANG,
		TargetLang: share.TARGET_LANG,
		Branch:     share.DEFAULT_BRANCH,
		Backend:    "library",
		Workers:    1,
		Renderer:   share.DEFAULT_RENDERER,
		Theme:      share.DEFAULT_THEME,
	}
}

// LoadOptions 在默认值之上叠加配置文件和环境变量
func LoadOptions() Options {
	opts := DefaultOptions()
	opts.RepoURL = GetConfigWithDefault(KeyRepoURL, opts.RepoURL)
	opts.RepoPath = GetConfigWithDefault(KeyRepoPath, opts.RepoPath)
	opts.DocDir = GetConfigWithDefault(KeyDocDir, opts.DocDir)
	opts.OriginLang = GetConfigWithDefault(KeyOriginLang, opts.OriginLang)
	opts.TargetLang = GetConfigWithDefault(KeyTargetLang, opts.TargetLang)
	opts.Branch = GetConfigWithDefault(KeyBranch, opts.Branch)
	opts.Backend = GetConfigWithDefault(KeyGitBackend, opts.Backend)
	opts.Renderer = GetConfigWithDefault(KeyRenderer, opts.Renderer)
	opts.Theme = GetConfigWithDefault(KeyTheme, opts.Theme)
	opts.LogFile = GetConfig(KeyLogFile)
	if n, err := strconv.Atoi(GetConfig(KeyWorkers)); err == nil && n > 0 {
		opts.Workers = n
	}
	return opts
}

// Normalize 处理参数之间的隐含关系并展开路径
func (o Options) Normalize() Options {
	// 只看命令文档时必须显示命令章节
	if o.OnlyShowCommands {
		o.ShowCommands = true
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if abs, err := helper.GetAbsPath(o.RepoPath); err == nil {
		o.RepoPath = abs
	}
	if abs, err := helper.GetAbsPath(o.LogFile); err == nil && o.LogFile != "" {
		o.LogFile = abs
	}
	return o
}

// DocRoot 文档根目录的本地路径
func (o Options) DocRoot() string {
	return filepath.Join(o.RepoPath, filepath.FromSlash(o.DocDir))
}
