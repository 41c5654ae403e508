package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sjzsdu/tdoc/config"
	"github.com/sjzsdu/tdoc/helper"
	"github.com/sjzsdu/tdoc/lang"
	"github.com/sjzsdu/tdoc/report"
	"github.com/sjzsdu/tdoc/share"
	"github.com/sjzsdu/tdoc/status"
	"github.com/sjzsdu/tdoc/toc"
	"github.com/sjzsdu/tdoc/vcs"
)

// newSource 按配置创建带缓存的版本库查询
func newSource(opts config.Options) (vcs.Source, error) {
	src, err := vcs.NewSource(vcs.SourceType(opts.Backend))
	if err != nil {
		return nil, err
	}
	cached, err := vcs.NewCachedSource(src, vcs.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

// ensureRepository 本地没有仓库时先克隆
func ensureRepository(ctx context.Context, src vcs.Source, opts config.Options) error {
	if helper.IsGitRoot(opts.RepoPath) {
		return nil
	}
	fmt.Fprintf(os.Stderr, lang.T("Cloning %s into %s")+"\n", opts.RepoURL, opts.RepoPath)
	if err := os.MkdirAll(filepath.Dir(opts.RepoPath), 0755); err != nil {
		return fmt.Errorf("create repository parent: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, share.TIMEOUT)
	defer cancel()
	return src.Clone(ctx, opts.RepoURL, opts.RepoPath)
}

func prepare(ctx context.Context, opts config.Options) (vcs.Source, *toc.Tree, *toc.Tree, error) {
	src, err := newSource(opts)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := ensureRepository(ctx, src, opts); err != nil {
		return nil, nil, nil, err
	}
	manifest, err := toc.LoadManifest(opts.DocRoot())
	if err != nil {
		return nil, nil, nil, err
	}
	originTree, err := manifest.Tree(opts.OriginLang)
	if err != nil {
		return nil, nil, nil, err
	}
	targetTree, err := manifest.Tree(opts.TargetLang)
	if err != nil {
		return nil, nil, nil, err
	}
	helper.Logger().Debugw("manifest loaded", "file", manifest.File, "origin", opts.OriginLang, "target", opts.TargetLang)
	return src, originTree, targetTree, nil
}

// flatten 按参数展开两种语言的目录，只看命令文档时两侧都只取命令章节
func flatten(originTree, targetTree *toc.Tree, opts config.Options) (origin, target []toc.FlatEntry, err error) {
	if opts.OnlyShowCommands {
		origin = toc.FlattenSection(originTree, share.COMMANDS_SECTION)
		target = toc.FlattenSection(targetTree, share.COMMANDS_SECTION)
	} else {
		flatOpts := toc.FlattenOptions{ShowCommands: opts.ShowCommands}
		origin = toc.FlattenTree(originTree, flatOpts)
		target = toc.FlattenTree(targetTree, flatOpts)
	}
	origin, err = toc.Filter(origin, opts.Match)
	if err != nil {
		return nil, nil, err
	}
	return origin, target, nil
}

func runStatus(ctx context.Context, w io.Writer, opts config.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	src, originTree, targetTree, err := prepare(ctx, opts)
	if err != nil {
		return err
	}
	origin, target, err := flatten(originTree, targetTree, opts)
	if err != nil {
		return err
	}
	comparator := status.NewComparator(src, opts)
	var progress *helper.Progress
	if opts.Progress {
		progress = helper.NewProgress(os.Stderr, lang.T("Comparing"), len(origin))
		comparator.OnRow = progress.Increment
	}
	rows, err := comparator.Compare(ctx, origin, target)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return err
	}
	renderer, err := report.NewRenderer(report.RendererType(opts.Renderer), opts.Theme)
	if err != nil {
		return err
	}
	if err := renderer.Status(w, rows); err != nil {
		return err
	}
	return report.WriteHint(w)
}

func runDoc(ctx context.Context, w io.Writer, opts config.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	src, originTree, targetTree, err := prepare(ctx, opts)
	if err != nil {
		return err
	}
	infos, err := status.NewComparator(src, opts).Lookup(ctx, originTree, targetTree, opts.ShowDoc)
	if err != nil {
		return err
	}
	renderer, err := report.NewRenderer(report.RendererType(opts.Renderer), opts.Theme)
	if err != nil {
		return err
	}
	return renderer.DocInfo(w, infos)
}
