package status

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/sjzsdu/tdoc/config"
	"github.com/sjzsdu/tdoc/helper"
	"github.com/sjzsdu/tdoc/helper/coroutine"
	"github.com/sjzsdu/tdoc/share"
	"github.com/sjzsdu/tdoc/toc"
	"github.com/sjzsdu/tdoc/vcs"
)

// Comparator 根据文件系统和版本库计算每篇文档的状态
type Comparator struct {
	Source  vcs.Source
	Options config.Options
	// OnRow 每算完一行调用一次，可能被多个协程同时调用
	OnRow func()
}

// NewComparator 创建对比器
func NewComparator(src vcs.Source, opts config.Options) *Comparator {
	return &Comparator{Source: src, Options: opts}
}

// Compare 为 origin 中的每个条目生成一行，顺序与 origin 一致
// 任意一行出错时返回第一个错误，不返回部分结果
func (c *Comparator) Compare(ctx context.Context, origin, target []toc.FlatEntry) ([]Row, error) {
	// 路径重复时后出现的条目覆盖前面的
	targets := make(map[string]string, len(target))
	for _, e := range target {
		targets[e.Path] = e.Label
	}

	workers := c.Options.Workers
	if workers <= 0 {
		workers = 1
	}
	results := coroutine.Map(ctx, workers, origin, func(_ int, e toc.FlatEntry) (Row, error) {
		row, err := c.compareOne(ctx, e, targets)
		if err == nil && c.OnRow != nil {
			c.OnRow()
		}
		return row, err
	})
	rows, err := coroutine.Values(results)
	if err != nil {
		return nil, err
	}
	helper.Logger().Debugw("compare finished", "rows", len(rows), "workers", workers)
	return rows, nil
}

func (c *Comparator) compareOne(ctx context.Context, e toc.FlatEntry, targets map[string]string) (Row, error) {
	row := Row{
		OriginName:    e.Label,
		TargetName:    Blank,
		OriginVersion: Blank,
		TargetVersion: Blank,
		DocPath:       e.Path,
	}
	targetName, linked := targets[e.Path]
	if linked {
		row.TargetName = targetName
	}

	info, exists, err := helper.FileExists(c.localPath(c.Options.OriginLang, e.Path))
	if err != nil {
		return Row{}, fmt.Errorf("stat source doc %s: %w", e.Path, err)
	}
	switch {
	case !exists:
		row.Status = MissingSource
		return row, nil
	case info.IsDir():
		row.Status = Directory
		return row, nil
	}

	record, err := c.Source.LatestChange(ctx, c.Options.RepoPath, c.repoFile(c.Options.OriginLang, e.Path))
	if err != nil {
		return Row{}, err
	}
	row.OriginVersion = c.short(record.ID)

	if !linked {
		row.Status = MissingTargetLink
		return row, nil
	}

	targetFile := c.localPath(c.Options.TargetLang, e.Path)
	_, exists, err = helper.FileExists(targetFile)
	if err != nil {
		return Row{}, fmt.Errorf("stat translated doc %s: %w", e.Path, err)
	}
	if !exists {
		row.Status = MissingTargetFile
		return row, nil
	}

	stamp, ok, err := ReadStamp(targetFile)
	if err != nil {
		return Row{}, err
	}
	if ok && stamp.ChangeID == record.ID {
		row.Status = UpToDate
	} else {
		row.Status = Stale
	}
	if ok {
		row.TargetVersion = c.short(stamp.ChangeID)
	}
	return row, nil
}

// localPath 文档在本地的路径 <docRoot>/<lang><docPath>
func (c *Comparator) localPath(lang, docPath string) string {
	return filepath.Join(c.Options.DocRoot(), filepath.FromSlash(lang+docPath))
}

// repoFile 文档相对仓库根目录的路径，用于版本库查询
func (c *Comparator) repoFile(lang, docPath string) string {
	return path.Join(filepath.ToSlash(c.Options.DocDir), lang+docPath)
}

func (c *Comparator) short(id string) string {
	if c.Options.LongHash {
		return id
	}
	return helper.Shorten(id, share.SHORT_HASH)
}
