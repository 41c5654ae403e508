package status

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sjzsdu/tdoc/helper"
	"github.com/sjzsdu/tdoc/share"
	"github.com/sjzsdu/tdoc/toc"
	"github.com/sjzsdu/tdoc/vcs"
)

// DocDateLayout 文档信息中日期的显示格式
const DocDateLayout = "Jan 2, 2006"

// Lookup 查询单篇文档在源语言和目标语言下的信息，依次返回两行
// 未知的 docID 不视为错误：目录中找不到时名称为空白，源文件不存在或没有提交记录时版本和链接为空白
func (c *Comparator) Lookup(ctx context.Context, originTree, targetTree *toc.Tree, docID string) ([]DocInfo, error) {
	origin := DocInfo{
		Lang:       c.Options.OriginLang,
		DocName:    findName(originTree, docID),
		ChangeID:   Blank,
		ChangeDate: Blank,
		URL:        Blank,
	}
	record, err := c.originChange(ctx, docID)
	if err != nil {
		return nil, err
	}
	if record != nil {
		origin.ChangeID = record.ID
		origin.ChangeDate = record.When.Format(DocDateLayout)
		origin.URL = fmt.Sprintf("%s/blob/%s/%s/%s%s", c.baseURL(), record.ID, c.Options.DocDir, c.Options.OriginLang, docID)
	}

	target := DocInfo{
		Lang:       c.Options.TargetLang,
		DocName:    findName(targetTree, docID),
		ChangeID:   Blank,
		ChangeDate: Blank,
	}
	targetFile := c.localPath(c.Options.TargetLang, docID)
	_, exists, err := helper.FileExists(targetFile)
	if err != nil {
		return nil, fmt.Errorf("stat translated doc %s: %w", docID, err)
	}
	if exists {
		stamp, ok, err := ReadStamp(targetFile)
		if err != nil {
			return nil, err
		}
		if ok {
			target.ChangeID = stamp.ChangeID
			if stamp.ChangeDate != "" {
				target.ChangeDate = stamp.ChangeDate
			}
		}
	}
	target.URL = fmt.Sprintf("%s/tree/%s/%s/%s%s", c.baseURL(), c.branch(), c.Options.DocDir, c.Options.TargetLang, docID)

	return []DocInfo{origin, target}, nil
}

// originChange 源文件不存在或从未提交时返回 nil
func (c *Comparator) originChange(ctx context.Context, docID string) (*vcs.ChangeRecord, error) {
	_, exists, err := helper.FileExists(c.localPath(c.Options.OriginLang, docID))
	if err != nil {
		return nil, fmt.Errorf("stat source doc %s: %w", docID, err)
	}
	if !exists {
		return nil, nil
	}
	record, err := c.Source.LatestChange(ctx, c.Options.RepoPath, c.repoFile(c.Options.OriginLang, docID))
	if errors.Is(err, vcs.ErrNoHistory) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (c *Comparator) baseURL() string {
	return strings.TrimSuffix(c.Options.RepoURL, ".git")
}

func (c *Comparator) branch() string {
	if c.Options.Branch == "" {
		return share.DEFAULT_BRANCH
	}
	return c.Options.Branch
}

func findName(t *toc.Tree, docID string) string {
	if name, ok := t.FindName(docID); ok {
		return name
	}
	return Blank
}
