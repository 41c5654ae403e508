package vcs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/sjzsdu/tdoc/helper"
	"github.com/sjzsdu/tdoc/share"
)

// GitSource 使用go-git库实现的查询
// go-git 的仓库对象不支持并发访问，所有查询共用一把锁
type GitSource struct {
	mu    sync.Mutex
	repos map[string]*git.Repository
}

// NewGitSource 创建基于go-git的查询
func NewGitSource() *GitSource {
	return &GitSource{repos: make(map[string]*git.Repository)}
}

func (g *GitSource) open(repoRoot string) (*git.Repository, error) {
	if repo, ok := g.repos[repoRoot]; ok {
		return repo, nil
	}
	repo, err := git.PlainOpen(repoRoot)
	if err != nil {
		return nil, err
	}
	g.repos[repoRoot] = repo
	return repo, nil
}

// LatestChange 沿 HEAD 历史查找最近一次修改 file 的提交，结果与 git log -n 1 -- file 一致
func (g *GitSource) LatestChange(ctx context.Context, repoRoot, file string) (*ChangeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	repo, err := g.open(repoRoot)
	if err != nil {
		return nil, queryError("open", repoRoot, err)
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, queryError("log", file, ErrNoHistory)
		}
		return nil, queryError("log", file, err)
	}
	start, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, queryError("log", file, err)
	}

	commit, err := newFileWalker(filepath.ToSlash(file)).latest(ctx, start)
	if err != nil {
		return nil, queryError("log", file, err)
	}

	record := &ChangeRecord{
		ID:     commit.Hash.String(),
		When:   commit.Author.When,
		Author: commit.Author.Name,
	}
	helper.Logger().Debugw("latest change", "backend", LibrarySource, "file", file, "id", record.ID)
	return record, nil
}

// fileWalker 按提交时间倒序遍历历史，并按 git 的默认方式简化合并
// 提交与某个父提交中 file 相同时只沿第一个相同的父提交继续，自身不算修改
type fileWalker struct {
	file    string
	entries map[plumbing.Hash]*object.TreeEntry
}

func newFileWalker(file string) *fileWalker {
	return &fileWalker{file: file, entries: make(map[plumbing.Hash]*object.TreeEntry)}
}

func (w *fileWalker) latest(ctx context.Context, start *object.Commit) (*object.Commit, error) {
	queue := binaryheap.NewWith(func(a, b interface{}) int {
		if a.(*object.Commit).Committer.When.Before(b.(*object.Commit).Committer.When) {
			return 1
		}
		return -1
	})
	queue.Push(start)
	seen := map[plumbing.Hash]bool{start.Hash: true}

	for !queue.Empty() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, _ := queue.Pop()
		commit := v.(*object.Commit)

		entry, err := w.entry(commit)
		if err != nil {
			return nil, err
		}
		if commit.NumParents() == 0 {
			if entry != nil {
				return commit, nil
			}
			continue
		}

		same, err := w.sameParent(commit, entry)
		if err != nil {
			return nil, err
		}
		if same == nil {
			return commit, nil
		}
		if !seen[same.Hash] {
			seen[same.Hash] = true
			queue.Push(same)
		}
	}
	return nil, ErrNoHistory
}

// sameParent 返回第一个 file 内容与 commit 相同的父提交，没有时返回 nil
func (w *fileWalker) sameParent(commit *object.Commit, entry *object.TreeEntry) (*object.Commit, error) {
	for i := 0; i < commit.NumParents(); i++ {
		parent, err := commit.Parent(i)
		if err != nil {
			return nil, err
		}
		parentEntry, err := w.entry(parent)
		if err != nil {
			return nil, err
		}
		if sameEntry(entry, parentEntry) {
			return parent, nil
		}
	}
	return nil, nil
}

// entry 读取提交中 file 对应的树条目，文件不存在时返回 nil
func (w *fileWalker) entry(commit *object.Commit) (*object.TreeEntry, error) {
	if e, ok := w.entries[commit.Hash]; ok {
		return e, nil
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, err
	}
	e, err := tree.FindEntry(w.file)
	if err != nil {
		if !errors.Is(err, object.ErrEntryNotFound) && !errors.Is(err, object.ErrDirectoryNotFound) {
			return nil, err
		}
		e = nil
	}
	w.entries[commit.Hash] = e
	return e, nil
}

func sameEntry(a, b *object.TreeEntry) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Hash == b.Hash && a.Mode == b.Mode
}

// Clone 使用go-git克隆仓库
func (g *GitSource) Clone(ctx context.Context, url, dest string) error {
	opts := &git.CloneOptions{URL: url}
	if share.GetDebug() {
		opts.Progress = os.Stderr
	}
	helper.Logger().Debugw("clone", "backend", LibrarySource, "url", url, "dest", dest)
	if _, err := git.PlainCloneContext(ctx, dest, false, opts); err != nil {
		return queryError("clone", url, err)
	}
	return nil
}
