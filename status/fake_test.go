package status

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sjzsdu/tdoc/config"
	"github.com/sjzsdu/tdoc/vcs"
	"github.com/stretchr/testify/require"
)

// fakeSource 按仓库相对路径返回预设的提交
type fakeSource struct {
	mu      sync.Mutex
	records map[string]vcs.ChangeRecord
	calls   []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{records: map[string]vcs.ChangeRecord{}}
}

func (f *fakeSource) set(file, id string, when time.Time) {
	f.records[file] = vcs.ChangeRecord{ID: id, When: when, Author: "tester"}
}

func (f *fakeSource) LatestChange(ctx context.Context, repoRoot, file string) (*vcs.ChangeRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, file)
	rec, ok := f.records[file]
	if !ok {
		return nil, &vcs.QueryError{Op: "log", Path: file, Err: vcs.ErrNoHistory}
	}
	return &rec, nil
}

func (f *fakeSource) Clone(ctx context.Context, url, dest string) error {
	return nil
}

// failingSource 所有查询都返回 err
type failingSource struct {
	err error
}

func (f failingSource) LatestChange(ctx context.Context, repoRoot, file string) (*vcs.ChangeRecord, error) {
	return nil, f.err
}

func (f failingSource) Clone(ctx context.Context, url, dest string) error {
	return f.err
}

// docTree 构造 <repo>/docs/<lang>/... 的临时文档目录
type docTree struct {
	t    *testing.T
	opts config.Options
}

func newDocTree(t *testing.T) *docTree {
	opts := config.DefaultOptions()
	opts.RepoPath = t.TempDir()
	opts.RepoURL = "https://github.com/example/appium.git"
	return &docTree{t: t, opts: opts}
}

func (d *docTree) write(lang, docPath, content string) {
	d.t.Helper()
	full := filepath.Join(d.opts.DocRoot(), lang+filepath.FromSlash(docPath))
	require.NoError(d.t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(d.t, os.WriteFile(full, []byte(content), 0644))
}

func (d *docTree) mkdir(lang, docPath string) {
	d.t.Helper()
	require.NoError(d.t, os.MkdirAll(filepath.Join(d.opts.DocRoot(), lang+filepath.FromSlash(docPath)), 0755))
}

func (d *docTree) remove(lang, docPath string) {
	d.t.Helper()
	require.NoError(d.t, os.Remove(filepath.Join(d.opts.DocRoot(), lang+filepath.FromSlash(docPath))))
}

func translated(id string) string {
	return "# 标题\n\n正文\n" + FormatTrailer(VersionStamp{ChangeID: id, ChangeDate: "on 2021-01-01"}) + "\n"
}
