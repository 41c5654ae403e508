package vcs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// testRepo 用 go-git 在临时目录中构造仓库
type testRepo struct {
	t    *testing.T
	dir  string
	repo *git.Repository
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return &testRepo{t: t, dir: dir, repo: repo}
}

func (r *testRepo) write(rel, content string) {
	r.t.Helper()
	full := filepath.Join(r.dir, filepath.FromSlash(rel))
	require.NoError(r.t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(r.t, os.WriteFile(full, []byte(content), 0644))
}

// commit 提交指定文件并返回提交ID
func (r *testRepo) commit(msg string, when time.Time, files ...string) string {
	r.t.Helper()
	return r.commitWith(msg, when, nil, files...)
}

// merge 以 parents 为父提交创建合并提交，第一个父提交为当前 HEAD
func (r *testRepo) merge(msg string, when time.Time, parents []string, files ...string) string {
	r.t.Helper()
	return r.commitWith(msg, when, parents, files...)
}

func (r *testRepo) commitWith(msg string, when time.Time, parents []string, files ...string) string {
	r.t.Helper()
	wt, err := r.repo.Worktree()
	require.NoError(r.t, err)
	for _, f := range files {
		_, err := wt.Add(f)
		require.NoError(r.t, err)
	}
	opts := &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: when},
	}
	for _, p := range parents {
		opts.Parents = append(opts.Parents, plumbing.NewHash(p))
	}
	hash, err := wt.Commit(msg, opts)
	require.NoError(r.t, err)
	return hash.String()
}

// checkout 切换到提交 id（游离 HEAD）或分支 branch
func (r *testRepo) checkout(id, branch string) {
	r.t.Helper()
	wt, err := r.repo.Worktree()
	require.NoError(r.t, err)
	opts := &git.CheckoutOptions{Force: true}
	if branch != "" {
		opts.Branch = plumbing.NewBranchReferenceName(branch)
	} else {
		opts.Hash = plumbing.NewHash(id)
	}
	require.NoError(r.t, wt.Checkout(opts))
}

// mergeHistory 构造一段带合并的历史
//
//	c0 ── m1 ── m2 ── M
//	 └──── s1 ────────┘
//
// m1 修改 a、c；m2 修改 b；侧分支 s1 修改 a、c；M 采用 s1 的 a，并重新改写 c
func mergeHistory(t *testing.T) (*testRepo, map[string]string) {
	t.Helper()
	r := newTestRepo(t)
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	ids := make(map[string]string)

	r.write("docs/en/a.md", "a0\n")
	r.write("docs/en/b.md", "b0\n")
	r.write("docs/en/c.md", "c0\n")
	ids["c0"] = r.commit("init", base, "docs/en/a.md", "docs/en/b.md", "docs/en/c.md")

	r.write("docs/en/a.md", "a1\n")
	r.write("docs/en/c.md", "c1\n")
	ids["m1"] = r.commit("main edits a and c", base.Add(time.Hour), "docs/en/a.md", "docs/en/c.md")

	r.write("docs/en/b.md", "b1\n")
	ids["m2"] = r.commit("main edits b", base.Add(3*time.Hour), "docs/en/b.md")

	r.checkout(ids["c0"], "")
	r.write("docs/en/a.md", "a2\n")
	r.write("docs/en/c.md", "c2\n")
	ids["s1"] = r.commit("side edits a and c", base.Add(2*time.Hour), "docs/en/a.md", "docs/en/c.md")

	r.checkout("", "master")
	r.write("docs/en/a.md", "a2\n")
	r.write("docs/en/c.md", "c3\n")
	ids["M"] = r.merge("merge side", base.Add(4*time.Hour), []string{ids["m2"], ids["s1"]}, "docs/en/a.md", "docs/en/c.md")
	return r, ids
}
