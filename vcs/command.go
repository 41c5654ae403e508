package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/sjzsdu/tdoc/helper"
	"github.com/sjzsdu/tdoc/share"
)

// logFormat 依次输出提交ID、作者时间和作者
const logFormat = "--pretty=format:%H%n%aI%n%an"

// CmdSource 使用命令行git实现的查询
type CmdSource struct {
	bin string
}

// NewCmdSource 创建基于命令行的查询，git 不可用时返回错误
func NewCmdSource() (*CmdSource, error) {
	bin, err := exec.LookPath("git")
	if err != nil {
		return nil, fmt.Errorf("git command not available: %w", err)
	}
	return &CmdSource{bin: bin}, nil
}

// LatestChange 执行 git log -n 1 查询 file 的最近一次提交
func (c *CmdSource) LatestChange(ctx context.Context, repoRoot, file string) (*ChangeRecord, error) {
	fileName := filepath.ToSlash(file)
	out, err := c.run(ctx, "-C", repoRoot, "log", "-n", "1", logFormat, "--", fileName)
	if err != nil {
		return nil, queryError("log", file, err)
	}
	record, err := parseLogOutput(out)
	if err != nil {
		return nil, queryError("log", file, err)
	}
	helper.Logger().Debugw("latest change", "backend", CommandSource, "file", file, "id", record.ID)
	return record, nil
}

// Clone 执行 git clone
func (c *CmdSource) Clone(ctx context.Context, url, dest string) error {
	helper.Logger().Debugw("clone", "backend", CommandSource, "url", url, "dest", dest)
	if _, err := c.run(ctx, "clone", url, dest); err != nil {
		return queryError("clone", url, err)
	}
	return nil
}

func (c *CmdSource) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if share.GetDebug() && len(args) > 0 && args[0] == "clone" {
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}
	return stdout.String(), nil
}

// parseLogOutput 解析 logFormat 的输出，空输出表示没有历史
func parseLogOutput(out string) (*ChangeRecord, error) {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, ErrNoHistory
	}
	lines := strings.SplitN(out, "\n", 3)
	if len(lines) < 3 {
		return nil, fmt.Errorf("unexpected git log output: %q", out)
	}
	when, err := time.Parse(time.RFC3339, strings.TrimSpace(lines[1]))
	if err != nil {
		return nil, fmt.Errorf("parse commit time: %w", err)
	}
	return &ChangeRecord{
		ID:     strings.TrimSpace(lines[0]),
		When:   when,
		Author: strings.TrimSpace(lines[2]),
	}, nil
}
