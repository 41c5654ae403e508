package config_test

import (
	"path/filepath"
	"testing"

	"github.com/sjzsdu/tdoc/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadOptionsOverlaysConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	config.ClearAllConfig()

	opts := config.LoadOptions()
	assert.Equal(t, "https://github.com/Pandorym/appium.git", opts.RepoURL)
	assert.Equal(t, filepath.Join(home, ".tdoc", "appium"), opts.RepoPath)
	assert.Equal(t, "docs", opts.DocDir)
	assert.Equal(t, "en", opts.OriginLang)
	assert.Equal(t, "cn", opts.TargetLang)
	assert.Equal(t, "library", opts.Backend)
	assert.Equal(t, 1, opts.Workers)

	t.Setenv("TDOC_TARGET_LANG", "ja")
	t.Setenv("TDOC_WORKERS", "6")
	t.Setenv("TDOC_GIT_BACKEND", "command")
	opts = config.LoadOptions()
	assert.Equal(t, "ja", opts.TargetLang)
	assert.Equal(t, 6, opts.Workers)
	assert.Equal(t, "command", opts.Backend)

	// 非法数值保持默认
	t.Setenv("TDOC_WORKERS", "many")
	assert.Equal(t, 1, config.LoadOptions().Workers)
}

func TestNormalize(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	opts := config.Options{OnlyShowCommands: true, RepoPath: "~/checkout", DocDir: "site/docs"}
	got := opts.Normalize()

	assert.True(t, got.ShowCommands, "只看命令文档时必须显示命令章节")
	assert.Equal(t, 1, got.Workers)
	assert.Equal(t, filepath.Join(home, "checkout"), got.RepoPath)
	assert.Equal(t, filepath.Join(home, "checkout", "site", "docs"), got.DocRoot())

	// 原值不被修改
	assert.False(t, opts.ShowCommands)
}
