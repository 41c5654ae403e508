// Package vcs 查询文档在版本库中的最近一次修改，并负责首次克隆
package vcs

import (
	"context"
	"fmt"
	"time"
)

// SourceType 定义版本库查询的实现方式
type SourceType string

const (
	// LibrarySource 使用go-git库，无需系统安装git
	LibrarySource SourceType = "library"
	// CommandSource 使用命令行git
	CommandSource SourceType = "command"
)

// ChangeRecord 一个文件最近一次修改的提交信息
type ChangeRecord struct {
	ID     string
	When   time.Time
	Author string
}

// Source 定义版本库查询的通用接口
type Source interface {
	// LatestChange 返回 repoRoot 下 file 的最近一次提交，file 为相对仓库根目录的 / 分隔路径
	LatestChange(ctx context.Context, repoRoot, file string) (*ChangeRecord, error)
	// Clone 把 url 克隆到 dest
	Clone(ctx context.Context, url, dest string) error
}

// NewSource 按类型创建查询实现
// 未知类型回退到 go-git 实现
func NewSource(sourceType SourceType) (Source, error) {
	switch sourceType {
	case CommandSource:
		return NewCmdSource()
	case LibrarySource:
		return NewGitSource(), nil
	default:
		return NewGitSource(), nil
	}
}

// GetAvailableSourceTypes 获取当前环境下可用的实现类型
func GetAvailableSourceTypes() []SourceType {
	types := []SourceType{LibrarySource}
	if _, err := NewCmdSource(); err == nil {
		types = append(types, CommandSource)
	}
	return types
}

// GetSourceTypeDescription 获取实现类型的描述
func GetSourceTypeDescription(sourceType SourceType) string {
	switch sourceType {
	case LibrarySource:
		return "go-git library, no external git needed"
	case CommandSource:
		return "system git command"
	default:
		return fmt.Sprintf("unknown source type: %s", sourceType)
	}
}
