package toc

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sjzsdu/tdoc/share"
)

// FlattenOptions 控制展开时是否包含命令章节
type FlattenOptions struct {
	ShowCommands bool
}

// Flatten 深度优先展开目录，章节行总在其子条目之前
func Flatten(entries []*Entry, depth int, opts FlattenOptions) []FlatEntry {
	result := []FlatEntry{}
	for _, e := range entries {
		if e.Name == share.COMMANDS_SECTION && !opts.ShowCommands {
			continue
		}
		result = append(result, FlatEntry{Label: label(depth, e.Name), Path: e.Path})
		if e.Dir {
			result = append(result, Flatten(e.Children, depth+1, opts)...)
		}
	}
	return result
}

// FlattenTree 展开整棵目录
func FlattenTree(t *Tree, opts FlattenOptions) []FlatEntry {
	if t == nil {
		return []FlatEntry{}
	}
	return Flatten(t.Entries, 0, opts)
}

// FlattenSection 只展开名为 name 的顶层章节，章节不存在时返回空列表
func FlattenSection(t *Tree, name string) []FlatEntry {
	section := t.Section(name)
	if section == nil {
		return []FlatEntry{}
	}
	return Flatten([]*Entry{section}, 0, FlattenOptions{ShowCommands: true})
}

// Filter 只保留路径匹配 doublestar 模式的条目，pattern 为空时原样返回
// 匹配时去掉路径开头的 "/"
func Filter(entries []FlatEntry, pattern string) ([]FlatEntry, error) {
	if pattern == "" {
		return entries, nil
	}
	pattern = strings.TrimPrefix(pattern, "/")
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid match pattern: %s", pattern)
	}
	result := make([]FlatEntry, 0, len(entries))
	for _, e := range entries {
		if doublestar.MatchUnvalidated(pattern, strings.TrimPrefix(e.Path, "/")) {
			result = append(result, e)
		}
	}
	return result, nil
}
