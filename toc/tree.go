// Package toc 读取多语言文档目录清单，并把嵌套目录展开为有序列表
package toc

import "strings"

// Entry 目录中的一个条目
// Dir 为 false 时是文档，Path 为文档路径；为 true 时是章节，Path 为章节目录
type Entry struct {
	Name     string
	Path     string
	Dir      bool
	Children []*Entry
}

// Tree 某一语言的完整目录，条目顺序与清单一致
type Tree struct {
	Lang    string
	Entries []*Entry
}

// FlatEntry 展开后的一行，Label 带缩进和 "- " 前缀
type FlatEntry struct {
	Label string
	Path  string
}

// Section 按名称查找顶层条目
func (t *Tree) Section(name string) *Entry {
	if t == nil {
		return nil
	}
	for _, e := range t.Entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// FindName 深度优先查找第一个路径等于 path 的条目，返回其名称
func (t *Tree) FindName(path string) (string, bool) {
	if t == nil {
		return "", false
	}
	return findName(t.Entries, path)
}

func findName(entries []*Entry, path string) (string, bool) {
	for _, e := range entries {
		if e.Path == path {
			return e.Name, true
		}
		if e.Dir {
			if name, ok := findName(e.Children, path); ok {
				return name, true
			}
		}
	}
	return "", false
}

// Count 返回文档和章节数量
func (t *Tree) Count() (docs, dirs int) {
	if t == nil {
		return 0, 0
	}
	var walk func([]*Entry)
	walk = func(entries []*Entry) {
		for _, e := range entries {
			if e.Dir {
				dirs++
				walk(e.Children)
			} else {
				docs++
			}
		}
	}
	walk(t.Entries)
	return docs, dirs
}

func label(depth int, name string) string {
	return strings.Repeat("  ", depth) + "- " + name
}
