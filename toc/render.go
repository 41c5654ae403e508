package toc

import (
	"fmt"
	"strings"
)

// String 生成类似 Unix tree 命令的树状结构，保持清单中的顺序
func (t *Tree) String() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(t.Lang + "\n")
	buildTree(&b, t.Entries, "")
	return b.String()
}

func buildTree(b *strings.Builder, entries []*Entry, prefix string) {
	for i, e := range entries {
		last := i == len(entries)-1
		if last {
			b.WriteString(prefix + "└── ")
		} else {
			b.WriteString(prefix + "├── ")
		}
		if e.Dir {
			b.WriteString(e.Name + " (" + e.Path + "/)\n")
		} else {
			b.WriteString(e.Name + " (" + e.Path + ")\n")
		}
		if e.Dir && len(e.Children) > 0 {
			next := prefix + "│   "
			if last {
				next = prefix + "    "
			}
			buildTree(b, e.Children, next)
		}
	}
}

// Stats 目录统计
type Stats struct {
	Lang string
	Docs int
	Dirs int
}

func (t *Tree) Stats() Stats {
	docs, dirs := t.Count()
	s := Stats{Docs: docs, Dirs: dirs}
	if t != nil {
		s.Lang = t.Lang
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("%s: %d documents, %d sections", s.Lang, s.Docs, s.Dirs)
}
