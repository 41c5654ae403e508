// Package report 把状态行和文档信息输出为终端表格或 Markdown
package report

import (
	"fmt"
	"io"

	"github.com/sjzsdu/tdoc/lang"
	"github.com/sjzsdu/tdoc/status"
)

// RendererType 定义输出格式
type RendererType string

const (
	// TextRenderer 对齐的终端表格
	TextRenderer RendererType = "text"
	// MarkdownRenderer 经 glamour 渲染的 Markdown 表格
	MarkdownRenderer RendererType = "markdown"
)

// Renderer 定义报表输出的通用接口
type Renderer interface {
	// Status 输出状态表
	Status(w io.Writer, rows []status.Row) error
	// DocInfo 输出单篇文档信息
	DocInfo(w io.Writer, infos []status.DocInfo) error
}

// NewRenderer 按类型创建渲染器，未知类型回退到终端表格
func NewRenderer(kind RendererType, theme string) (Renderer, error) {
	switch kind {
	case MarkdownRenderer:
		return NewMarkdown(theme)
	default:
		return NewText(theme), nil
	}
}

// WriteHint 在状态表后输出使用提示
func WriteHint(w io.Writer) error {
	_, err := fmt.Fprintln(w, lang.T("You can use `tdoc -a` to show all the documents. But we recommend `tdoc commands` to view the 'doc-commands' section."))
	return err
}

func statusHeaders() []string {
	return []string{
		lang.T("Origin"),
		lang.T("Target"),
		lang.T("Status"),
		lang.T("Origin version"),
		lang.T("Target version"),
		lang.T("Path"),
	}
}

func docInfoHeaders() []string {
	return []string{
		lang.T("Lang"),
		lang.T("Name"),
		lang.T("Date"),
		lang.T("Version"),
		lang.T("URL"),
	}
}

func docInfoCells(info status.DocInfo) []string {
	return []string{info.Lang, info.DocName, info.ChangeDate, info.ChangeID, info.URL}
}
