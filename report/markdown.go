package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/sjzsdu/tdoc/lang"
	"github.com/sjzsdu/tdoc/status"
)

// Markdown 生成 Markdown 表格并用 glamour 渲染
type Markdown struct {
	renderer *glamour.TermRenderer
}

// NewMarkdown 创建 Markdown 渲染器，latte 使用浅色样式，其余使用深色
func NewMarkdown(theme string) (*Markdown, error) {
	style := "dark"
	if theme == "latte" {
		style = "light"
	}
	return newMarkdownWithStyle(style)
}

func newMarkdownWithStyle(style string) (*Markdown, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(160),
	)
	if err != nil {
		return nil, fmt.Errorf("init markdown renderer: %w", err)
	}
	return &Markdown{renderer: renderer}, nil
}

func (m *Markdown) Status(w io.Writer, rows []status.Row) error {
	var b strings.Builder
	b.WriteString("## " + lang.T("Translation status") + "\n\n")
	writeTableHeader(&b, statusHeaders())
	for _, row := range rows {
		writeTableRow(&b, []string{
			indentLabel(row.OriginName),
			indentLabel(row.TargetName),
			statusText(row.Status),
			code(row.OriginVersion),
			code(row.TargetVersion),
			row.DocPath,
		})
	}
	return m.render(w, b.String())
}

func (m *Markdown) DocInfo(w io.Writer, infos []status.DocInfo) error {
	var b strings.Builder
	b.WriteString("## " + lang.T("Document info") + "\n\n")
	writeTableHeader(&b, docInfoHeaders())
	for _, info := range infos {
		cells := docInfoCells(info)
		cells[3] = code(cells[3])
		writeTableRow(&b, cells)
	}
	return m.render(w, b.String())
}

func (m *Markdown) render(w io.Writer, content string) error {
	rendered, err := m.renderer.Render(content)
	if err != nil {
		// 渲染失败时输出原始内容
		rendered = content
	}
	for strings.Contains(rendered, "\n\n\n") {
		rendered = strings.ReplaceAll(rendered, "\n\n\n", "\n\n")
	}
	if !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	_, err = io.WriteString(w, rendered)
	return err
}

func writeTableHeader(b *strings.Builder, headers []string) {
	writeTableRow(b, headers)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	writeTableRow(b, sep)
}

func writeTableRow(b *strings.Builder, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = escapeCell(c)
	}
	b.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
}

func escapeCell(s string) string {
	if strings.TrimSpace(s) == "" {
		return " "
	}
	return strings.ReplaceAll(s, "|", "\\|")
}

// indentLabel 把缩进换成不换行空格，避免 Markdown 折叠
func indentLabel(label string) string {
	trimmed := strings.TrimLeft(label, " ")
	return strings.Repeat("\u00a0", len(label)-len(trimmed)) + trimmed
}

func statusText(s status.Status) string {
	mark, _ := glyph(flavorFromName(""), s)
	if mark == "" {
		return s.Label()
	}
	return s.Label() + " " + mark
}

func code(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	return "`" + s + "`"
}
