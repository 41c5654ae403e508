package report

import (
	"fmt"
	"io"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sjzsdu/tdoc/status"
)

// Text 使用 lipgloss 表格输出
// 颜色按输出目标的终端能力降级，写入文件或管道时不带转义序列
type Text struct {
	flavor catppuccin.Flavor
}

// NewText 创建终端表格渲染器
func NewText(theme string) *Text {
	return &Text{flavor: flavorFromName(theme)}
}

func (t *Text) Status(w io.Writer, rows []status.Row) error {
	re := lipgloss.NewRenderer(w)
	tbl := t.newTable(re).Headers(statusHeaders()...)
	for _, row := range rows {
		tbl.Row(row.OriginName, row.TargetName, t.statusCell(re, row.Status), row.OriginVersion, row.TargetVersion, row.DocPath)
	}
	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

func (t *Text) DocInfo(w io.Writer, infos []status.DocInfo) error {
	re := lipgloss.NewRenderer(w)
	tbl := t.newTable(re).Headers(docInfoHeaders()...)
	for _, info := range infos {
		tbl.Row(docInfoCells(info)...)
	}
	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

func (t *Text) newTable(re *lipgloss.Renderer) *table.Table {
	header := re.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color(t.flavor.Mauve().Hex))
	cell := re.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle().Foreground(lipgloss.Color(t.flavor.Surface1().Hex))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

// statusCell 标签左对齐占 8 列，后接彩色符号
func (t *Text) statusCell(re *lipgloss.Renderer, s status.Status) string {
	mark, color := glyph(t.flavor, s)
	if mark == "" {
		return s.Label()
	}
	return fmt.Sprintf("%-8s", s.Label()) + re.NewStyle().Foreground(lipgloss.Color(color)).Render(mark)
}
