package report

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/sjzsdu/tdoc/status"
)

func flavorFromName(name string) catppuccin.Flavor {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	case "mocha":
		return catppuccin.Mocha
	default:
		return catppuccin.Mocha
	}
}

// glyph 状态对应的符号及其颜色，目录没有符号
func glyph(flavor catppuccin.Flavor, s status.Status) (string, string) {
	switch s {
	case status.MissingSource, status.MissingTargetLink, status.MissingTargetFile:
		return "◉", flavor.Red().Hex
	case status.UpToDate:
		return "✔", flavor.Green().Hex
	case status.Stale:
		return "⬆", flavor.Yellow().Hex
	default:
		return "", ""
	}
}
