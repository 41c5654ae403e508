package helper

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Progress 单行刷新的进度条，可以被多个协程同时更新
type Progress struct {
	w         io.Writer
	total     int
	current   int
	width     int
	title     string
	startTime time.Time
	mu        sync.Mutex
	finished  bool
}

// ProgressOption 进度条选项
type ProgressOption func(*Progress)

// WithWidth 设置进度条宽度
func WithWidth(width int) ProgressOption {
	return func(p *Progress) {
		p.width = width
	}
}

func NewProgress(w io.Writer, title string, total int, opts ...ProgressOption) *Progress {
	p := &Progress{
		w:         w,
		total:     total,
		width:     40,
		title:     title,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Progress) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	p.current++
	p.render()
}

// Finish 完成进度条并换行
func (p *Progress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	p.current = p.total
	p.finished = true
	p.render()
	fmt.Fprintln(p.w)
}

func (p *Progress) render() {
	if p.total == 0 {
		return
	}
	current := p.current
	if current > p.total {
		current = p.total
	}
	filled := current * p.width / p.total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", p.width-filled)

	line := fmt.Sprintf("\r%s [%s] %.1f%% (%d/%d)", p.title, bar, float64(current)*100/float64(p.total), current, p.total)
	if current == p.total {
		line += " " + formatDuration(time.Since(p.startTime))
	}
	fmt.Fprint(p.w, line)
}

// formatDuration 格式化时间显示
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	} else if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) - minutes*60
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) - hours*60
	return fmt.Sprintf("%dh%dm", hours, minutes)
}
