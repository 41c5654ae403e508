package status

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/sjzsdu/tdoc/share"
)

// VersionStamp 一个版本标识及其日期
// 源文件一侧来自提交历史，译文一侧来自文末的版本行
type VersionStamp struct {
	ChangeID   string
	ChangeDate string
}

// IsZero 是否为空
func (v VersionStamp) IsZero() bool {
	return v.ChangeID == ""
}

// trailerLine 取倒数第二行，只有一行时取该行
func trailerLine(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return lines[0]
	}
	return lines[len(lines)-2]
}

// ParseTrailer 解析 "Last english version: <id> <date>"
// id 是前缀后的第一个空白分隔片段，其余部分去掉首尾空白作为日期
func ParseTrailer(line string) (VersionStamp, bool) {
	line = strings.TrimSuffix(line, "\r")
	if !strings.HasPrefix(line, share.TRAILER_PREFIX) {
		return VersionStamp{}, false
	}
	rest := strings.TrimLeftFunc(line[len(share.TRAILER_PREFIX):], unicode.IsSpace)
	if rest == "" {
		return VersionStamp{}, false
	}
	id, date := rest, ""
	if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
		id, date = rest[:i], strings.TrimSpace(rest[i:])
	}
	return VersionStamp{ChangeID: id, ChangeDate: date}, true
}

// ReadStamp 读取文件并解析版本行，没有版本行时 ok 为 false
func ReadStamp(path string) (stamp VersionStamp, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return VersionStamp{}, false, fmt.Errorf("read translated doc: %w", err)
	}
	stamp, ok = ParseTrailer(trailerLine(string(data)))
	return stamp, ok, nil
}

// FormatTrailer 生成译文末尾的版本行，与 ParseTrailer 互逆
func FormatTrailer(stamp VersionStamp) string {
	if stamp.ChangeDate == "" {
		return share.TRAILER_PREFIX + stamp.ChangeID
	}
	return share.TRAILER_PREFIX + stamp.ChangeID + " " + stamp.ChangeDate
}
