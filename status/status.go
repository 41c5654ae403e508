// Package status 对比源语言与译文的文档版本，得出每篇文档的翻译状态
package status

// Blank 空白单元格
const Blank = " "

// Status 文档的翻译状态，每次运行时计算得出，不做存储
type Status int

const (
	// MissingSource 目录中列出但源文件不存在
	MissingSource Status = iota
	// MissingTargetLink 译文目录中没有对应条目
	MissingTargetLink
	// MissingTargetFile 译文目录有条目但文件不存在
	MissingTargetFile
	// UpToDate 译文记录的版本与源文件最新提交一致
	UpToDate
	// Stale 译文落后于源文件
	Stale
	// Directory 章节目录，不比较版本
	Directory
)

var labels = map[Status]string{
	MissingSource:     "OHangUp",
	MissingTargetLink: "Unlink",
	MissingTargetFile: "HangUp",
	UpToDate:          "Done",
	Stale:             "Expired",
	Directory:         Blank,
}

// Label 报表中显示的状态名
func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return Blank
}

func (s Status) String() string {
	return s.Label()
}

// Row 报表中的一行
type Row struct {
	OriginName    string
	TargetName    string
	Status        Status
	OriginVersion string
	TargetVersion string
	DocPath       string
}

// DocInfo 单篇文档在某一语言下的信息
type DocInfo struct {
	Lang       string
	DocName    string
	ChangeDate string
	ChangeID   string
	URL        string
}
