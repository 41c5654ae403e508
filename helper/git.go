package helper

import (
	"os"
	"path/filepath"
)

// IsGitRoot 判断 path 下是否存在 .git
// worktree 中的 .git 是文件而不是目录，两种情况都视为已有仓库
func IsGitRoot(path string) bool {
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}

// FileExists 判断路径是否存在，返回值区分不存在与其他 I/O 错误
func FileExists(path string) (os.FileInfo, bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info, true, nil
	}
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	return nil, false, err
}
