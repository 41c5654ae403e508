package vcs

import (
	"errors"
	"fmt"
)

var (
	// ErrQuery 版本库命令或库调用失败
	ErrQuery = errors.New("revision query failed")
	// ErrNoHistory 文件从未提交过
	ErrNoHistory = errors.New("no commit history")
)

// QueryError 记录失败的操作和路径
type QueryError struct {
	Op   string
	Path string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is 使所有 QueryError 都能匹配 ErrQuery
func (e *QueryError) Is(target error) bool {
	return target == ErrQuery
}

func queryError(op, path string, err error) error {
	return &QueryError{Op: op, Path: path, Err: err}
}
