package parser

import (
	"errors"
	"fmt"

	"resume-parser-go/internal/docreader"
)

// 定义基础错误类型。格式与空文档场景直接复用读取层的哨兵错误
// （docreader.ErrUnsupportedFormat / docreader.ErrEmptyDocument），
// 调用方统一用 errors.Is 区分。
var (
	ErrReadDocumentFailed = errors.New("读取简历文件失败")
)

// ParseError 包含详细上下文的自定义解析错误
type ParseError struct {
	File    string
	Op      string
	BaseErr error
	Detail  string
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 文件:%s): %s", e.BaseErr, e.Op, e.File, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 文件:%s)", e.BaseErr, e.Op, e.File)
}

func (e *ParseError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ParseError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数

// NewFormatError 扩展名不受支持。cause 携带 docreader.ErrUnsupportedFormat。
func NewFormatError(file string, cause error) error {
	return &ParseError{
		File:    file,
		Op:      "format",
		BaseErr: cause,
	}
}

// NewReadError 文件无法读取或解析。
func NewReadError(file, detail string) error {
	return &ParseError{
		File:    file,
		Op:      "read",
		BaseErr: ErrReadDocumentFailed,
		Detail:  detail,
	}
}

// NewEmptyDocumentError 文件可以打开但提取不出任何文本。
func NewEmptyDocumentError(file string) error {
	return &ParseError{
		File:    file,
		Op:      "extract",
		BaseErr: docreader.ErrEmptyDocument,
	}
}
