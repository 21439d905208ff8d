package docreader

import "errors"

// 可恢复的文档读取错误。调用方用 errors.Is 区分后映射为对外的失败原因，
// 其余错误一律视为文件不可读。
var (
	// ErrUnsupportedFormat 声明的扩展名不在支持范围内。在任何文件访问之前返回。
	ErrUnsupportedFormat = errors.New("不支持的文件格式")

	// ErrEmptyDocument 文件可以打开但提取不出任何文本，
	// 常见于纯图片扫描件或损坏的文件。
	ErrEmptyDocument = errors.New("无法从文件中提取任何文本")
)
