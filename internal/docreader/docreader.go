// Package docreader 从 PDF 和 DOCX 简历文件中读取原始文本。
// 读取器只负责取出文本，不做规范化；声明的扩展名决定走哪个读取器，
// 判定发生在任何文件访问之前。
package docreader

import (
	"fmt"
	"strings"
)

// Format 规范化后的文档格式。
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	// FormatDOC 旧版二进制 Word 格式。按 DOCX 读取器处理，
	// 真正的二进制 .doc 文件会在打开阶段报不可读。
	FormatDOC Format = "doc"
)

// ResolveFormat 规范化扩展名（去掉前导点、转小写）并判定格式。
// 不支持的扩展名返回 ErrUnsupportedFormat，此时尚未发生任何 I/O。
func ResolveFormat(ext string) (Format, error) {
	normalized := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
	switch normalized {
	case "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDOCX, nil
	case "doc":
		return FormatDOC, nil
	}
	return "", fmt.Errorf("%w: %q，仅支持 pdf/docx/doc", ErrUnsupportedFormat, ext)
}
