package parser

import (
	"context"
	"io"
)

//
// 文档读取相关接口
//

// PDFTextReader PDF文本读取接口
type PDFTextReader interface {
	// ReadFile 从PDF文件提取全部文本
	ReadFile(ctx context.Context, path string) (string, error)

	// Read 从io.Reader提取全部文本
	// 参数：
	// - ctx: 上下文
	// - reader: PDF文件内容的读取器
	// - uri: 资源标识符，仅用于日志与解析器元数据
	Read(ctx context.Context, reader io.Reader, uri string) (string, error)
}

// DOCXTextReader DOCX文本读取接口
type DOCXTextReader interface {
	// ReadFile 从DOCX文件提取全部文本
	ReadFile(ctx context.Context, path string) (string, error)
}
