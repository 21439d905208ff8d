package docreader

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
	"github.com/rs/zerolog/log"
)

// defaultPDFTimeout 单次 PDF 解析的超时。大文件或畸形文件不该拖垮整个请求。
const defaultPDFTimeout = 30 * time.Second

// PDFReader 基于 Eino PDF 解析组件的文本读取器。
// 解析器按页返回文本，各页之间用换行拼接，提取不出文本的页不占位。
type PDFReader struct {
	parser  *pdf.PDFParser
	timeout time.Duration
}

// PDFOption PDF 读取器的配置选项。
type PDFOption func(*PDFReader)

// WithPDFTimeout 覆盖单次解析的超时时间。
func WithPDFTimeout(d time.Duration) PDFOption {
	return func(r *PDFReader) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// NewPDFReader 初始化 PDF 读取器。按页分割模式便于丢弃空页并统计页数。
func NewPDFReader(ctx context.Context, options ...PDFOption) (*PDFReader, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: true,
	})
	if err != nil {
		return nil, fmt.Errorf("创建Eino PDF解析器失败: %w", err)
	}

	reader := &PDFReader{
		parser:  p,
		timeout: defaultPDFTimeout,
	}
	for _, option := range options {
		option(reader)
	}
	return reader, nil
}

// ReadFile 从 PDF 文件路径读取全部文本。
func (r *PDFReader) ReadFile(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("打开PDF文件失败 %s: %w", path, err)
	}
	defer file.Close()

	return r.Read(ctx, file, path)
}

// Read 从 io.Reader 读取 PDF 文本。uri 只用于日志与解析器元数据。
func (r *PDFReader) Read(ctx context.Context, reader io.Reader, uri string) (string, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	docs, err := r.parser.Parse(ctx, reader, einoParser.WithURI(uri))
	if err != nil {
		return "", fmt.Errorf("解析PDF失败 %s: %w", uri, err)
	}

	pages := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc == nil || doc.Content == "" {
			continue
		}
		pages = append(pages, doc.Content)
	}
	text := strings.TrimSpace(strings.Join(pages, "\n"))

	log.Debug().
		Str("uri", uri).
		Int("pages", len(docs)).
		Int("text_length", len(text)).
		Dur("duration", time.Since(startTime)).
		Msg("PDF文本提取完成")

	return text, nil
}
