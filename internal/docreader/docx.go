package docreader

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog/log"
)

// wordprocessingMLNamespace WordprocessingML 主命名空间。
// 解析时按命名空间过滤，避免把绘图、公式等其他命名空间里的同名元素当作正文。
const wordprocessingMLNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// DOCXReader 基于 docx 库的文本读取器。库负责解开 zip 容器并给出
// 文档主体 XML，这里再按文档顺序走一遍 XML 取出段落和表格：
// 先输出所有顶层段落，再输出表格，每行由非空单元格用 " | " 拼接，
// 与常见的表格布局简历兼容。表格单元格内的段落只属于表格部分。
type DOCXReader struct{}

// NewDOCXReader 初始化 DOCX 读取器。
func NewDOCXReader() *DOCXReader {
	return &DOCXReader{}
}

// ReadFile 从 DOCX 文件路径读取全部文本。
// 旧版二进制 .doc 文件不是 zip 容器，会在打开阶段报不可读。
func (r *DOCXReader) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	file, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("打开DOCX文件失败 %s: %w", path, err)
	}
	defer file.Close()

	paragraphs, tables, err := walkDocumentXML(file.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("解析DOCX文档XML失败 %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("paragraphs", len(paragraphs)).
		Int("tables", len(tables)).
		Msg("DOCX文本提取完成")

	return assembleDocxText(paragraphs, tables), nil
}

// assembleDocxText 把段落与表格拼成原始文本：非空段落逐行输出，
// 随后每个表格行输出为 " | " 连接的非空单元格。
func assembleDocxText(paragraphs []string, tables [][][]string) string {
	var b strings.Builder
	for _, para := range paragraphs {
		if strings.TrimSpace(para) == "" {
			continue
		}
		b.WriteString(para)
		b.WriteByte('\n')
	}

	for _, table := range tables {
		for _, row := range table {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				if trimmed := strings.TrimSpace(cell); trimmed != "" {
					cells = append(cells, trimmed)
				}
			}
			if len(cells) == 0 {
				continue
			}
			b.WriteString(strings.Join(cells, " | "))
			b.WriteByte('\n')
		}
	}

	return strings.TrimSpace(b.String())
}

// walkDocumentXML 按文档顺序流式遍历 document.xml，
// 返回顶层段落文本和表格（表格 → 行 → 单元格文本）。
// 段落文本由 w:t 内容构成，w:tab 记为制表符，w:br/w:cr 记为换行；
// 单元格内的多个段落用换行连接。
func walkDocumentXML(content string) ([]string, [][][]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var (
		paragraphs []string
		tables     [][][]string

		table     [][]string
		row       []string
		cellParas []string

		para       strings.Builder
		inPara     bool
		inText     bool
		inCell     bool
		tableDepth int
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Space != wordprocessingMLNamespace {
				continue
			}
			switch t.Name.Local {
			case "tbl":
				tableDepth++
				if tableDepth == 1 {
					table = nil
				}
			case "tr":
				if tableDepth == 1 {
					row = nil
				}
			case "tc":
				if tableDepth == 1 {
					inCell = true
					cellParas = nil
				}
			case "p":
				inPara = true
				para.Reset()
			case "t":
				if inPara {
					inText = true
				}
			case "tab":
				if inPara {
					para.WriteByte('\t')
				}
			case "br", "cr":
				if inPara {
					para.WriteByte('\n')
				}
			}

		case xml.CharData:
			if inText {
				para.Write(t)
			}

		case xml.EndElement:
			if t.Name.Space != wordprocessingMLNamespace {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if !inPara {
					break
				}
				inPara = false
				text := para.String()
				switch {
				case tableDepth == 0:
					paragraphs = append(paragraphs, text)
				case tableDepth == 1 && inCell:
					cellParas = append(cellParas, text)
				}
			case "tc":
				if tableDepth == 1 && inCell {
					inCell = false
					row = append(row, strings.Join(cellParas, "\n"))
				}
			case "tr":
				if tableDepth == 1 {
					table = append(table, row)
				}
			case "tbl":
				if tableDepth == 1 {
					tables = append(tables, table)
				}
				tableDepth--
			}
		}
	}

	return paragraphs, tables, nil
}
