// Package docgen 生成最小可用的 DOCX 文件，供样例简历生成和读取器测试使用。
// 只产出文本内容所需的最小部件集（内容类型清单、包关系、文档关系、文档主体），
// 不支持样式、图片等排版特性。
package docgen

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`</Types>`

	packageRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
		`</Relationships>`

	// documentRelsXML 文档级关系表。内容为空但部件必须存在，
	// 部分读取库把它当作必备部件。
	documentRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`
)

// Document 待写出的文档内容：顺序排列的段落，之后是表格。
type Document struct {
	paragraphs []string
	tables     [][][]string
}

// New 创建空文档。
func New() *Document {
	return &Document{}
}

// AddParagraph 追加一个段落。空串产生空段落，读取时会被过滤。
func (d *Document) AddParagraph(text string) *Document {
	d.paragraphs = append(d.paragraphs, text)
	return d
}

// AddTable 追加一个表格，rows 为行到单元格文本的二维切片。
func (d *Document) AddTable(rows [][]string) *Document {
	d.tables = append(d.tables, rows)
	return d
}

// Save 将文档写入指定路径。
func (d *Document) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建DOCX文件失败 %s: %w", path, err)
	}
	defer file.Close()

	if err := d.write(file); err != nil {
		return fmt.Errorf("写入DOCX文件失败 %s: %w", path, err)
	}
	return nil
}

// Bytes 返回序列化后的 DOCX 字节。
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) write(w io.Writer) error {
	archive := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", d.documentXML()},
	}
	for _, part := range parts {
		entry, err := archive.Create(part.name)
		if err != nil {
			return err
		}
		if _, err := entry.Write([]byte(part.content)); err != nil {
			return err
		}
	}

	return archive.Close()
}

func (d *Document) documentXML() string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, text := range d.paragraphs {
		writeParagraph(&b, text)
	}

	for _, rows := range d.tables {
		b.WriteString(`<w:tbl>`)
		for _, row := range rows {
			b.WriteString(`<w:tr>`)
			for _, cell := range row {
				b.WriteString(`<w:tc>`)
				writeParagraph(&b, cell)
				b.WriteString(`</w:tc>`)
			}
			b.WriteString(`</w:tr>`)
		}
		b.WriteString(`</w:tbl>`)
	}

	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func writeParagraph(b *strings.Builder, text string) {
	b.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
	_ = xml.EscapeText(b, []byte(text))
	b.WriteString(`</w:t></w:r></w:p>`)
}
