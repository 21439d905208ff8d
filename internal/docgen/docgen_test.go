package docgen

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentBytesContainsRequiredParts(t *testing.T) {
	doc := New().AddParagraph("hello")
	data, err := doc.Bytes()
	require.NoError(t, err)

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make(map[string]bool, len(archive.File))
	for _, f := range archive.File {
		names[f.Name] = true
	}
	for _, required := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
	} {
		assert.True(t, names[required], "缺少部件 %s", required)
	}
}

func TestDocumentXMLEscapesText(t *testing.T) {
	doc := New().AddParagraph(`R&D <lead> "quotes"`)
	data, err := doc.Bytes()
	require.NoError(t, err)

	body := readPart(t, data, "word/document.xml")
	assert.Contains(t, body, "R&amp;D")
	assert.Contains(t, body, "&lt;lead&gt;")
	assert.NotContains(t, body, "<lead>")
}

func TestDocumentXMLTableStructure(t *testing.T) {
	doc := New()
	doc.AddParagraph("intro")
	doc.AddTable([][]string{{"a", "b"}, {"c"}})

	data, err := doc.Bytes()
	require.NoError(t, err)
	body := readPart(t, data, "word/document.xml")

	assert.Equal(t, 1, strings.Count(body, "<w:tbl>"))
	assert.Equal(t, 2, strings.Count(body, "<w:tr>"))
	assert.Equal(t, 3, strings.Count(body, "<w:tc>"))
	// 段落在表格之前
	assert.Less(t, strings.Index(body, "intro"), strings.Index(body, "<w:tbl>"))
}

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range archive.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatalf("部件 %s 不存在", name)
	return ""
}
