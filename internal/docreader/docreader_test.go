package docreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		ext  string
		want Format
	}{
		{".pdf", FormatPDF},
		{"pdf", FormatPDF},
		{".PDF", FormatPDF},
		{".docx", FormatDOCX},
		{".DocX", FormatDOCX},
		{".doc", FormatDOC},
	}
	for _, tt := range tests {
		got, err := ResolveFormat(tt.ext)
		assert.NoError(t, err, "扩展名 %q 应被识别", tt.ext)
		assert.Equal(t, tt.want, got, "扩展名 %q 的格式判定不符", tt.ext)
	}
}

func TestResolveFormatUnsupported(t *testing.T) {
	for _, ext := range []string{".txt", ".png", "", ".pdf.exe"} {
		_, err := ResolveFormat(ext)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "扩展名 %q 应判定为不支持", ext)
	}
}
