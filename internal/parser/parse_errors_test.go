package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/docreader"
)

func TestParseErrorIsAndUnwrap(t *testing.T) {
	err := NewReadError("resume.pdf", "文件头损坏")

	assert.ErrorIs(t, err, ErrReadDocumentFailed)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "read", parseErr.Op)
	assert.Equal(t, "resume.pdf", parseErr.File)
	assert.Equal(t, ErrReadDocumentFailed, errors.Unwrap(err))
}

func TestParseErrorMessageFormat(t *testing.T) {
	withDetail := NewReadError("a.pdf", "细节")
	assert.Contains(t, withDetail.Error(), "操作:read")
	assert.Contains(t, withDetail.Error(), "a.pdf")
	assert.Contains(t, withDetail.Error(), "细节")

	withoutDetail := NewEmptyDocumentError("b.docx")
	assert.Contains(t, withoutDetail.Error(), "操作:extract")
	assert.NotContains(t, withoutDetail.Error(), ": 细节")
}

func TestFormatErrorCarriesSentinel(t *testing.T) {
	_, cause := docreader.ResolveFormat(".txt")
	require.Error(t, cause)

	err := NewFormatError("x.txt", cause)
	assert.ErrorIs(t, err, docreader.ErrUnsupportedFormat)
}
