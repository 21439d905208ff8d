package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeys(t *testing.T) {
	uuid := "0190e7a2-5c5e-7d3a-b111-222233334444"

	assert.Equal(t, "uploads/"+uuid+".pdf", ResumeObjectKey(uuid, ".pdf"))
	assert.Equal(t, "uploads/"+uuid+".docx", ResumeObjectKey(uuid, ".docx"))
	assert.Equal(t, "text/"+uuid+".txt", ParsedTextObjectKey(uuid))
}

func TestGetContentType(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".pdf", "application/pdf"},
		{".doc", "application/msword"},
		{".docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{".txt", "text/plain"},
		{".xyz", "application/octet-stream"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, getContentType(tt.ext), "扩展名 %s", tt.ext)
	}
}
