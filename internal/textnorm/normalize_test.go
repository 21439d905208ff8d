package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLineEndings(t *testing.T) {
	input := "line1\r\nline2\rline3\nline4"
	result := Normalize(input)
	assert.Equal(t, "line1\nline2\nline3\nline4", result, "CRLF和孤立CR都应统一为LF")
}

func TestNormalizeCollapsesNewlineRuns(t *testing.T) {
	input := "para1\n\n\n\n\npara2"
	result := Normalize(input)
	assert.Equal(t, "para1\n\npara2", result, "3个及以上连续换行应压缩为2个")
}

func TestNormalizeStripsControlCharacters(t *testing.T) {
	input := "hello\x00world\x07 end"
	result := Normalize(input)
	assert.Equal(t, "hello world  end", result, "控制字符应替换为空格")
}

func TestNormalizeReplacesControlCharsWithSpace(t *testing.T) {
	result := Normalize("ab\x01cd")
	assert.Equal(t, "ab cd", result, "不可打印字符应替换为单个空格")

	result = Normalize("tab\tkept")
	assert.Equal(t, "tab\tkept", result, "制表符应保留")
}

func TestNormalizeKeepsHighUnicode(t *testing.T) {
	input := "José García — Résumé"
	result := Normalize(input)
	assert.Equal(t, input, result, "U+00A0及以上的字符应原样保留")
}

func TestNormalizeTrimsTrailingWhitespacePerLine(t *testing.T) {
	input := "line1   \nline2\t\t\nline3"
	result := Normalize(input)
	assert.Equal(t, "line1\nline2\nline3", result, "每行行尾空白应去除")
}

func TestNormalizeCollapsesBlankLineRuns(t *testing.T) {
	// 步骤3的正则看不到带空白的"空行"，步骤5按行处理后仍应只留一个空行
	input := "a\n  \n\t\n   \nb"
	result := Normalize(input)
	assert.Equal(t, "a\n\nb", result, "仅含空白的连续空行应压缩为一个空行")
}

func TestNormalizeTrimsDocumentEnds(t *testing.T) {
	input := "\n\n  content  \n\n\n"
	result := Normalize(input)
	assert.Equal(t, "content", result, "文档首尾空白应去除")
}

func TestNormalizeInvalidUTF8(t *testing.T) {
	input := "abc\xff\xfedef"
	result := Normalize(input)
	assert.Equal(t, "abc  def", result, "非法UTF-8字节应替换为空格")
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"a\r\nb\rc\n\n\n\nd",
		"  leading and trailing  \n\n\n",
		"tab\there\x00and\x1fcontrol",
		"multi\n  \n \n\nblank  \t\nlines",
		"José García\n🚀 emoji line\n\n\nend",
		"Name: John Doe\nEmail: john@example.com\n\nSkills\nPython, Go",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "规范化应满足幂等性: %q", in)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""), "空输入应返回空串")
	assert.Equal(t, "", Normalize("   \n\t\n  "), "纯空白输入应返回空串")
}
