package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/docreader"
	"resume-parser-go/internal/types"
)

type fakePDFReader struct {
	text    string
	err     error
	invoked bool
}

func (f *fakePDFReader) ReadFile(ctx context.Context, path string) (string, error) {
	f.invoked = true
	return f.text, f.err
}

func (f *fakePDFReader) Read(ctx context.Context, reader io.Reader, uri string) (string, error) {
	f.invoked = true
	return f.text, f.err
}

type fakeDOCXReader struct {
	text    string
	err     error
	invoked bool
}

func (f *fakeDOCXReader) ReadFile(ctx context.Context, path string) (string, error) {
	f.invoked = true
	return f.text, f.err
}

func newTestParser(pdf PDFTextReader, docx DOCXTextReader) *ResumeParser {
	return NewResumeParser(&Components{PDFReader: pdf, DOCXReader: docx}, &Settings{})
}

const sampleResumeText = `Alex Johnson
Email: alex.johnson@example.com | Phone: +1 (555) 867-5309
linkedin.com/in/alex-johnson | github.com/alexj

SUMMARY
Seasoned builder of data pipelines.

SKILLS
Python, Go, Docker, Kubernetes, MySQL

EXPERIENCE
Senior Developer at Acme (2020 - Present)
- Shipped services written in Python

EDUCATION
B.Sc. Computer Science, State University, 2016

PROJECTS
resume-parser: a tiny parsing tool`

func TestParseFileCompleteRecord(t *testing.T) {
	docx := &fakeDOCXReader{text: sampleResumeText}
	p := newTestParser(&fakePDFReader{}, docx)

	resume, err := p.ParseFile(context.Background(), "alex.docx", ".docx", "Looking for Python and Terraform expertise")
	require.NoError(t, err)
	require.NotNil(t, resume)

	assert.Equal(t, "Alex Johnson", resume.Name)
	assert.Equal(t, "alex.johnson@example.com", resume.Email)
	assert.Equal(t, "+1 (555) 867-5309", resume.Phone)
	assert.Equal(t, "https://linkedin.com/in/alex-johnson", resume.LinkedIn)
	assert.Equal(t, "https://github.com/alexj", resume.GitHub)

	// github.com 一行同时命中技能词表里的 github 条目
	assert.Equal(t, []string{"Docker", "GO", "Github", "Kubernetes", "Mysql", "Python"}, resume.Skills)

	assert.Equal(t, "B.Sc. Computer Science, State University, 2016", resume.Education)
	assert.Equal(t, "Senior Developer at Acme (2020 - Present)\n- Shipped services written in Python", resume.Experience)
	assert.Equal(t, "resume-parser: a tiny parsing tool", resume.Projects)

	assert.InDelta(t, 50.0, resume.SkillMatch.Percentage, 0.001)
	assert.Equal(t, []string{"Python"}, resume.SkillMatch.MatchedSkills)
	assert.Equal(t, []string{"Terraform"}, resume.SkillMatch.MissingSkills)
	assert.Equal(t, 2, resume.SkillMatch.TotalJDSkills)
	assert.Equal(t, 1, resume.SkillMatch.MatchedCount)

	assert.Contains(t, resume.RawTextPreview, "Alex Johnson")
	assert.NotContains(t, resume.RawTextPreview, "[truncated]")
}

func TestParseFileUnsupportedExtensionBeforeReader(t *testing.T) {
	pdf := &fakePDFReader{text: "不应被读取"}
	docx := &fakeDOCXReader{text: "不应被读取"}
	p := newTestParser(pdf, docx)

	_, err := p.ParseFile(context.Background(), "/路径/不存在.txt", ".txt", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, docreader.ErrUnsupportedFormat)

	// 格式判定发生在任何文件访问之前
	assert.False(t, pdf.invoked, "PDF读取器不应被调用")
	assert.False(t, docx.invoked, "DOCX读取器不应被调用")
}

func TestParseFileDispatchByExtension(t *testing.T) {
	tests := []struct {
		name     string
		ext      string
		wantPDF  bool
		wantDOCX bool
	}{
		{"pdf走PDF读取器", ".pdf", true, false},
		{"docx走DOCX读取器", ".docx", false, true},
		{"旧版doc也走DOCX读取器", ".doc", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdf := &fakePDFReader{text: sampleResumeText}
			docx := &fakeDOCXReader{text: sampleResumeText}
			p := newTestParser(pdf, docx)

			_, err := p.ParseFile(context.Background(), "resume"+tt.ext, tt.ext, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantPDF, pdf.invoked)
			assert.Equal(t, tt.wantDOCX, docx.invoked)
		})
	}
}

func TestParseFileEmptyDocument(t *testing.T) {
	docx := &fakeDOCXReader{text: "   \n\t "}
	p := newTestParser(&fakePDFReader{}, docx)

	_, err := p.ParseFile(context.Background(), "blank.docx", ".docx", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, docreader.ErrEmptyDocument)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "extract", parseErr.Op)
	assert.Equal(t, "blank.docx", parseErr.File)
}

func TestParseFileReadFailure(t *testing.T) {
	pdf := &fakePDFReader{err: errors.New("交叉引用表损坏")}
	p := newTestParser(pdf, &fakeDOCXReader{})

	_, err := p.ParseFile(context.Background(), "bad.pdf", ".pdf", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadDocumentFailed)
	assert.Contains(t, err.Error(), "交叉引用表损坏")
}

// 读取阶段的超时不包装成读取错误，调用方可以直接识别
func TestParseFileTimeoutPassthrough(t *testing.T) {
	pdf := &fakePDFReader{err: fmt.Errorf("解析PDF失败: %w", context.DeadlineExceeded)}
	p := newTestParser(pdf, &fakeDOCXReader{})

	_, err := p.ParseFile(context.Background(), "slow.pdf", ".pdf", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrReadDocumentFailed)
}

func TestParseFileNoJobDescription(t *testing.T) {
	docx := &fakeDOCXReader{text: sampleResumeText}
	p := newTestParser(&fakePDFReader{}, docx)

	resume, err := p.ParseFile(context.Background(), "alex.docx", ".docx", "")
	require.NoError(t, err)

	assert.Equal(t, types.EmptySkillMatch(), resume.SkillMatch)
}

func TestParseFilePreviewTruncation(t *testing.T) {
	long := strings.Repeat("résumé snippet ", 80)
	docx := &fakeDOCXReader{text: long}
	p := newTestParser(&fakePDFReader{}, docx)

	resume, err := p.ParseFile(context.Background(), "long.docx", ".docx", "")
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(resume.RawTextPreview, truncationMarker))
	// 预算按字符计，多字节字符不会被截成半个
	assert.Equal(t, DefaultPreviewLimit+utf8.RuneCountInString(truncationMarker),
		utf8.RuneCountInString(resume.RawTextPreview))
	assert.Equal(t, types.NotFound, resume.Name)
}

func TestPreviewText(t *testing.T) {
	assert.Equal(t, "abc", previewText("abc", 3))
	assert.Equal(t, "abc"+truncationMarker, previewText("abcd", 3))
	assert.Equal(t, "中文简", previewText("中文简", 3))
	assert.Equal(t, "中文简"+truncationMarker, previewText("中文简历", 3))
}

func TestNewResumeParserDefaults(t *testing.T) {
	p := NewResumeParser(nil, nil)
	require.NotNil(t, p)
	assert.Equal(t, DefaultPreviewLimit, p.Settings.PreviewLimit)
	assert.NotNil(t, p.Settings.Logger)
}

func TestCreateParserRequiresReader(t *testing.T) {
	_, err := CreateParser(context.Background(), nil, nil)
	assert.Error(t, err)

	p, err := CreateParser(context.Background(),
		[]ComponentOpt{WithcompDocxreader(&fakeDOCXReader{})},
		[]SettingOpt{WithsetPreviewlimit(100)},
	)
	require.NoError(t, err)
	assert.Equal(t, 100, p.Settings.PreviewLimit)
}
