package extractor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-parser-go/internal/types"
)

func TestEducationSection(t *testing.T) {
	text := strings.Join([]string{
		"John Doe",
		"EDUCATION",
		"B.Tech in CS, IIT Delhi (2019)",
		"GPA 8.9",
		"EXPERIENCE",
		"Acme Corp",
	}, "\n")

	got := Education(text)
	assert.Equal(t, "B.Tech in CS, IIT Delhi (2019)\nGPA 8.9", got, "应收集标题后的内容行并在下一章节标题处停止")
}

func TestSectionStopSetExcludesOwnKeywords(t *testing.T) {
	// "employment" 是经历章节自己的关键词，出现在内容里不应终止扫描。
	text := strings.Join([]string{
		"WORK EXPERIENCE",
		"Software Engineer at Acme",
		"Employment type: full time",
		"EDUCATION",
		"B.Tech",
	}, "\n")

	got := Experience(text)
	assert.Equal(t, "Software Engineer at Acme\nEmployment type: full time", got, "目标章节自己的关键词不应出现在终止集中")
}

func TestSectionStopsOnBlankRun(t *testing.T) {
	text := "PROJECTS\nParser engine\n\n\n \nAnother line"
	got := Projects(text)
	assert.Equal(t, "Parser engine", got, "连续三个空行应终止章节")
}

func TestSectionLineCap(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("PROJECTS\n")
	for i := 1; i <= 45; i++ {
		fmt.Fprintf(&sb, "item %d\n", i)
	}

	got := Projects(sb.String())
	assert.Len(t, strings.Split(got, "\n"), 40, "章节内容应被截断到行数上限")
}

func TestSectionHeaderMustBeShort(t *testing.T) {
	// 含关键词但超过 80 字符的行是正文句子而非标题，不应进入章节。
	longLine := "My experience over the last decade has taught me that building reliable software is mostly about discipline"
	text := longLine + "\nEDUCATION\nB.Tech"
	assert.Equal(t, types.NotFound, Experience(text), "长句子不应被当作章节标题")
}

func TestSectionLongStopLineDoesNotBreak(t *testing.T) {
	text := strings.Join([]string{
		"EXPERIENCE",
		"Led a team delivering an education-technology platform used by thirty-furthermore schools",
		"EDUCATION",
		"B.Tech",
	}, "\n")

	got := Experience(text)
	assert.Equal(t, "Led a team delivering an education-technology platform used by thirty-furthermore schools", got, "超过 60 字符的行即使含终止关键词也应计入内容")
}

func TestEducationFallbackToDegreePatterns(t *testing.T) {
	text := strings.Join([]string{
		"John Doe",
		"B.Tech in Computer Science, IIT Delhi 2015-2019",
		"Worked at Acme",
		"M.Sc. Applied Statistics",
	}, "\n")

	got := Education(text)
	assert.Equal(t, "B.Tech in Computer Science, IIT Delhi 2015-2019\nM.Sc. Applied Statistics", got, "没有章节标题时应回退到学历关键词扫描")
}

func TestEducationFallbackCap(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("John Doe\n")
	for i := 1; i <= 8; i++ {
		fmt.Fprintf(&sb, "Diploma in Course %d\n", i)
	}

	got := Education(sb.String())
	assert.Len(t, strings.Split(got, "\n"), 6, "学历兜底最多保留前六条匹配")
}

func TestEducationFallbackDedup(t *testing.T) {
	text := "Bachelor of Arts\nBachelor of Arts\nMaster of Science"
	got := Education(text)
	assert.Equal(t, "Bachelor of Arts\nMaster of Science", got, "学历兜底应保序去重")
}

func TestSectionNotFound(t *testing.T) {
	text := "just some introductory text\nnothing structured here"
	assert.Equal(t, types.NotFound, Experience(text), "没有章节标题时应返回哨兵值")
	assert.Equal(t, types.NotFound, Projects(text), "没有章节标题时应返回哨兵值")
}
