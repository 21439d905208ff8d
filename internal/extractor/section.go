package extractor

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

// masterSectionHeaders 简历中常见的章节标题关键词全集。
// 提取某一章节时，其余关键词构成终止集，用于判断该章节在哪里结束。
var masterSectionHeaders = []string{
	"experience", "education", "skills", "projects", "certifications",
	"awards", "publications", "references", "summary", "objective",
	"work history", "employment", "academic", "achievements", "interests",
	"languages", "volunteer", "activities", "contact", "personal",
	"internship", "training", "courses", "hobbies", "declaration",
}

var (
	educationKeywords = []string{
		"education", "academic background", "qualifications",
		"academics", "educational qualification",
	}
	experienceKeywords = []string{
		"work experience", "professional experience", "experience",
		"employment history", "work history", "employment",
		"career history", "internship", "internships",
	}
	projectKeywords = []string{
		"projects", "personal projects", "academic projects",
		"project work", "key projects", "notable projects",
	}
)

// degreePattern 学历关键词 + 同行至多 120 个字符的上下文，
// 用于没有教育章节标题时的兜底提取。
var degreePattern = regexp.MustCompile(`(?i)(?:B\.?Tech|B\.?E\.?|B\.?Sc\.?|B\.?Com\.?|B\.?A\.?|M\.?Tech|M\.?E\.?|M\.?Sc\.?|M\.?B\.?A\.?|M\.?C\.?A\.?|Ph\.?D\.?|Bachelor|Master|Doctor|Diploma|High School|10th|12th|Secondary|Senior Secondary)[^\n]{0,120}`)

// 章节扫描的结构性阈值：标题行和终止行都应当是短行而非正文句子，
// 连续空行或行数超限说明章节已经结束。
const (
	sectionHeaderMaxLen = 80
	sectionStopMaxLen   = 60
	sectionMaxBlankRun  = 3
	sectionMaxLines     = 40
	degreeFallbackLimit = 6
)

// Education 提取教育章节。没有任何教育类标题时回退到学历关键词扫描，
// 取前若干条去重后的匹配行。
func Education(text string) string {
	content := extractSection(text, educationKeywords)
	if content != types.NotFound {
		return content
	}

	matches := degreePattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return types.NotFound
	}
	if len(matches) > degreeFallbackLimit {
		matches = matches[:degreeFallbackLimit]
	}
	seen := make(map[string]struct{}, len(matches))
	unique := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		unique = append(unique, m)
	}
	return strings.Join(unique, "\n")
}

// Experience 提取工作经历章节。标题变体很多，全部列入目标关键词。
func Experience(text string) string {
	return extractSection(text, experienceKeywords)
}

// Projects 提取项目章节。
func Projects(text string) string {
	return extractSection(text, projectKeywords)
}

// extractSection 通用章节扫描器。逐行查找包含目标关键词的短标题行，
// 进入章节后收集内容行，遇到其他章节的标题、连续空行或行数上限即停止。
// 关键词匹配用子串包含：真实简历的标题写法（"TECHNICAL SKILLS"、
// "Skills & Tools"）远多于精确词形，包含匹配对此更稳健。
func extractSection(text string, keywords []string) string {
	stopKeywords := stopKeywordsFor(keywords)

	var content []string
	inSection := false
	blankRun := 0

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		lineLower := strings.ToLower(stripped)

		if !inSection {
			if containsAny(lineLower, keywords) && len(stripped) < sectionHeaderMaxLen {
				inSection = true
			}
			// 标题行本身不计入内容
			continue
		}

		if containsAny(lineLower, stopKeywords) && len(stripped) < sectionStopMaxLen {
			break
		}

		if stripped == "" {
			blankRun++
			if blankRun >= sectionMaxBlankRun {
				break
			}
		} else {
			blankRun = 0
			content = append(content, stripped)
		}

		if len(content) >= sectionMaxLines {
			break
		}
	}

	if len(content) == 0 {
		return types.NotFound
	}
	return strings.Join(content, "\n")
}

// stopKeywordsFor 返回终止集：标题全集中去掉目标章节自己的关键词。
// 只按精确相等剔除，目标集里不在全集中的变体（如 "employment history"）
// 不影响结果。
func stopKeywordsFor(keywords []string) []string {
	own := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		own[strings.ToLower(kw)] = struct{}{}
	}
	stop := make([]string, 0, len(masterSectionHeaders))
	for _, h := range masterSectionHeaders {
		if _, isOwn := own[h]; !isOwn {
			stop = append(stop, h)
		}
	}
	return stop
}

func containsAny(lineLower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lineLower, kw) {
			return true
		}
	}
	return false
}
