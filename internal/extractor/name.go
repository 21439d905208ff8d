package extractor

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"resume-parser-go/internal/types"
)

// skipWords 出现在候选姓名中即否决的关键词。
// 命中任何一个说明该行是文档结构（章节标题、联系方式标签）而非人名。
var skipWords = []string{
	"resume", "curriculum", "vitae", "cv", "profile", "summary",
	"objective", "address", "phone", "email", "contact", "mobile",
	"linkedin", "github", "portfolio", "website", "http", "www",
	"education", "experience", "skills", "projects", "certifications",
	"declaration", "references", "date", "place", "@",
}

var (
	// nameLabelPattern 匹配 "Name: xxx"、"Full Name - xxx" 等显式标签行，锚定行首。
	nameLabelPattern = regexp.MustCompile(`(?i)^(?:full\s*)?name\s*[:;\-|]\s*(.+)`)
	// nonNameCharPattern 匹配姓名中不允许的字符，替换为空格。
	nonNameCharPattern = regexp.MustCompile(`[^A-Za-z\s.\-]`)
	// multiSpacePattern 匹配连续空白，折叠为单个空格。
	multiSpacePattern = regexp.MustCompile(`\s{2,}`)
)

// 各策略检查的行窗口与长度上限。
const (
	labelScanLines     = 15
	entityScanLines    = 10
	nameLineScanLines  = 10
	firstLineScanLines = 5
	nameLineMaxLen     = 50
)

type nameInput struct {
	lines      []string
	text       string
	recognizer PersonRecognizer
}

type nameStrategy func(ctx context.Context, in nameInput) string

// nameStrategies 按可靠性降序排列，前面的策略命中即短路。
var nameStrategies = []nameStrategy{
	nameFromLabel,
	nameFromEntities,
	nameFromNameLikeLine,
	nameFromFirstLine,
	nameFromEmail,
}

// Name 从规范化文本中提取候选人姓名。依次尝试五个策略：
// 显式标签、命名实体识别、类姓名行启发式、首行兜底、邮箱前缀推导。
// 全部失败时返回 types.NotFound。
func Name(ctx context.Context, text string, recognizer PersonRecognizer) string {
	in := nameInput{
		lines:      strings.Split(strings.TrimSpace(text), "\n"),
		text:       text,
		recognizer: recognizer,
	}
	for _, strategy := range nameStrategies {
		if name := strategy(ctx, in); name != "" {
			return name
		}
	}
	return types.NotFound
}

// nameFromLabel 在前 15 行里找 "Name: xxx" 形式的显式标签。
func nameFromLabel(_ context.Context, in nameInput) string {
	for _, line := range firstLines(in.lines, labelScanLines) {
		m := nameLabelPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		candidate := cleanNameLine(m[1])
		if isNameLike(candidate) {
			return titleCase(candidate)
		}
	}
	return ""
}

// nameFromEntities 对前 10 行做命名实体识别，取第一个形状合理的人名。
// 识别结果原样返回，不做大小写归一。
func nameFromEntities(ctx context.Context, in nameInput) string {
	if in.recognizer == nil {
		return ""
	}
	block := strings.Join(firstLines(in.lines, entityScanLines), "\n")
	people, err := in.recognizer.People(ctx, block)
	if err != nil {
		log.Debug().Err(err).Msg("人名识别失败，回退到启发式策略")
		return ""
	}
	for _, person := range people {
		candidate := strings.TrimSpace(person)
		words := strings.Fields(candidate)
		if len(words) < 1 || len(words) > 5 {
			continue
		}
		if utf8.RuneCountInString(candidate) < 2 {
			continue
		}
		if containsSkipWord(candidate) {
			continue
		}
		return candidate
	}
	return ""
}

// nameFromNameLikeLine 扫描前 10 行，取第一条清洗后形状像姓名的短行。
func nameFromNameLikeLine(_ context.Context, in nameInput) string {
	for _, line := range firstLines(in.lines, nameLineScanLines) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		candidate := cleanNameLine(line)
		if isNameLike(candidate) && utf8.RuneCountInString(candidate) <= nameLineMaxLen {
			return titleCase(candidate)
		}
	}
	return ""
}

// nameFromFirstLine 兜底：只看前 5 行中的第一条非空行，
// 清洗后丢弃单字符词，剩余 1~5 个词且不含否决词时作为姓名。
// 第一条非空行不合格则整个策略放弃，不再看后续行。
func nameFromFirstLine(_ context.Context, in nameInput) string {
	for _, line := range firstLines(in.lines, firstLineScanLines) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		candidate := cleanNameLine(line)
		var words []string
		for _, w := range strings.Fields(candidate) {
			if utf8.RuneCountInString(w) >= 2 {
				words = append(words, w)
			}
		}
		if len(words) >= 1 && len(words) <= 5 {
			joined := strings.Join(words, " ")
			if !containsSkipWord(joined) {
				return titleCase(joined)
			}
		}
		return ""
	}
	return ""
}

// nameFromEmail 从邮箱本地部分推导姓名，如 john.doe99@x.com 推出 "John Doe"。
func nameFromEmail(_ context.Context, in nameInput) string {
	email := Email(in.text)
	if email == types.NotFound {
		return ""
	}
	local := strings.SplitN(email, "@", 2)[0]
	local = digitUnderscorePattern.ReplaceAllString(local, " ")
	var parts []string
	for _, p := range localSeparatorPattern.Split(local, -1) {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) >= 2 {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	for i, p := range parts {
		parts[i] = capitalizeWord(p)
	}
	return strings.Join(parts, " ")
}

var (
	digitUnderscorePattern = regexp.MustCompile(`[0-9_]`)
	localSeparatorPattern  = regexp.MustCompile(`[.\-+]+`)
)

// cleanNameLine 清洗候选行：非姓名字符替换为空格，折叠连续空白并去首尾空白。
func cleanNameLine(line string) string {
	cleaned := nonNameCharPattern.ReplaceAllString(line, " ")
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// isNameLike 判断清洗后的候选串是否具有人名形状：
// 长度至少 2，由 1~5 个词组成，每个词以字母开头，
// 字母、空格、点、连字符占比不低于 85%，且不含否决词。
func isNameLike(candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	runes := []rune(candidate)
	if len(runes) < 2 {
		return false
	}
	words := strings.Fields(candidate)
	if len(words) < 1 || len(words) > 5 {
		return false
	}
	for _, w := range words {
		if !isASCIILetter(w[0]) {
			return false
		}
	}
	nameChars := 0
	for _, r := range runes {
		if unicode.IsLetter(r) || r == ' ' || r == '.' || r == '-' {
			nameChars++
		}
	}
	if float64(nameChars)/float64(len(runes)) < 0.85 {
		return false
	}
	return !containsSkipWord(candidate)
}

func containsSkipWord(candidate string) bool {
	lower := strings.ToLower(candidate)
	for _, w := range skipWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func firstLines(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
