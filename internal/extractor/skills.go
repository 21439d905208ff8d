package extractor

import (
	"sort"
	"strings"

	"resume-parser-go/internal/vocabulary"
)

// Skills 在文本中检测词表技能。匹配对大小写不敏感，按词表声明顺序进行；
// 短条目要求字母边界，避免 "go" 命中 "mongodb" 这类误报，长条目用子串匹配。
// 结果按展示形式做大小写不敏感去重（保留先出现者），最后按字典序排序。
func Skills(text string) []string {
	textLower := strings.ToLower(text)
	seen := make(map[string]struct{}, 16)
	found := make([]string, 0, 16)

	for _, skill := range vocabulary.Skills {
		var hit bool
		if len(skill.Canon) <= vocabulary.ShortSkillMaxLen {
			hit = containsWithLetterBoundary(textLower, skill.Canon)
		} else {
			hit = strings.Contains(textLower, skill.Canon)
		}
		if !hit {
			continue
		}
		key := strings.ToLower(skill.Display)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		found = append(found, skill.Display)
	}

	sort.Strings(found)
	return found
}

// containsWithLetterBoundary 判断 sub 是否作为字母边界隔离的片段出现在 s 中：
// 匹配位置的前后都不能是 ASCII 字母。数字和符号不算障碍：
// "c" 在 "c99" 中命中，在 "react" 中不会。
func containsWithLetterBoundary(s, sub string) bool {
	if sub == "" {
		return false
	}
	for start := 0; start+len(sub) <= len(s); {
		idx := strings.Index(s[start:], sub)
		if idx < 0 {
			return false
		}
		pos := start + idx
		end := pos + len(sub)
		beforeOK := pos == 0 || !isASCIILetter(s[pos-1])
		afterOK := end == len(s) || !isASCIILetter(s[end])
		if beforeOK && afterOK {
			return true
		}
		start = pos + 1
	}
	return false
}
