// Package matcher 计算简历技能与岗位描述的匹配评分。
package matcher

import (
	"math"
	"strings"

	"resume-parser-go/internal/extractor"
	"resume-parser-go/internal/types"
)

// Score 对照岗位描述为简历技能打分。岗位技能用与简历相同的词表检出，
// matched/missing 保持岗位技能列表的顺序（即词表检出的排序结果），
// 百分比 = 匹配数/岗位技能总数 × 100，四舍五入保留一位小数。
// 没有岗位描述、简历没有技能或岗位描述检不出技能时返回零值结果。
func Score(resumeSkills []string, jobDescription string) types.SkillMatch {
	if jobDescription == "" || len(resumeSkills) == 0 {
		return types.EmptySkillMatch()
	}

	return ScoreAgainstSkills(resumeSkills, extractor.Skills(jobDescription))
}

// ScoreAgainstSkills 用已检出的岗位技能列表打分。
// 岗位技能的检出结果可以被缓存（按岗位描述MD5），重复评分时走这里跳过检出。
func ScoreAgainstSkills(resumeSkills []string, jobSkills []string) types.SkillMatch {
	if len(resumeSkills) == 0 || len(jobSkills) == 0 {
		return types.EmptySkillMatch()
	}

	resumeSet := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeSet[strings.ToLower(s)] = struct{}{}
	}

	matched := make([]string, 0, len(jobSkills))
	missing := make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		if _, ok := resumeSet[strings.ToLower(s)]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	percentage := math.Round(float64(len(matched))/float64(len(jobSkills))*100*10) / 10

	return types.SkillMatch{
		Percentage:    percentage,
		MatchedSkills: matched,
		MissingSkills: missing,
		TotalJDSkills: len(jobSkills),
		MatchedCount:  len(matched),
	}
}
