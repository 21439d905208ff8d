// Package extractor 实现对规范化简历文本的字段提取。
// 每个提取器都是规范化文本的纯函数，失败时返回哨兵值而非错误，
// 因此稀疏或畸形的简历仍能得到完整的部分填充记录。
// 所有正则在包加载时编译一次，跨调用复用。
package extractor

import (
	"context"
	"strings"
	"unicode"
)

// PersonRecognizer 人名识别能力。该能力是可选的：缺失（未启用或加载失败）
// 只会跳过对应的姓名提取策略，不构成错误。
// 返回文本中按出现顺序排列的人名。
type PersonRecognizer interface {
	People(ctx context.Context, text string) ([]string, error)
}

// titleCase 逐词首字母大写。字母序列中第一个字母大写、其余小写，
// 非字母字符（空格、点、连字符、撇号、数字）都会重新开启一个词。
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// capitalizeWord 首字母大写，其余全部小写。
func capitalizeWord(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	b.WriteRune(unicode.ToUpper(runes[0]))
	for _, r := range runes[1:] {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
