// Package textnorm 提供简历原始文本的规范化处理。
// 所有字段提取器都工作在规范化后的文本之上。
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// 连续3个及以上换行压缩为2个（段落间最多保留一个空行）
var multiNewlinePattern = regexp.MustCompile(`\n{3,}`)

// Normalize 规范化提取出的简历文本，确定性的全函数，且满足幂等性:
// Normalize(Normalize(t)) == Normalize(t)。
//
// 处理步骤:
//  1. 将 {tab, LF, CR, 可打印ASCII, U+00A0及以上} 之外的字符替换为单个空格
//  2. 统一 CRLF 与孤立 CR 为 LF
//  3. 连续3个及以上换行压缩为恰好2个
//  4. 去除每行行尾空白
//  5. 连续多个全空行压缩为一个空行（基于行的第二遍处理）
//  6. 去除整个文档的首尾空白
func Normalize(text string) string {
	text = stripUnprintable(text)

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = multiNewlinePattern.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}

	// 压缩重复空行，空行本身保留一个
	cleaned := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		if line == "" {
			if !prevBlank {
				cleaned = append(cleaned, line)
			}
			prevBlank = true
		} else {
			cleaned = append(cleaned, line)
			prevBlank = false
		}
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// stripUnprintable 将控制字符与非法字节替换为空格。
// 保留集合: tab、LF、CR、可打印ASCII (0x20-0x7E)、U+00A0 及以上的Unicode字符。
func stripUnprintable(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			// 非法UTF-8字节同样替换为空格
			b.WriteByte(' ')
			i++
			continue
		}
		if keptRune(r) {
			b.WriteString(text[i : i+size])
		} else {
			b.WriteByte(' ')
		}
		i += size
	}
	return b.String()
}

func keptRune(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return true
	}
	if r >= 0x20 && r <= 0x7E {
		return true
	}
	return r >= 0xA0
}
