package extractor

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

var (
	// emailPattern 宽松的 RFC 风格邮箱匹配，TLD 限定 2~7 个字母。
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,7}\b`)

	// phonePatterns 按特异性降序排列的电话格式。靠前的模式形状更明确，
	// 断言更宽松的通用模式放在最后兜底。
	phonePatterns = []*regexp.Regexp{
		// +91 98765 43210 / +1 (555) 123-4567 等带国家码的格式
		regexp.MustCompile(`\+\d{1,3}[\s\-.]?\(?\d{1,4}\)?[\s\-.]?\d{3,5}[\s\-.]?\d{4,6}`),
		// (555) 123-4567
		regexp.MustCompile(`\(\d{3}\)[\s\-.]?\d{3}[\s\-.]?\d{4}`),
		// 555-123-4567 / 555.123.4567
		regexp.MustCompile(`\b\d{3}[\s\-.]\d{3}[\s\-.]\d{4}\b`),
		// 印度手机号：6-9 开头的 10 位数字
		regexp.MustCompile(`\b[6-9]\d{9}\b`),
		// 通用 10~15 位数字
		regexp.MustCompile(`\b\d{10,15}\b`),
	}

	phoneSpacePattern = regexp.MustCompile(`\s+`)
	nonDigitPattern   = regexp.MustCompile(`\D`)

	// linkedinPattern 匹配完整的 LinkedIn 个人主页 URL，
	// 保留子路径和查询串，避免截断 linkedin.com/in/username-123abc 这类地址。
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w\-.%]+(?:/[\w\-.%]*)*(?:\?[^\s<>"]*)?`)

	// githubURLPattern 匹配 GitHub 主页 URL。用户名限定 39 字符以内，
	// 与 GitHub 的账户名规则一致。
	githubURLPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9](?:[A-Za-z0-9\-]{0,38})(?:/[\w\-.%]*)*(?:\?[^\s<>"]*)?`)

	// githubLabelPattern 兜底匹配 "GitHub: username" 这类纯标签写法。
	githubLabelPattern = regexp.MustCompile(`(?i)github\s*[:\-|]\s*([A-Za-z0-9][A-Za-z0-9\-]{0,38})`)
)

// phoneMinDigits 候选号码的最低位数。位数不足说明该模式匹到了
// 无关数字（邮编、年份区间），放弃并尝试下一个模式。
const phoneMinDigits = 10

// Email 返回文本中的第一个邮箱地址，找不到时返回 types.NotFound。
func Email(text string) string {
	if m := emailPattern.FindString(text); m != "" {
		return m
	}
	return types.NotFound
}

// Phone 依次尝试各电话模式，取首个匹配并折叠内部空白；
// 去掉非数字后不足 10 位的候选被丢弃，继续尝试下一个模式。
func Phone(text string) string {
	for _, pattern := range phonePatterns {
		m := pattern.FindString(text)
		if m == "" {
			continue
		}
		phone := strings.TrimSpace(phoneSpacePattern.ReplaceAllString(m, " "))
		digits := nonDigitPattern.ReplaceAllString(phone, "")
		if len(digits) >= phoneMinDigits {
			return phone
		}
	}
	return types.NotFound
}

// LinkedIn 返回文本中第一个 LinkedIn 个人主页 URL。
// 去掉尾部标点，缺少 scheme 时补全 https:// 前缀。
func LinkedIn(text string) string {
	m := linkedinPattern.FindString(text)
	if m == "" {
		return types.NotFound
	}
	return canonicalURL(m)
}

// GitHub 返回文本中第一个 GitHub 主页 URL；没有完整 URL 时
// 回退到 "GitHub: username" 标签写法，按用户名拼出主页地址。
func GitHub(text string) string {
	if m := githubURLPattern.FindString(text); m != "" {
		return canonicalURL(m)
	}
	if m := githubLabelPattern.FindStringSubmatch(text); m != nil {
		return "https://github.com/" + m[1]
	}
	return types.NotFound
}

// canonicalURL 去掉尾部标点并保证 https:// 前缀。
func canonicalURL(raw string) string {
	url := strings.TrimRight(strings.TrimSpace(raw), ".,;)")
	if !strings.HasPrefix(strings.ToLower(url), "http") {
		url = "https://" + url
	}
	return url
}
