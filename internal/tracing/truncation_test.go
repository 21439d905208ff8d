package tracing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMaskPII 验证不同长度敏感值的掩码规则
func TestMaskPII(t *testing.T) {
	assert.Equal(t, "", MaskPII(""))
	assert.Equal(t, "*", MaskPII("A"))

	// 短名字保留首尾
	assert.Equal(t, "张*", MaskPII("张三"))
	assert.Equal(t, "王*明", MaskPII("王小明"))
	assert.Equal(t, "a**d", MaskPII("abcd"))

	// 长值保留前后各两位
	assert.Equal(t, "13*******78", MaskPII("13812345678"))
	assert.Equal(t, "my***************om", MaskPII("myemail@example.com"))
}

// TestTruncateString 验证截断保留首尾并以省略号连接
func TestTruncateString(t *testing.T) {
	// 未超长时原样返回
	assert.Equal(t, "short", TruncateString("short", 10))

	// maxLength过小时直接截前缀
	assert.Equal(t, "abc", TruncateString("abcdefgh", 3))

	// 常规截断：前后各half个字符
	assert.Equal(t, "ab...ij", TruncateString("abcdefghij", 7))

	// 按rune截断，多字节字符不会被切坏
	assert.Equal(t, "简历...逻辑", TruncateString("简历内容确认截断逻辑", 7))
}

// TestSafeAttributeValue 验证敏感键名触发掩码、普通键名只做截断
func TestSafeAttributeValue(t *testing.T) {
	// 键名包含email应触发掩码
	masked := SafeAttributeValue("user.email", "myemail@example.com", DefaultMaxLength)
	assert.Equal(t, "my***************om", masked)

	// 中文关键字同样生效
	assert.Equal(t, "王*明", SafeAttributeValue("候选人姓名", "王小明", DefaultMaxLength))

	// 普通键名不掩码，只在超长时截断
	long := strings.Repeat("x", 300)
	got := SafeAttributeValue("resume.preview", long, DefaultMaxLength)
	assert.Contains(t, got, "...")
	assert.LessOrEqual(t, len([]rune(got)), DefaultMaxLength)

	// 普通键名且未超长时原样返回
	assert.Equal(t, "golang", SafeAttributeValue("skill.top", "golang", DefaultMaxLength))
}
