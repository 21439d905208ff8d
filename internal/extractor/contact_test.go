package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-parser-go/internal/types"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "普通邮箱",
			text: "Reach me at john.doe@example.com for details.",
			want: "john.doe@example.com",
		},
		{
			name: "多个邮箱取第一个",
			text: "first@example.com, backup: second@example.org",
			want: "first@example.com",
		},
		{
			name: "带加号和子域名",
			text: "mail: test.user+tag@sub.domain.co.uk",
			want: "test.user+tag@sub.domain.co.uk",
		},
		{
			name: "顶级域名过长不匹配",
			text: "bogus address user@host.toolongtld",
			want: types.NotFound,
		},
		{
			name: "没有邮箱",
			text: "no contact information here",
			want: types.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Email(tt.text), "邮箱提取结果不符合预期")
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "带国家码和括号",
			text: "Call +1 (555) 867-5309 anytime.",
			want: "+1 (555) 867-5309",
		},
		{
			name: "美式括号格式",
			text: "Phone: (555) 123-4567",
			want: "(555) 123-4567",
		},
		{
			name: "连字符分隔",
			text: "tel 555-123-4567",
			want: "555-123-4567",
		},
		{
			name: "印度十位手机号",
			text: "mobile 9876543210 available",
			want: "9876543210",
		},
		{
			name: "制表符折叠为单个空格",
			text: "Call +1\t(555) 867-5309 anytime.",
			want: "+1 (555) 867-5309",
		},
		{
			name: "位数不足被拒绝",
			text: "Call +1 2 345 6789 today",
			want: types.NotFound,
		},
		{
			name: "无效候选后回退到后续模式",
			text: "Call +1 2 345 6789 or 9876543210",
			want: "9876543210",
		},
		{
			name: "邮编和年份不是电话",
			text: "zip 12345, year 2023",
			want: types.NotFound,
		},
		{
			name: "空文本",
			text: "",
			want: types.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.text), "电话提取结果不符合预期")
		})
	}
}

func TestLinkedIn(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "缺少scheme时补全https",
			text: "www.linkedin.com/in/alex-johnson-dev",
			want: "https://www.linkedin.com/in/alex-johnson-dev",
		},
		{
			name: "保留子路径和查询串并去掉尾部标点",
			text: "see https://www.linkedin.com/in/jdoe/details/experience?src=cv.",
			want: "https://www.linkedin.com/in/jdoe/details/experience?src=cv",
		},
		{
			name: "括号内的地址",
			text: "(linkedin.com/in/jane_doe)",
			want: "https://linkedin.com/in/jane_doe",
		},
		{
			name: "没有LinkedIn",
			text: "only github.com/someone here",
			want: types.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LinkedIn(tt.text), "LinkedIn提取结果不符合预期")
		})
	}
}

func TestGitHub(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "完整URL",
			text: "code at https://github.com/alexjdev",
			want: "https://github.com/alexjdev",
		},
		{
			name: "仓库子路径并去掉尾部句点",
			text: "See github.com/alexjdev/parser-demo.",
			want: "https://github.com/alexjdev/parser-demo",
		},
		{
			name: "标签写法回退",
			text: "GitHub: alex-codes",
			want: "https://github.com/alex-codes",
		},
		{
			name: "竖线分隔的标签",
			text: "GitHub | alexjdev",
			want: "https://github.com/alexjdev",
		},
		{
			name: "URL优先于标签",
			text: "GitHub: github.com/real-handle",
			want: "https://github.com/real-handle",
		},
		{
			name: "没有GitHub",
			text: "see linkedin.com/in/someone",
			want: types.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GitHub(tt.text), "GitHub提取结果不符合预期")
		})
	}
}
