package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCalculateMD5 验证MD5十六进制值与已知结果一致
func TestCalculateMD5(t *testing.T) {
	// 空输入的MD5是固定值
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", CalculateMD5(nil))
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", CalculateMD5([]byte{}))

	// 经典测试向量
	assert.Equal(t, "9e107d9d372bb6826bd81d3542a419d6", CalculateMD5([]byte("The quick brown fox jumps over the lazy dog")))

	// 相同内容恒定，不同内容不同
	assert.Equal(t, CalculateMD5([]byte("resume")), CalculateMD5([]byte("resume")))
	assert.NotEqual(t, CalculateMD5([]byte("resume")), CalculateMD5([]byte("resume ")))
}
