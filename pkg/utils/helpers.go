package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// CalculateMD5 computes the MD5 hash of a byte slice.
// 用于上传文件的内容去重和岗位描述的缓存键。
func CalculateMD5(data []byte) string {
	hasher := md5.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}
