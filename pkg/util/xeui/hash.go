package xeui

import "github.com/cespare/xxhash/v2"

// Hash64 返回标识符原始字节的 xxhash64 摘要。
// 摘要只依赖字节序列，与文本表示无关；
// 供定容哈希结构（如 xeuimap）做确定性的桶选择。
func (a EUI48) Hash64() uint64 {
	return xxhash.Sum64(a.bytes[:])
}

// Hash64 返回标识符原始字节的 xxhash64 摘要。
// 摘要只依赖字节序列，与文本表示无关。
func (a EUI64) Hash64() uint64 {
	return xxhash.Sum64(a.bytes[:])
}
