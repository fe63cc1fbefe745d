package xeui

// 十六进制字符表。规范输出始终小写。
const hexLower = "0123456789abcdef"

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
// 大小写不敏感。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}

// isSeparator 报告 c 是否为可识别的分隔符。
// 契约只承认 ':' 与 '-' 两种。
func isSeparator(c byte) bool {
	return c == ':' || c == '-'
}

// appendHex 将 src 的每个字节按高半字节在前追加为两位小写十六进制。
// dst 容量由调用方保证，追加不触发扩容即不产生分配。
func appendHex(dst []byte, src []byte) []byte {
	for _, b := range src {
		dst = append(dst, hexLower[b>>4], hexLower[b&0x0f])
	}
	return dst
}
