package xeui

// Format 定义文本输出风格。规范输出始终小写，
// 契约不承认大写输出，因此没有 Upper 变体。
type Format uint8

const (
	// FormatBare 规范格式：无分隔符，小写，定长 12/16 字符。
	FormatBare Format = iota
	// FormatColon 冒号分隔，小写：4d:7e:54:97:2e:ef
	FormatColon
	// FormatDash 短线分隔，小写：4d-7e-54-97-2e-ef
	FormatDash
)

// String 返回规范文本形式（小写裸十六进制，12 字符）。
func (a EUI48) String() string {
	return formatBare(a.bytes[:])
}

// String 返回规范文本形式（小写裸十六进制，16 字符）。
func (a EUI64) String() string {
	return formatBare(a.bytes[:])
}

// FormatString 按指定风格返回文本形式。
// 未知风格按 [FormatBare] 处理。
func (a EUI48) FormatString(f Format) string {
	return formatString(a.bytes[:], f)
}

// FormatString 按指定风格返回文本形式。
// 未知风格按 [FormatBare] 处理。
func (a EUI64) FormatString(f Format) string {
	return formatString(a.bytes[:], f)
}

func formatString(src []byte, f Format) string {
	switch f {
	case FormatColon:
		return formatSep(src, ':')
	case FormatDash:
		return formatSep(src, '-')
	default:
		return formatBare(src)
	}
}

// formatBare 渲染裸格式。定长栈缓冲覆盖两种宽度（最长 16 字符），
// 除结果字符串本身外无分配。
func formatBare(src []byte) string {
	var buf [16]byte
	return string(appendHex(buf[:0], src))
}

// formatSep 渲染分隔格式（最长 8*3-1 = 23 字符）。
func formatSep(src []byte, sep byte) string {
	var buf [23]byte
	b := buf[:0]
	for i, x := range src {
		if i > 0 {
			b = append(b, sep)
		}
		b = append(b, hexLower[x>>4], hexLower[x&0x0f])
	}
	return string(b)
}
