package xeui

import "fmt"

// Decode 将文本 s 解码到调用方提供的定长缓冲 dst，单次从左到右扫描完成
// 格式识别、字符校验、分隔符校验与写入。
//
// 设 N = len(dst)，仅接受两种输入形状：
//
//   - len(s) == 2N：裸十六进制，不允许任何分隔符
//   - len(s) == 3N-1：N 组两位十六进制，组间由同一种分隔符（':' 或 '-'）连接
//
// 长度检查先于任何字符检查，因此 [LengthError] 报告的是输入总长度。
// 失败时恰好返回四类解析错误之一（见包文档）；此时 dst 中可能已写入
// 部分字节，内容未定义——[Parse48]/[Parse64] 等包装层保证失败时
// 不向调用方暴露部分结果。
//
// Decode 按宽度 6 与 8 复用同一套逻辑；任何 N >= 1 都成立。
func Decode(dst []byte, s string) error {
	n := len(dst)
	if len(s) != 2*n && len(s) != 3*n-1 {
		return LengthError{Length: len(s)}
	}

	if len(s) == 2*n {
		// 裸格式：N 个紧排的两位十六进制组。
		for i := 0; i < n; i++ {
			b, err := hexPair(s[2*i], s[2*i+1])
			if err != nil {
				return err
			}
			dst[i] = b
		}
		return nil
	}

	// 分隔格式：组偏移为 3i，组后（最后一组除外）跟一个分隔符。
	// sep 记录已确立的分隔符种类，0 表示尚未确立。
	var sep byte
	for i := 0; i < n; i++ {
		off := 3 * i
		b, err := hexPair(s[off], s[off+1])
		if err != nil {
			return err
		}
		dst[i] = b

		if i == n-1 {
			break
		}
		switch c := s[off+2]; {
		case isSeparator(c):
			if sep == 0 {
				sep = c
			} else if c != sep {
				return ErrMixedSeparators
			}
		case hexValue(c) >= 0:
			// 分隔位上出现十六进制数字，即分隔符缺失。
			return ErrSeparatorPlacement
		default:
			return CharError{Char: c}
		}
	}
	return nil
}

// hexPair 将两个十六进制字符解码为一个字节。
// 数字位上出现分隔符按位置错误处理，而非字符错误：
// ':' 与 '-' 是契约承认的字符，只是站错了位置。
func hexPair(hi, lo byte) (byte, error) {
	h := hexValue(hi)
	if h < 0 {
		return 0, pairError(hi)
	}
	l := hexValue(lo)
	if l < 0 {
		return 0, pairError(lo)
	}
	return byte(h<<4 | l), nil
}

func pairError(c byte) error {
	if isSeparator(c) {
		return ErrSeparatorPlacement
	}
	return CharError{Char: c}
}

// Parse48 解析 EUI-48 文本。
// 接受 12 字符裸格式或 17 字符分隔格式，大小写不敏感。
// 失败时返回零值与四类解析错误之一。
func Parse48(s string) (EUI48, error) {
	var a EUI48
	if err := Decode(a.bytes[:], s); err != nil {
		return EUI48{}, err
	}
	return a, nil
}

// Parse64 解析 EUI-64 文本。
// 接受 16 字符裸格式或 23 字符分隔格式，大小写不敏感。
// 失败时返回零值与四类解析错误之一。
func Parse64(s string) (EUI64, error) {
	var a EUI64
	if err := Decode(a.bytes[:], s); err != nil {
		return EUI64{}, err
	}
	return a, nil
}

// MustParse48 类似 [Parse48]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse48(s string) EUI48 {
	a, err := Parse48(s)
	if err != nil {
		panic(fmt.Sprintf("xeui.MustParse48(%q): %v", s, err))
	}
	return a
}

// MustParse64 类似 [Parse64]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse64(s string) EUI64 {
	a, err := Parse64(s)
	if err != nil {
		panic(fmt.Sprintf("xeui.MustParse64(%q): %v", s, err))
	}
	return a
}

// ParseBytes48 从字节切片创建 EUI-48，切片长度必须为 6。
func ParseBytes48(b []byte) (EUI48, error) {
	if len(b) != 6 {
		return EUI48{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(b))
	}
	var a EUI48
	copy(a.bytes[:], b)
	return a, nil
}

// ParseBytes64 从字节切片创建 EUI-64，切片长度必须为 8。
func ParseBytes64(b []byte) (EUI64, error) {
	if len(b) != 8 {
		return EUI64{}, fmt.Errorf("%w: expected 8 bytes, got %d", ErrInvalidLength, len(b))
	}
	var a EUI64
	copy(a.bytes[:], b)
	return a, nil
}
