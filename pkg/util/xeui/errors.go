package xeui

import (
	"errors"
	"strconv"
)

// 预定义错误变量，支持 errors.Is 判断。
// 解析错误四类互斥，每次失败恰好返回其中一类。
var (
	// ErrInvalidLength 表示输入长度不属于 {2N, 3N-1}。
	// 具体错误值为 [LengthError]，携带实际输入长度。
	ErrInvalidLength = errors.New("xeui: invalid length")

	// ErrInvalidChar 表示出现既非十六进制数字也非分隔符的字符。
	// 具体错误值为 [CharError]，携带违规字符。
	ErrInvalidChar = errors.New("xeui: invalid character")

	// ErrSeparatorPlacement 表示分隔符（或其缺失）未落在
	// 每两位十六进制之后的固定节奏上。
	ErrSeparatorPlacement = errors.New("xeui: separator must be placed after every second character")

	// ErrMixedSeparators 表示同一输入中混用了 ':' 与 '-'。
	ErrMixedSeparators = errors.New("xeui: only one type of separator should be used")

	// ErrNilReceiver 表示对 nil 接收者调用了反序列化方法。
	ErrNilReceiver = errors.New("xeui: nil receiver")
)

// LengthError 是携带实际输入长度的长度错误。
// 通过 errors.Is 匹配 [ErrInvalidLength]，通过 errors.As 取回长度。
type LengthError struct {
	// Length 实际输入长度（字节数）。
	Length int
}

func (e LengthError) Error() string {
	return "xeui: invalid length " + strconv.Itoa(e.Length)
}

func (e LengthError) Unwrap() error { return ErrInvalidLength }

// CharError 是携带违规字符的字符错误。
// 通过 errors.Is 匹配 [ErrInvalidChar]，通过 errors.As 取回字符。
type CharError struct {
	// Char 违规的输入字节。
	Char byte
}

func (e CharError) Error() string {
	return "xeui: invalid character " + strconv.QuoteRune(rune(e.Char))
}

func (e CharError) Unwrap() error { return ErrInvalidChar }
