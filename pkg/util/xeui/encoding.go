package xeui

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出规范格式（小写裸十六进制）。
func (a EUI48) MarshalText() ([]byte, error) {
	return appendHex(make([]byte, 0, 12), a.bytes[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 接受 [Parse48] 支持的两种形状；空输入设置为零值。
// 失败时接收者保持不变，对 nil 接收者返回 [ErrNilReceiver]。
func (a *EUI48) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*a = EUI48{}
		return nil
	}
	parsed, err := Parse48(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出规范格式（小写裸十六进制）。
func (a EUI64) MarshalText() ([]byte, error) {
	return appendHex(make([]byte, 0, 16), a.bytes[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 接受 [Parse64] 支持的两种形状；空输入设置为零值。
// 失败时接收者保持不变，对 nil 接收者返回 [ErrNilReceiver]。
func (a *EUI64) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*a = EUI64{}
		return nil
	}
	parsed, err := Parse64(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的规范格式字符串。
//
// 规范文本仅含 [0-9a-f]，无需 JSON 转义，
// 直接构造带引号的字节切片，避免 [json.Marshal] 的反射开销。
func (a EUI48) MarshalJSON() ([]byte, error) {
	return quoteJSON(a.bytes[:], 12), nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的规范格式字符串。
func (a EUI64) MarshalJSON() ([]byte, error) {
	return quoteJSON(a.bytes[:], 16), nil
}

func quoteJSON(src []byte, textLen int) []byte {
	buf := make([]byte, 0, textLen+2)
	buf = append(buf, '"')
	buf = appendHex(buf, src)
	return append(buf, '"')
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 与空字符串设置为零值，其余接受 [Parse48] 支持的形状。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *EUI48) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	s, zero, err := unquoteJSON(data)
	if err != nil {
		return err
	}
	if zero {
		*a = EUI48{}
		return nil
	}
	parsed, err := Parse48(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 与空字符串设置为零值，其余接受 [Parse64] 支持的形状。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *EUI64) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	s, zero, err := unquoteJSON(data)
	if err != nil {
		return err
	}
	if zero {
		*a = EUI64{}
		return nil
	}
	parsed, err := Parse64(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// unquoteJSON 解出 JSON 字符串值。zero 表示 null 或空字符串。
// null 按精确字节比较（不去除空白），与标准库 [time.Time.UnmarshalJSON] 行为一致。
func unquoteJSON(data []byte) (s string, zero bool, err error) {
	if string(data) == "null" {
		return "", true, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrInvalidChar, err)
	}
	return s, s == "", nil
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]，输出 6 字节原始表示。
func (a EUI48) MarshalBinary() ([]byte, error) {
	b := make([]byte, 6)
	copy(b, a.bytes[:])
	return b, nil
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]，输入必须为 6 字节。
func (a *EUI48) UnmarshalBinary(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseBytes48(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]，输出 8 字节原始表示。
func (a EUI64) MarshalBinary() ([]byte, error) {
	b := make([]byte, 8)
	copy(b, a.bytes[:])
	return b, nil
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]，输入必须为 8 字节。
func (a *EUI64) UnmarshalBinary(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseBytes64(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value 实现 [database/sql/driver.Valuer]，输出规范格式字符串。
func (a EUI48) Value() (driver.Value, error) {
	return a.String(), nil
}

// Value 实现 [database/sql/driver.Valuer]，输出规范格式字符串。
func (a EUI64) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 支持 string、[]byte（文本或 6 字节二进制）、nil 输入。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *EUI48) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*a = EUI48{}
		return nil
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		// 6 字节视为二进制格式（BINARY(6) 列）。
		// 文本格式最短 12 字符，不会与二进制长度冲突。
		if len(v) == 6 {
			copy(a.bytes[:], v)
			return nil
		}
		return a.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidChar, src)
	}
}

// Scan 实现 [database/sql.Scanner]。
// 支持 string、[]byte（文本或 8 字节二进制）、nil 输入。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *EUI64) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*a = EUI64{}
		return nil
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		// 8 字节视为二进制格式（BINARY(8) 列）。
		// 文本格式最短 16 字符，不会与二进制长度冲突。
		if len(v) == 8 {
			copy(a.bytes[:], v)
			return nil
		}
		return a.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidChar, src)
	}
}
