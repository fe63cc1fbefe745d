package xeui

import "encoding/binary"

// EUI48 表示 48 位扩展唯一标识符（EUI-48/MAC-48）。
//
// EUI48 是不可变值类型：
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
//   - 零值是合法的全零标识符（见包文档"零值语义"）
type EUI48 struct {
	// 使用固定大小数组而非切片：值语义、可比较、栈分配。
	bytes [6]byte
}

// EUI64 表示 64 位扩展唯一标识符（EUI-64）。
// 语义与 [EUI48] 一致，宽度为 8 字节。
type EUI64 struct {
	bytes [8]byte
}

// From6 从 6 字节数组创建 EUI-48，大端序。
func From6(b [6]byte) EUI48 {
	return EUI48{bytes: b}
}

// From8 从 8 字节数组创建 EUI-64，大端序。
func From8(b [8]byte) EUI64 {
	return EUI64{bytes: b}
}

// FromUint48 从 64 位无符号整数的低 48 位创建 EUI-48。
// 高 16 位被忽略，最高有效字节在前。
func FromUint48(v uint64) EUI48 {
	return EUI48{bytes: [6]byte{
		byte(v >> 40),
		byte(v >> 32),
		byte(v >> 24),
		byte(v >> 16),
		byte(v >> 8),
		byte(v),
	}}
}

// FromUint64 从 64 位无符号整数创建 EUI-64，大端序。
func FromUint64(v uint64) EUI64 {
	var a EUI64
	binary.BigEndian.PutUint64(a.bytes[:], v)
	return a
}

// Bytes 返回 EUI-48 的字节表示（长度始终为 6）。
// 返回副本，修改不影响原值。
func (a EUI48) Bytes() [6]byte {
	return a.bytes
}

// Bytes 返回 EUI-64 的字节表示（长度始终为 8）。
// 返回副本，修改不影响原值。
func (a EUI64) Bytes() [8]byte {
	return a.bytes
}

// Uint64 返回标识符的整数表示，零扩展到 64 位。
// 与 [FromUint48] 互逆。
func (a EUI48) Uint64() uint64 {
	return uint64(a.bytes[0])<<40 |
		uint64(a.bytes[1])<<32 |
		uint64(a.bytes[2])<<24 |
		uint64(a.bytes[3])<<16 |
		uint64(a.bytes[4])<<8 |
		uint64(a.bytes[5])
}

// Uint64 返回标识符的整数表示。与 [FromUint64] 互逆。
func (a EUI64) Uint64() uint64 {
	return binary.BigEndian.Uint64(a.bytes[:])
}

// EUI64 将 EUI-48 扩展为 EUI-64：前 3 字节保留在 0..2，
// 后 3 字节移至 5..7，中间 3..4 字节填充 0x00,0x00。
//
// 注意：填充值沿用既有数据的观测行为（0x00,0x00），
// 而非 IEEE 惯例的 0xFF,0xFE。历史序列化结果依赖逐字节一致性，
// 不要改动。
func (a EUI48) EUI64() EUI64 {
	return EUI64{bytes: [8]byte{
		a.bytes[0], a.bytes[1], a.bytes[2],
		0x00, 0x00,
		a.bytes[3], a.bytes[4], a.bytes[5],
	}}
}

// IsZero 报告 a 是否为全零标识符。
func (a EUI48) IsZero() bool {
	return a == EUI48{}
}

// IsZero 报告 a 是否为全零标识符。
func (a EUI64) IsZero() bool {
	return a == EUI64{}
}

// Compare 按网络字节序（大端）比较两个 EUI-48。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
func (a EUI48) Compare(b EUI48) int {
	return compareBytes(a.bytes[:], b.bytes[:])
}

// Compare 按网络字节序（大端）比较两个 EUI-64。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
func (a EUI64) Compare(b EUI64) int {
	return compareBytes(a.bytes[:], b.bytes[:])
}

func compareBytes(a, b []byte) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// OUI 返回组织唯一标识符，即 EUI-48 的前 3 字节。
func (a EUI48) OUI() [3]byte {
	return [3]byte{a.bytes[0], a.bytes[1], a.bytes[2]}
}

// IsUnicast 报告 a 是否为单播标识符（首字节 bit 0 为 0）。
func (a EUI48) IsUnicast() bool {
	return a.bytes[0]&0x01 == 0
}

// IsMulticast 报告 a 是否为多播标识符（首字节 bit 0 为 1）。
func (a EUI48) IsMulticast() bool {
	return a.bytes[0]&0x01 == 1
}
