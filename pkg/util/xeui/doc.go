// Package xeui 提供 EUI-48/EUI-64 扩展唯一标识符的定宽值类型。
//
// xeui 面向无动态分配的场景设计：所有缓冲区均为定长数组，
// 解析、格式化、整数转换在热路径上均为零堆分配。
//
//   - [EUI48]：6 字节（48 位）标识符，与 MAC-48 结构等价
//   - [EUI64]：8 字节（64 位）标识符
//   - 严格的文本解析：裸十六进制或每两位插入统一分隔符（':' 或 '-'）
//   - 规范文本输出：小写、无分隔符、定长（12 或 16 字符）
//
// # 快速示例
//
// 从整数构造与文本渲染：
//
//	a := xeui.FromUint48(85204980412143)
//	fmt.Println(a.String())  // 4d7e54972eef
//
// 解析（大小写不敏感，两种分隔符等价）：
//
//	a, err := xeui.Parse48("4D:7E:54:97:2E:EF")
//	b, err := xeui.Parse48("4d-7e-54-97-2e-ef")
//	c, err := xeui.Parse48("4d7e54972eef")
//
// JSON 序列化：
//
//	type Port struct {
//	    ID xeui.EUI64 `json:"id"`
//	}
//	json.Marshal(Port{ID: xeui.FromUint64(v)})  // {"id":"4d7e540000972eef"}
//
// # 解析契约
//
// 对输出宽度 N（6 或 8）字节，仅接受两种输入形状：
//
//   - 2N 个十六进制字符（裸格式）
//   - 3N-1 个字符：N 组两位十六进制，组间由同一种分隔符连接
//
// 长度检查先于任何字符检查。每次失败恰好返回四类错误之一：
//
//   - [LengthError]（匹配 [ErrInvalidLength]）：长度不属于 {2N, 3N-1}，携带实际长度
//   - [CharError]（匹配 [ErrInvalidChar]）：出现既非十六进制也非分隔符的字符，携带该字符
//   - [ErrSeparatorPlacement]：分隔符未落在每两位十六进制之后的节奏上
//   - [ErrMixedSeparators]：同一输入中混用 ':' 与 '-'
//
// 错误值携带定位诊断所需的最小数据（长度或字符），
// 由调用方（配置加载器、反序列化框架、CLI）负责渲染成用户可读的信息。
//
// # 零值语义
//
// 与 xkit 的 xmac 不同，xeui 的零值是合法标识符（全零 EUI）：
// FromUint48(0) 与解析 "000000000000" 均产生零值，且必须满足
// 整数与文本的往返律。因此本包不提供 IsValid，只提供 [EUI48.IsZero]。
//
// # 宽度转换
//
// [EUI48.EUI64] 将 48 位标识符扩展为 64 位：前 3 字节保留在高位，
// 后 3 字节移至低位，中间 3..4 字节填充 0x00,0x00。
// 注意此填充并非 IEEE 惯例的 0xFF,0xFE，而是沿用既有数据的观测行为，
// 以保证与历史序列化结果逐字节一致。
//
// # 并发
//
// 所有类型均为不可变值类型，可直接比较（==）、可作 map key、
// 可在并发读取方之间自由共享，无需任何同步。
package xeui
