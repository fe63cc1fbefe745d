// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xeui: EUI-48/EUI-64 固定宽度硬件标识符，解析、格式化、整数与宽度转换
//   - xeuimap: 以 EUI-64 为键的分片 LRU 映射，泛型支持、自动 TTL 过期
//
// 设计原则：
//   - 值类型不可变、可比较，可直接作 map 键
//   - 热路径零分配
//   - 错误为值，按类可判别
package util
