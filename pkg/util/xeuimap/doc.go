// Package xeuimap 提供以 EUI-64 为键的定容并发映射。
//
// xeuimap 面向设备注册表类场景：容量固定、可选 TTL、
// 容量耗尽时按 LRU 淘汰。实现上按 [xeui.EUI64.Hash64]（xxhash64）
// 把键散列到 2 的幂个分片，每个分片是一个
// github.com/hashicorp/golang-lru/v2/expirable 缓存，
// 分片间无共享锁，写入在高并发下互不阻塞。
//
// # 键空间
//
// 键类型统一为 [xeui.EUI64]。EUI-48 键通过规范扩展
// （[xeui.EUI48.EUI64]，中间填充 0x00,0x00）进入同一张表：
// 扩展映射是单射，两种宽度的键不会互相碰撞——除非调用方显式使用
// 一个 3..4 字节恰为 0x00,0x00 的真 EUI-64，此时它与对应的 EUI-48
// 指向同一条目。这是扩展映射的预期用法，不是缺陷。
//
// # 快速示例
//
//	m, err := xeuimap.New[string](xeuimap.Config{Capacity: 1024, TTL: time.Minute})
//	if err != nil { ... }
//	defer m.Close()
//
//	m.Set48(xeui.MustParse48("4d:7e:54:97:2e:ef"), "switch-3")
//	name, ok := m.Get48(xeui.MustParse48("4d7e54972eef"))
//
// # 语义说明
//
//   - Len/Keys 可能包含已过期但尚未被后台清理的条目（底层库行为）
//   - Keys 的顺序是分片内从旧到新的拼接，不是全局 LRU 顺序
//   - Close 后读操作返回零值/false，写操作静默忽略；Close 幂等
//   - 淘汰回调在底层库的锁内同步执行，回调中严禁再调用本映射的方法
package xeuimap
