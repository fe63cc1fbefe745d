package xeuimap

import (
	"reflect"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/omeyang/euikit/pkg/util/xeui"
)

// maxCapacity 映射最大条目数上限。
const maxCapacity = 1 << 24 // 16,777,216

// defaultShards 默认分片数。
const defaultShards = 16

// Config 定义映射配置。
type Config struct {
	// Capacity 最大条目数（全部分片合计）。
	// 必须大于 0 且不超过 16,777,216。
	Capacity int

	// TTL 条目过期时间。
	// 0 表示永不过期，不允许负值。
	TTL time.Duration
}

// Option 定义可选配置函数类型。
type Option[V any] func(*options[V])

type options[V any] struct {
	shards    int
	onEvicted func(key xeui.EUI64, value V)
}

// WithShards 设置分片数，必须是 1..1024 范围内的 2 的幂。
// 默认 16。分片越多写并发越好，但单分片容量越小，
// LRU 淘汰顺序的全局近似度越低。
func WithShards[V any](n int) Option[V] {
	return func(o *options[V]) {
		o.shards = n
	}
}

// WithOnEvicted 设置条目被淘汰时的回调函数。
// 回调在底层库的互斥锁内同步执行，严禁在回调中调用映射自身的方法，
// 也应避免耗时操作。
func WithOnEvicted[V any](fn func(key xeui.EUI64, value V)) Option[V] {
	return func(o *options[V]) {
		o.onEvicted = fn
	}
}

// Map 是以 EUI-64 为键、按 xxhash 分片的定容并发映射。
// 必须通过 [New] 创建，零值不可用。所有方法并发安全。
type Map[V any] struct {
	shards    []*expirable.LRU[xeui.EUI64, V]
	mask      uint64
	closed    atomic.Bool
	closeOnce sync.Once
}

// New 创建映射。
// 如果 cfg.Capacity <= 0，返回 [ErrInvalidCapacity]；
// 超过上限返回 [ErrCapacityExceedsMax]；cfg.TTL < 0 返回 [ErrInvalidTTL]；
// 分片数非法返回 [ErrInvalidShards]。
func New[V any](cfg Config, opts ...Option[V]) (*Map[V], error) {
	if cfg.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if cfg.Capacity > maxCapacity {
		return nil, ErrCapacityExceedsMax
	}
	if cfg.TTL < 0 {
		return nil, ErrInvalidTTL
	}

	o := &options[V]{shards: defaultShards}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.shards < 1 || o.shards > 1024 || o.shards&(o.shards-1) != 0 {
		return nil, ErrInvalidShards
	}

	// 分片容量向上取整，合计不低于 cfg.Capacity。
	perShard := (cfg.Capacity + o.shards - 1) / o.shards

	shards := make([]*expirable.LRU[xeui.EUI64, V], o.shards)
	for i := range shards {
		shards[i] = expirable.NewLRU(perShard, o.onEvicted, cfg.TTL)
	}

	return &Map[V]{
		shards: shards,
		mask:   uint64(o.shards - 1),
	}, nil
}

// shardFor 按键的 xxhash64 摘要选择分片。
func (m *Map[V]) shardFor(key xeui.EUI64) *expirable.LRU[xeui.EUI64, V] {
	return m.shards[key.Hash64()&m.mask]
}

// Get 获取键对应的值并刷新其 LRU 顺序。
// 键不存在、已过期或映射已关闭时返回零值和 false。
func (m *Map[V]) Get(key xeui.EUI64) (value V, ok bool) {
	if m.closed.Load() {
		return value, false
	}
	return m.shardFor(key).Get(key)
}

// Set 写入键值。返回值表示是否触发了 LRU 淘汰，而非操作是否成功。
// 键已存在时更新值并刷新 TTL；映射已关闭时静默忽略并返回 false。
func (m *Map[V]) Set(key xeui.EUI64, value V) bool {
	if m.closed.Load() {
		return false
	}
	return m.shardFor(key).Add(key, value)
}

// Delete 删除条目，返回 true 表示键存在并被删除。
// 映射已关闭时返回 false。
func (m *Map[V]) Delete(key xeui.EUI64) bool {
	if m.closed.Load() {
		return false
	}
	return m.shardFor(key).Remove(key)
}

// Contains 检查键是否存在且未过期，不刷新 LRU 顺序。
func (m *Map[V]) Contains(key xeui.EUI64) bool {
	if m.closed.Load() {
		return false
	}
	_, ok := m.shardFor(key).Peek(key)
	return ok
}

// Peek 获取值但不刷新 LRU 顺序。
func (m *Map[V]) Peek(key xeui.EUI64) (value V, ok bool) {
	if m.closed.Load() {
		return value, false
	}
	return m.shardFor(key).Peek(key)
}

// Get48 以 EUI-48 为键获取值，键经规范扩展进入表。
func (m *Map[V]) Get48(key xeui.EUI48) (V, bool) {
	return m.Get(key.EUI64())
}

// Set48 以 EUI-48 为键写入值，键经规范扩展进入表。
func (m *Map[V]) Set48(key xeui.EUI48, value V) bool {
	return m.Set(key.EUI64(), value)
}

// Delete48 以 EUI-48 为键删除条目。
func (m *Map[V]) Delete48(key xeui.EUI48) bool {
	return m.Delete(key.EUI64())
}

// Contains48 以 EUI-48 为键检查存在性。
func (m *Map[V]) Contains48(key xeui.EUI48) bool {
	return m.Contains(key.EUI64())
}

// Len 返回当前条目总数（各分片求和）。
// 可能包含已过期但尚未被后台清理的条目。映射已关闭时返回 0。
func (m *Map[V]) Len() int {
	if m.closed.Load() {
		return 0
	}
	n := 0
	for _, s := range m.shards {
		n += s.Len()
	}
	return n
}

// Keys 返回所有键，按分片内从旧到新的顺序拼接（非全局 LRU 顺序）。
// 映射已关闭时返回 nil。
func (m *Map[V]) Keys() []xeui.EUI64 {
	if m.closed.Load() {
		return nil
	}
	var keys []xeui.EUI64
	for _, s := range m.shards {
		keys = append(keys, s.Keys()...)
	}
	return keys
}

// Clear 清空所有条目。会触发各条目的淘汰回调。
// 映射已关闭时静默忽略。
func (m *Map[V]) Clear() {
	if m.closed.Load() {
		return
	}
	for _, s := range m.shards {
		s.Purge()
	}
}

// Close 关闭映射，清空条目并停止各分片的 TTL 清理 goroutine。
// 幂等；Close 后读操作返回零值/false，写操作静默忽略。
func (m *Map[V]) Close() {
	m.closed.Store(true)
	m.closeOnce.Do(func() {
		for _, s := range m.shards {
			s.Purge()
			stopCleanupGoroutine(s)
		}
	})
}

// stopCleanupGoroutine 停止 expirable.LRU 内部的清理 goroutine。
// 返回 true 表示成功停止，false 表示降级为无操作。
//
// golang-lru/v2@v2.0.7 在 TTL > 0 时启动后台清理 goroutine，
// 但公开 API 没有停止入口（上游 Close 被注释掉了）。
// 这里通过 reflect + unsafe 关闭其未导出的 done 通道（chan struct{}）。
// 升级 golang-lru 时检查上游是否已提供公开 Close，若有则移除此函数；
// 上游字段名或类型变化时此函数返回 false（goroutine 泄漏），
// TestClose_StopsCleanupGoroutines 会捕获。
func stopCleanupGoroutine(lru any) (stopped bool) {
	defer func() {
		// done 通道可能已被关闭，close 的 panic 静默降级。
		if r := recover(); r != nil {
			stopped = false
		}
	}()

	v := reflect.ValueOf(lru)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}

	doneField := v.Elem().FieldByName("done")
	if !doneField.IsValid() || doneField.IsNil() {
		return false
	}
	if doneField.Type() != reflect.TypeOf(make(chan struct{})) {
		return false
	}

	doneCh := *(*chan struct{})(unsafe.Pointer(doneField.UnsafeAddr())) //nolint:gosec // 有意访问上游未导出字段
	close(doneCh)
	return true
}
