package xeuimap

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidCapacity 表示容量不大于 0。
	ErrInvalidCapacity = errors.New("xeuimap: capacity must be positive")

	// ErrCapacityExceedsMax 表示容量超过上限（16,777,216）。
	ErrCapacityExceedsMax = errors.New("xeuimap: capacity exceeds maximum")

	// ErrInvalidTTL 表示 TTL 为负值。
	ErrInvalidTTL = errors.New("xeuimap: negative TTL")

	// ErrInvalidShards 表示分片数不是 1..1024 范围内的 2 的幂。
	ErrInvalidShards = errors.New("xeuimap: shard count must be a power of two in 1..1024")
)
