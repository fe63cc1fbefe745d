package xinv

import "errors"

// 清单加载和校验相关错误。
var (
	// ErrEmptyPath 表示清单文件路径为空。
	ErrEmptyPath = errors.New("xinv: empty inventory path")

	// ErrUnsupportedFormat 表示不支持的清单格式。
	ErrUnsupportedFormat = errors.New("xinv: unsupported inventory format")

	// ErrLoadFailed 表示清单文件读取失败。
	ErrLoadFailed = errors.New("xinv: failed to load inventory")

	// ErrParseFailed 表示清单内容解析失败。
	ErrParseFailed = errors.New("xinv: failed to parse inventory")

	// ErrUnmarshalFailed 表示设备列表反序列化失败。
	// 设备标识符字段的解析错误（xeui 四类）包裹在此错误内。
	ErrUnmarshalFailed = errors.New("xinv: failed to unmarshal inventory")

	// ErrInvalidDevice 表示设备条目未通过校验（空名称或零 MAC）。
	ErrInvalidDevice = errors.New("xinv: invalid device entry")

	// ErrDuplicateDevice 表示清单内出现重复的硬件标识符。
	ErrDuplicateDevice = errors.New("xinv: duplicate device identifier")

	// ErrReloadUnsupported 表示从字节数据创建的清单不支持重载与监视。
	ErrReloadUnsupported = errors.New("xinv: inventory created from bytes cannot be reloaded")
)
