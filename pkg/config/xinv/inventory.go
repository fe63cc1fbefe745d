package xinv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/euikit/pkg/util/xeui"
)

// Format 定义清单文件格式。
type Format string

// 支持的清单格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Device 表示清单中的一台设备。
// 标识符字段经 encoding.TextUnmarshaler 解码，
// 接受 xeui 支持的全部文本形状。
type Device struct {
	// Name 设备名称，清单内非空。
	Name string `koanf:"name"`

	// MAC 设备的 EUI-48 硬件标识符，清单内唯一且非零。
	MAC xeui.EUI48 `koanf:"mac"`

	// Interface 设备的 EUI-64 接口标识符，清单内唯一。
	// 缺省时由 MAC 经规范扩展派生。
	Interface xeui.EUI64 `koanf:"interface"`
}

// Inventory 是已加载并通过校验的设备清单。
// 所有读方法并发安全；Reload 原子地替换内部状态。
type Inventory struct {
	mu      sync.RWMutex
	path    string
	format  Format
	isBytes bool

	devices []Device
	byMAC   map[xeui.EUI48]int
	byIface map[xeui.EUI64]int
}

// New 从文件路径加载清单。
// 根据扩展名自动检测格式（.yaml/.yml 或 .json）。
func New(path string) (*Inventory, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	inv := &Inventory{path: path, format: format}
	if err := inv.load(data); err != nil {
		return nil, err
	}
	return inv, nil
}

// NewFromBytes 从字节数据加载清单，需显式指定格式。
// 适用于 K8s ConfigMap 等场景；不支持 Reload 与 Watch。
func NewFromBytes(data []byte, format Format) (*Inventory, error) {
	if !isValidFormat(format) {
		return nil, ErrUnsupportedFormat
	}
	inv := &Inventory{format: format, isBytes: true}
	if err := inv.load(data); err != nil {
		return nil, err
	}
	return inv, nil
}

// Reload 重新读取清单文件并原子替换内部状态。
// 校验失败时保留旧状态并返回错误。
// 从字节数据创建的清单返回 [ErrReloadUnsupported]。
func (inv *Inventory) Reload() error {
	if inv.isBytes {
		return ErrReloadUnsupported
	}

	data, err := os.ReadFile(inv.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return inv.load(data)
}

// Devices 返回设备列表的副本，顺序与清单一致。
func (inv *Inventory) Devices() []Device {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]Device, len(inv.devices))
	copy(out, inv.devices)
	return out
}

// Len 返回设备数量。
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.devices)
}

// LookupMAC 按 EUI-48 标识符查找设备。
func (inv *Inventory) LookupMAC(mac xeui.EUI48) (Device, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	i, ok := inv.byMAC[mac]
	if !ok {
		return Device{}, false
	}
	return inv.devices[i], true
}

// LookupInterface 按 EUI-64 接口标识符查找设备。
func (inv *Inventory) LookupInterface(id xeui.EUI64) (Device, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	i, ok := inv.byIface[id]
	if !ok {
		return Device{}, false
	}
	return inv.devices[i], true
}

// Path 返回清单文件路径，从字节数据创建时为空字符串。
func (inv *Inventory) Path() string { return inv.path }

// Format 返回清单格式。
func (inv *Inventory) Format() Format { return inv.format }

// load 解析、校验并原子替换内部状态。
func (inv *Inventory) load(data []byte) error {
	k := koanf.New(".")

	var parser koanf.Parser
	switch inv.format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return ErrUnsupportedFormat
	}
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	// koanf 默认解码钩子包含 TextUnmarshallerHookFunc，
	// EUI 字段的文本在这里经 xeui 解析，四类解析错误随之浮出。
	var devices []Device
	if err := k.Unmarshal("devices", &devices); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}

	byMAC := make(map[xeui.EUI48]int, len(devices))
	byIface := make(map[xeui.EUI64]int, len(devices))
	for i := range devices {
		d := &devices[i]
		if d.Name == "" {
			return fmt.Errorf("%w: device %d has empty name", ErrInvalidDevice, i)
		}
		if d.MAC.IsZero() {
			return fmt.Errorf("%w: device %q has zero mac", ErrInvalidDevice, d.Name)
		}
		if d.Interface.IsZero() {
			d.Interface = d.MAC.EUI64()
		}
		if prev, dup := byMAC[d.MAC]; dup {
			return fmt.Errorf("%w: mac %s shared by %q and %q",
				ErrDuplicateDevice, d.MAC, devices[prev].Name, d.Name)
		}
		if prev, dup := byIface[d.Interface]; dup {
			return fmt.Errorf("%w: interface %s shared by %q and %q",
				ErrDuplicateDevice, d.Interface, devices[prev].Name, d.Name)
		}
		byMAC[d.MAC] = i
		byIface[d.Interface] = i
	}

	inv.mu.Lock()
	inv.devices = devices
	inv.byMAC = byMAC
	inv.byIface = byIface
	inv.mu.Unlock()
	return nil
}

// detectFormat 根据文件扩展名检测清单格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}

// isValidFormat 检查格式是否有效。
func isValidFormat(format Format) bool {
	switch format {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}
