// Package xinv 提供设备清单的配置加载。
//
// xinv 基于 koanf 从 YAML/JSON 文件加载设备列表，设备的硬件标识符
// 字段是 [xeui.EUI48]/[xeui.EUI64] 值类型：文本形式经
// encoding.TextUnmarshaler 解码，因此配置中可以混用裸格式与
// 冒号/短线分隔格式，解析错误（长度、字符、分隔符位置、分隔符混用）
// 会携带原始诊断出现在加载错误里。
//
// # 清单格式
//
//	devices:
//	  - name: switch-3
//	    mac: "4d:7e:54:97:2e:ef"
//	  - name: sensor-1
//	    mac: "0002f7f00b2a"
//	    interface: "0002f7fffef00b2a"
//
// interface 字段缺省时由 mac 经规范扩展（[xeui.EUI48.EUI64]）派生。
//
// # 校验规则
//
//   - name 非空
//   - mac 非零
//   - mac 与 interface 在清单内分别唯一
//
// # 使用示例
//
//	inv, err := xinv.New("/etc/devices.yaml")
//	if err != nil { ... }
//	dev, ok := inv.LookupMAC(xeui.MustParse48("4d:7e:54:97:2e:ef"))
//
// 配合 [Watch] 可在清单文件变更时自动重载（fsnotify，带防抖）。
package xinv
