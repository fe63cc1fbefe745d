package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/euikit/pkg/config/xinv"
	"github.com/omeyang/euikit/pkg/util/xeui"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误（退出码 2）。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createParseCommand(),
		createFormatCommand(),
		createWidenCommand(),
		createLookupCommand(),
	}
}

// createParseCommand 创建 parse 子命令。
func createParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "解析标识符文本，打印规范形式、整数值与 OUI",
		ArgsUsage: "<text>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Usage:   "标识符位宽（48 或 64），缺省按输入长度推断",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "parse 命令需要且仅需要一个标识符参数"}
			}
			width, err := resolveWidth(cmd.Int("width"), cmd.Args().First())
			if err != nil {
				return err
			}
			return cmdParse(cmd.Root().Writer, width, cmd.Args().First())
		},
	}
}

// createFormatCommand 创建 format 子命令。
func createFormatCommand() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Aliases:   []string{"f"},
		Usage:     "整数转规范文本（接受十进制与 0x 十六进制）",
		ArgsUsage: "<uint64>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "width",
				Aliases:  []string{"w"},
				Usage:    "标识符位宽（48 或 64）",
				Required: true,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "format 命令需要且仅需要一个整数参数"}
			}
			return cmdFormat(cmd.Root().Writer, cmd.Int("width"), cmd.Args().First())
		},
	}
}

// createWidenCommand 创建 widen 子命令。
func createWidenCommand() *cli.Command {
	return &cli.Command{
		Name:      "widen",
		Aliases:   []string{"x"},
		Usage:     "打印 EUI-48 扩展后的 EUI-64 规范形式",
		ArgsUsage: "<eui48>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "widen 命令需要且仅需要一个 EUI-48 参数"}
			}
			return cmdWiden(cmd.Root().Writer, cmd.Args().First())
		},
	}
}

// createLookupCommand 创建 lookup 子命令。
func createLookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Aliases:   []string{"l"},
		Usage:     "在设备清单中查找标识符",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "inventory",
				Aliases:  []string{"i"},
				Usage:    "设备清单文件路径（YAML 或 JSON）",
				Required: true,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "lookup 命令需要且仅需要一个标识符参数"}
			}
			return cmdLookup(cmd.Root().Writer, cmd.String("inventory"), cmd.Args().First())
		},
	}
}

// resolveWidth 确定解析宽度。显式 --width 优先；缺省按输入长度推断：
// 长度 12/17 → 48，长度 16/23 → 64。两组长度互斥，推断无歧义。
func resolveWidth(flag int, text string) (int, error) {
	switch flag {
	case 48, 64:
		return flag, nil
	case 0:
	default:
		return 0, &usageError{msg: fmt.Sprintf("无效的位宽 %d（仅支持 48 或 64）", flag)}
	}

	switch len(text) {
	case 12, 17:
		return 48, nil
	case 16, 23:
		return 64, nil
	default:
		// 长度无法推断宽度，按 48 位解析以产出精确的长度诊断。
		return 48, nil
	}
}

// cmdParse 解析标识符并打印详情。
func cmdParse(w io.Writer, width int, text string) error {
	if width == 48 {
		a, err := xeui.Parse48(text)
		if err != nil {
			return fmt.Errorf("解析失败: %w", err)
		}
		oui := a.OUI()
		fmt.Fprintf(w, "canonical: %s\n", a)
		fmt.Fprintf(w, "colon:     %s\n", a.FormatString(xeui.FormatColon))
		fmt.Fprintf(w, "uint64:    %d\n", a.Uint64())
		fmt.Fprintf(w, "oui:       %02x%02x%02x\n", oui[0], oui[1], oui[2])
		fmt.Fprintf(w, "cast:      %s\n", castString(a.IsUnicast()))
		return nil
	}

	a, err := xeui.Parse64(text)
	if err != nil {
		return fmt.Errorf("解析失败: %w", err)
	}
	fmt.Fprintf(w, "canonical: %s\n", a)
	fmt.Fprintf(w, "colon:     %s\n", a.FormatString(xeui.FormatColon))
	fmt.Fprintf(w, "uint64:    %d\n", a.Uint64())
	return nil
}

// cmdFormat 将整数格式化为规范文本。
func cmdFormat(w io.Writer, width int, arg string) error {
	v, err := strconv.ParseUint(arg, 0, 64)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("无效的整数 %q: %v", arg, err)}
	}

	switch width {
	case 48:
		if v > 0xFFFFFFFFFFFF {
			return &usageError{msg: fmt.Sprintf("整数 %d 超出 48 位范围", v)}
		}
		fmt.Fprintln(w, xeui.FromUint48(v))
	case 64:
		fmt.Fprintln(w, xeui.FromUint64(v))
	default:
		return &usageError{msg: fmt.Sprintf("无效的位宽 %d（仅支持 48 或 64）", width)}
	}
	return nil
}

// cmdWiden 扩展 EUI-48 并打印 EUI-64 规范形式。
func cmdWiden(w io.Writer, text string) error {
	a, err := xeui.Parse48(text)
	if err != nil {
		return fmt.Errorf("解析失败: %w", err)
	}
	fmt.Fprintln(w, a.EUI64())
	return nil
}

// cmdLookup 在设备清单中查找标识符。
// 先按输入宽度解析，EUI-48 查 mac 索引，EUI-64 查 interface 索引。
// 未命中时退出码 1，使脚本能检测查找结果。
func cmdLookup(w io.Writer, path, text string) error {
	inv, err := xinv.New(path)
	if err != nil {
		return fmt.Errorf("加载清单失败: %w", err)
	}

	width, err := resolveWidth(0, text)
	if err != nil {
		return err
	}

	var dev xinv.Device
	var found bool
	if width == 48 {
		mac, parseErr := xeui.Parse48(text)
		if parseErr != nil {
			return fmt.Errorf("解析失败: %w", parseErr)
		}
		dev, found = inv.LookupMAC(mac)
	} else {
		id, parseErr := xeui.Parse64(text)
		if parseErr != nil {
			return fmt.Errorf("解析失败: %w", parseErr)
		}
		dev, found = inv.LookupInterface(id)
	}

	if !found {
		fmt.Fprintln(w, "未找到匹配设备")
		return &exitError{code: 1}
	}

	fmt.Fprintf(w, "name:      %s\n", dev.Name)
	fmt.Fprintf(w, "mac:       %s\n", dev.MAC)
	fmt.Fprintf(w, "interface: %s\n", dev.Interface)
	return nil
}

// castString 返回单播/组播描述。
func castString(unicast bool) string {
	if unicast {
		return "unicast"
	}
	return "multicast"
}
