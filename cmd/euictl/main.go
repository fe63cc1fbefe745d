// euictl 是 EUI-48/EUI-64 硬件标识符的命令行工具。
//
// 用法:
//
//	euictl <命令> [命令参数]
//
// 命令:
//
//	parse [--width 48|64] <text>   解析文本并打印规范形式、整数值与 OUI
//	format --width 48|64 <uint64>  整数转规范文本（支持十进制与 0x 十六进制）
//	widen <eui48>                  打印 EUI-48 扩展后的 EUI-64 规范形式
//	lookup --inventory <file> <id> 在设备清单中查找标识符
//	help                           显示帮助信息
//
// parse 命令说明:
//
//	未指定 --width 时按输入长度推断：长度 12/17 视为 EUI-48，
//	长度 16/23 视为 EUI-64。解析失败时打印精确诊断
//	（长度、非法字符、分隔符位置、分隔符混用）。
//
// 退出码:
//
//	0: 命令执行成功
//	1: 操作失败（解析失败、查找未命中等）
//	2: 参数错误（无效宽度、缺少必需参数、未知命令等）
//
// 示例:
//
//	euictl parse 4d:7e:54:97:2e:ef
//	euictl parse --width 64 4d7e540000972eef
//	euictl format --width 48 85204980412143
//	euictl format --width 64 0x4d7e540000972eef
//	euictl widen 4d-7e-54-97-2e-ef
//	euictl lookup --inventory devices.yaml 4d7e54972eef
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:     "euictl",
		Usage:    "EUI-48/EUI-64 硬件标识符工具",
		Version:  fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Commands: createCommands(),
		Authors: []any{
			"EUIKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, cmd *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(cmd.Root().ErrWriter, err)
			}
		},
		Description: `euictl 处理 IEEE 风格的固定宽度硬件标识符。

输入接受大小写混合的裸十六进制、冒号分隔或短线分隔三种形状
（同一输入内不可混用分隔符），输出一律为小写裸十六进制。`,
	}
}

// run 执行 CLI 并返回退出码。stdout/stderr 由调用方注入，便于测试。
func run(args []string, stdout, stderr io.Writer) int {
	app := createApp()
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(context.Background(), args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// isCLIUsageError 判断是否为 urfave/cli 框架产生的参数错误。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "flag provided but not defined") ||
		strings.HasPrefix(msg, "flag needs an argument") ||
		strings.Contains(msg, "Required flag") ||
		strings.Contains(msg, "No help topic for")
}
