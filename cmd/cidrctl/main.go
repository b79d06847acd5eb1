// cidrctl 是 IPv4/IPv6 地址与 CIDR 块的命令行工具。
//
// 用法:
//
//	cidrctl <命令> [命令参数]
//
// 命令:
//
//	check <literal>        校验地址或 CIDR 字面量
//	info <literal>         显示地址或 CIDR 块的详细信息
//	subnet <cidr> <prefix> 将块等分为指定前缀的子块
//	split <cidr> <p1,p2..> 按前缀列表顺序分配子块
//	fmt <address>          输出地址的规范表示
//	help                   显示帮助信息
//
// 地址族由字面量自动判定：含 ':' 按 IPv6 处理，否则按 IPv4 处理。
//
// 退出码:
//
//	0: 命令执行成功（check 命令: 字面量合法）
//	1: 命令执行失败（check 命令: 字面量非法）
//	2: 参数错误（缺少参数、非法前缀、未知命令等）
//
// 示例:
//
//	cidrctl check 192.168.1.1             # 校验 IPv4 地址
//	cidrctl info 2001:db8::/32            # 显示块信息
//	cidrctl subnet 192.168.0.0/24 26      # 等分为 4 个 /26
//	cidrctl split 2001:db8::/32 33,34,34  # 顺序分配
//	cidrctl fmt --full 2001:db8::1        # 输出完整表示
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "cidrctl",
		Usage:          "IPv4/IPv6 地址与 CIDR 块工具",
		Version:        fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
