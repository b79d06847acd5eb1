package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/cidrkit/pkg/ipv4"
	"github.com/omeyang/cidrkit/pkg/ipv6"
)

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，run() 将其映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// isIPv6Literal 按字面量自动判定地址族：含 ':' 按 IPv6 处理。
func isIPv6Literal(s string) bool {
	return strings.Contains(s, ":")
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createCheckCommand(),
		createInfoCommand(),
		createSubnetCommand(),
		createSplitCommand(),
		createFmtCommand(),
	}
}

// createCheckCommand 创建 check 子命令（校验字面量）。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"c"},
		Usage:     "校验地址或 CIDR 字面量",
		ArgsUsage: "<literal>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return usageErrorf("check 需要一个字面量参数")
			}
			lit := cmd.Args().First()
			if checkLiteral(lit) {
				fmt.Printf("%s: 合法\n", lit)
				return nil
			}
			fmt.Printf("%s: 非法\n", lit)
			return &exitError{code: 1}
		},
	}
}

// checkLiteral 校验地址或 CIDR 字面量，含 '/' 按 CIDR 处理。
func checkLiteral(lit string) bool {
	isCIDR := strings.Contains(lit, "/")
	if isIPv6Literal(lit) {
		if isCIDR {
			return ipv6.IsValidCIDRString(lit)
		}
		return ipv6.IsValidAddressString(lit)
	}
	if isCIDR {
		return ipv4.IsValidCIDRString(lit)
	}
	return ipv4.IsValidAddressString(lit)
}

// createInfoCommand 创建 info 子命令。
func createInfoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Aliases:   []string{"i"},
		Usage:     "显示地址或 CIDR 块的详细信息",
		ArgsUsage: "<literal>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return usageErrorf("info 需要一个字面量参数")
			}
			out, err := renderInfo(cmd.Args().First())
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

// renderInfo 渲染字面量的详细信息，含 '/' 按 CIDR 处理。
func renderInfo(lit string) (string, error) {
	if strings.Contains(lit, "/") {
		if isIPv6Literal(lit) {
			return renderCIDR6Info(lit)
		}
		return renderCIDR4Info(lit)
	}
	if isIPv6Literal(lit) {
		return renderAddr6Info(lit)
	}
	return renderAddr4Info(lit)
}

func renderAddr4Info(lit string) (string, error) {
	addr, err := ipv4.ParseAddress(lit)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "地址:   %s\n", addr)
	fmt.Fprintf(&b, "整数:   %d\n", addr.Uint32())
	fmt.Fprintf(&b, "二进制: %s\n", addr.BinaryString())
	fmt.Fprintf(&b, "私有:   %s\n", yesNo(addr.IsPrivate()))
	fmt.Fprintf(&b, "环回:   %s\n", yesNo(addr.IsLoopback()))
	fmt.Fprintf(&b, "多播:   %s\n", yesNo(addr.IsMulticast()))
	return b.String(), nil
}

func renderAddr6Info(lit string) (string, error) {
	addr, err := ipv6.ParseAddress(lit)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "地址:   %s\n", addr)
	fmt.Fprintf(&b, "完整:   %s\n", addr.FullString())
	fmt.Fprintf(&b, "整数:   %s\n", addr.BigInt())
	fmt.Fprintf(&b, "环回:   %s\n", yesNo(addr.IsLoopback()))
	fmt.Fprintf(&b, "多播:   %s\n", yesNo(addr.IsMulticast()))
	fmt.Fprintf(&b, "映射:   %s\n", yesNo(addr.IsIPv4Mapped()))
	return b.String(), nil
}

func renderCIDR4Info(lit string) (string, error) {
	c, err := ipv4.ParseCIDRString(lit)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "块:       %s\n", c)
	fmt.Fprintf(&b, "网络地址: %s\n", c.Network())
	fmt.Fprintf(&b, "网络掩码: %s\n", c.Netmask())
	fmt.Fprintf(&b, "主机掩码: %s\n", c.Hostmask())
	fmt.Fprintf(&b, "地址数:   %d\n", c.AddressCount())
	if first, ok := c.FirstUsable(); ok {
		last, _ := c.LastUsable()
		fmt.Fprintf(&b, "可用范围: %s - %s\n", first, last)
	}
	return b.String(), nil
}

func renderCIDR6Info(lit string) (string, error) {
	c, err := ipv6.ParseCIDRString(lit)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "块:       %s\n", c)
	fmt.Fprintf(&b, "网络地址: %s\n", c.Network())
	fmt.Fprintf(&b, "网络掩码: %s\n", c.Netmask())
	fmt.Fprintf(&b, "主机掩码: %s\n", c.Hostmask())
	fmt.Fprintf(&b, "地址数:   %s\n", c.AddressCount())
	if first, ok := c.FirstUsable(); ok {
		if last, ok := c.LastUsable(); ok {
			fmt.Fprintf(&b, "可用范围: %s - %s\n", first, last)
		}
	}
	return b.String(), nil
}

// createSubnetCommand 创建 subnet 子命令（等分划分）。
func createSubnetCommand() *cli.Command {
	return &cli.Command{
		Name:      "subnet",
		Usage:     "将块等分为指定前缀的子块",
		ArgsUsage: "<cidr> <prefix>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return usageErrorf("subnet 需要 <cidr> 和 <prefix> 两个参数")
			}
			newBits, err := strconv.Atoi(cmd.Args().Get(1))
			if err != nil {
				return usageErrorf("非法前缀 %q", cmd.Args().Get(1))
			}
			out, err := renderSubnets(cmd.Args().First(), newBits)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

// renderSubnets 渲染等分结果，每行一个子块。
func renderSubnets(lit string, newBits int) (string, error) {
	var b strings.Builder
	if isIPv6Literal(lit) {
		c, err := ipv6.ParseCIDRString(lit)
		if err != nil {
			return "", err
		}
		subs, err := c.Subnet(newBits)
		if err != nil {
			return "", err
		}
		for _, s := range subs {
			fmt.Fprintln(&b, s)
		}
		return b.String(), nil
	}
	c, err := ipv4.ParseCIDRString(lit)
	if err != nil {
		return "", err
	}
	subs, err := c.Subnet(newBits)
	if err != nil {
		return "", err
	}
	for _, s := range subs {
		fmt.Fprintln(&b, s)
	}
	return b.String(), nil
}

// createSplitCommand 创建 split 子命令（按前缀列表顺序分配）。
func createSplitCommand() *cli.Command {
	return &cli.Command{
		Name:      "split",
		Usage:     "按前缀列表从基地址顺序分配子块",
		ArgsUsage: "<cidr> <p1,p2,...>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return usageErrorf("split 需要 <cidr> 和前缀列表两个参数")
			}
			bits, err := parsePrefixList(cmd.Args().Get(1))
			if err != nil {
				return err
			}
			out, err := renderSplit(cmd.Args().First(), bits)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

// parsePrefixList 解析逗号分隔的前缀列表，如 "25,26,27"。
func parsePrefixList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	bits := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, usageErrorf("非法前缀 %q", p)
		}
		bits = append(bits, n)
	}
	return bits, nil
}

// renderSplit 渲染顺序分配结果，每行一个子块。
func renderSplit(lit string, bits []int) (string, error) {
	var b strings.Builder
	if isIPv6Literal(lit) {
		c, err := ipv6.ParseCIDRString(lit)
		if err != nil {
			return "", err
		}
		subs, err := c.SubnetBy(bits)
		if err != nil {
			return "", err
		}
		for _, s := range subs {
			fmt.Fprintln(&b, s)
		}
		return b.String(), nil
	}
	c, err := ipv4.ParseCIDRString(lit)
	if err != nil {
		return "", err
	}
	subs, err := c.SubnetBy(bits)
	if err != nil {
		return "", err
	}
	for _, s := range subs {
		fmt.Fprintln(&b, s)
	}
	return b.String(), nil
}

// createFmtCommand 创建 fmt 子命令（规范化输出）。
func createFmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "输出地址的规范表示",
		ArgsUsage: "<address>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "full",
				Aliases: []string{"f"},
				Usage:   "IPv6 完整表示（无压缩，4 位零填充）",
			},
			&cli.BoolFlag{
				Name:    "binary",
				Aliases: []string{"b"},
				Usage:   "二进制表示",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return usageErrorf("fmt 需要一个地址参数")
			}
			out, err := renderFormat(cmd.Args().First(), cmd.Bool("full"), cmd.Bool("binary"))
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}

// renderFormat 渲染地址的指定表示。--full 仅对 IPv6 有意义。
func renderFormat(lit string, full, binary bool) (string, error) {
	if isIPv6Literal(lit) {
		addr, err := ipv6.ParseAddress(lit)
		if err != nil {
			return "", err
		}
		switch {
		case binary:
			return addr.BinaryString(), nil
		case full:
			return addr.FullString(), nil
		default:
			return addr.String(), nil
		}
	}
	addr, err := ipv4.ParseAddress(lit)
	if err != nil {
		return "", err
	}
	if binary {
		return addr.BinaryString(), nil
	}
	return addr.String(), nil
}

func yesNo(v bool) string {
	if v {
		return "是"
	}
	return "否"
}
