// Package ipv6 提供 IPv6 地址与 CIDR 块的不可变值类型。
//
// ipv6 以规范整数（大端 128 位无符号整数，定宽类型 [Uint128]）为所有
// 字面量的统一内部表示，在此之上提供格式化（含 "::" 压缩）、比较、
// 前驱/后继导航、掩码推导、包含/重叠判断和子网划分等纯函数操作。
// 与 [github.com/omeyang/cidrkit/pkg/ipv4] 结构完全平行。
//
// # 核心功能
//
//   - uint128.go: 定宽 128 位无符号整数 [Uint128]，
//     双 64 位肢实现移位、掩码、带进位加减、比较与 big.Int 互转
//   - literal.go: 地址字面量和类型 [Literal]（[Text] / [Number] / [Hextets]）
//     与 CIDR 字面量和类型 [CIDRLiteral]（[CIDRText] / [CIDRSpec]）
//   - parse.go: 校验函数 [IsValidAddress] / [IsValidCIDR]（永不返回错误）
//     与解析函数 [ParseAddress] / [ParseLiteral] / [ParseHextets] / [ParseCIDR]
//   - address.go: [Address] 值类型，压缩/完整/二进制格式化、全序比较、
//     前驱/后继、地址分类
//   - cidr.go: [CIDR] 值类型，掩码、网络地址、地址计数、可用地址范围、
//     惰性地址序列、包含/重叠判断、相邻块导航、子网划分
//   - convert.go: 与 [net/netip] 和 [go4.org/netipx] 的互转
//   - wire.go: TextMarshaler/TextUnmarshaler 实现与 [WireCIDR] 序列化结构
//
// # 快速示例
//
// 解析与规范压缩格式化：
//
//	addr, _ := ipv6.ParseAddress("2001:0db8:0000:0000:0000:0000:0000:0001")
//	fmt.Println(addr)               // 2001:db8::1
//	fmt.Println(addr.FullString())  // 2001:0db8:0000:0000:0000:0000:0000:0001
//
// 子网划分：
//
//	c, _ := ipv6.ParseCIDRString("2001:db8::/32")
//	subs, _ := c.Subnet(34)
//	// 2001:db8::/34, 2001:db8:4000::/34, 2001:db8:8000::/34, 2001:db8:c000::/34
//
// # 字符串语法
//
// [ParseAddress] 接受三类字符串：
//   - 完整形式：8 个冒号分隔的十六位段，每段 1~4 位十六进制数字
//   - 压缩形式：至多一个 "::" 代替一段最长连续零段
//   - IPv4 映射形式："::ffff:a.b.c.d"，点分部分按 IPv4 规则独立校验，
//     末两个十六位段由内嵌八位段合成
//
// [Address.String] 输出规范压缩形式：压缩最长零段游程（长度 > 1，
// 并列取最左），其余段为无前导零的小写十六进制；全零地址输出 "::"。
//
// # 设计决策
//
//   - 规范整数用定宽 [Uint128]（双 64 位肢）而非 big.Int：
//     地址算术只需移位、掩码、带进位加减与比较，定宽实现零分配；
//     仅 [CIDR.AddressCount] 可能达到 2^128（/0 块），以 big.Int 返回
//   - 冒分十六进制解析为手写实现而非 [net/netip.ParseAddr]：
//     本包需要支持整数与十六位段数组字面量、"::ffff:" 映射形式的
//     十六位段合成语义以及精确的错误分类，且不接受 zone ID；
//     与 netip/netipx 的互操作由 convert.go 提供
//   - [CIDR.FirstUsable] / [CIDR.LastUsable] 沿用 IPv4 的可用主机约定
//     （保留块首与块尾各一个地址）。IPv6 没有广播地址，保留块尾
//     并不符合 IPv6 的实际使用惯例，此处为跨地址族行为一致性而保留
//   - 2^128 边界的进位/借位在 [CIDR.Next] / [CIDR.Prev] 等操作中
//     显式检查，不依赖回绕语义
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := ipv6.ParseAddress("2001:db8:::1")
//	if errors.Is(err, ipv6.ErrAddressFormat) {
//	    // 处理无效地址字面量
//	}
//
// [IsValidAddress] 与 [IsValidCIDR] 是全函数：任何输入（包括 nil）
// 都以布尔值报告结果，永不 panic。对校验返回 true 的字面量，
// 对应的解析函数保证成功；反之亦然。
package ipv6
