// Package ipv4 提供 IPv4 地址与 CIDR 块的不可变值类型。
//
// ipv4 以规范整数（大端 uint32）为所有字面量的统一内部表示，
// 在此之上提供格式化、比较、前驱/后继导航、掩码推导、
// 包含/重叠判断和子网划分等纯函数操作。
//
// # 核心功能
//
//   - literal.go: 地址字面量和类型 [Literal]（[Text] / [Number] / [Octets]）
//     与 CIDR 字面量和类型 [CIDRLiteral]（[CIDRText] / [CIDRSpec]）
//   - parse.go: 校验函数 [IsValidAddress] / [IsValidCIDR]（永不返回错误）
//     与解析函数 [ParseAddress] / [ParseLiteral] / [ParseOctets] / [ParseCIDR]
//   - address.go: [Address] 值类型，格式化、全序比较、前驱/后继、地址分类
//   - cidr.go: [CIDR] 值类型，掩码、网络地址、地址计数、可用地址范围、
//     惰性地址序列、包含/重叠判断、相邻块导航、子网划分
//   - convert.go: 与 [net/netip] 和 [go4.org/netipx] 的互转
//   - wire.go: TextMarshaler/TextUnmarshaler 实现与 [WireCIDR] 序列化结构
//
// # 快速示例
//
// 解析地址并读取规范形式：
//
//	addr, _ := ipv4.ParseAddress("192.168.1.1")
//	fmt.Println(addr.Uint32())   // 3232235777
//	fmt.Println(addr.Octets())   // [192 168 1 1]
//
// CIDR 块运算：
//
//	c, _ := ipv4.ParseCIDRString("192.168.0.0/24")
//	fmt.Println(c.AddressCount())            // 256
//	first, _ := c.FirstUsable()
//	fmt.Println(first)                       // 192.168.0.1
//
// 子网划分：
//
//	subs, _ := c.Subnet(26)
//	for _, s := range subs {
//	    fmt.Println(s)   // 192.168.0.0/26, 192.168.0.64/26, ...
//	}
//
// # 设计决策
//
//   - 所有类型均为不可变值类型，可安全地按值复制、做 map key、跨 goroutine 共享
//   - 字面量以密封接口 [Literal] / [CIDRLiteral] 表示，
//     [ParseLiteral] 通过穷举类型分支解析，拒绝运行时鸭子类型探测
//   - 点分十进制解析为手写实现而非 [net/netip.ParseAddr]：
//     本包接受前导零八位段（如 "001.002.003.004"），并需要支持整数与
//     八位段数组字面量及精确的错误分类，netip 的语法与此不一致；
//     与 netip/netipx 的互操作由 convert.go 提供
//   - [CIDR] 不会自动对齐基地址：BaseAddress 返回构造时的原值，
//     对齐形式由 [CIDR.Network] / [CIDR.NetworkCIDR] 按需推导
//   - [CIDR.Addresses] 返回 [iter.Seq]，惰性产生地址，
//     每次调用产生独立的序列，支持提前终止
//
// # 输入行为说明
//
// 校验与解析使用严格模式：
//   - 八位段仅接受 1~3 位十进制数字，拒绝空段、空白和正负号
//   - CIDR 前缀仅接受十进制整数；"24.5" 这类前缀会被拒绝
//     （不做前导整数截断）
//   - 字符串首尾空白会被去除，内部空白导致校验失败
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := ipv4.ParseAddress("256.1.1.1")
//	if errors.Is(err, ipv4.ErrAddressFormat) {
//	    // 处理无效地址字面量
//	}
//
// [IsValidAddress] 与 [IsValidCIDR] 是全函数：任何输入（包括 nil）
// 都以布尔值报告结果，永不 panic。对校验返回 true 的字面量，
// 对应的解析函数保证成功；反之亦然。
package ipv4
