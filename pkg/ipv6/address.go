package ipv6

import (
	"math/big"
	"strconv"
)

// 地址族常量。前缀长度恒落在 [MinRange, MaxRange]。
// 规范整数的上下界超出 Go 常量可表达的定宽范围，由 [MinSize] / [MaxSize] 提供。
const (
	// MinRange 是最小前缀长度。
	MinRange = 0
	// MaxRange 是最大前缀长度。
	MaxRange = 128
)

// MinSize 返回规范整数的下界（::）。
func MinSize() Uint128 { return uint128Zero }

// MaxSize 返回规范整数的上界（ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff）。
func MaxSize() Uint128 { return uint128Max }

// Address 是 IPv6 地址的不可变值类型。
// 内部表示为大端语义的规范 128 位整数，零值为 ::（未指定地址）。
// 可按值复制、比较（==）、做 map key。
type Address struct {
	value Uint128
}

// FromUint128 从规范 128 位整数创建 [Address]。
func FromUint128(v Uint128) Address {
	return Address{value: v}
}

// FromHextetsArray 从定长十六位段数组创建 [Address]。
// 数组形式的构造不会失败；切片形式请用 [FromHextets]。
func FromHextetsArray(h [8]uint16) Address {
	var v Uint128
	for i := 0; i < 4; i++ {
		v.Hi = v.Hi<<16 | uint64(h[i])
		v.Lo = v.Lo<<16 | uint64(h[4+i])
	}
	return Address{value: v}
}

// Value 返回规范 128 位整数表示。
func (a Address) Value() Uint128 {
	return a.value
}

// BigInt 返回规范整数的 [*big.Int] 表示。
func (a Address) BigInt() *big.Int {
	return a.value.BigInt()
}

// Hextets 返回 8 个十六位段，索引 0 为最高有效段。
func (a Address) Hextets() [8]uint16 {
	var h [8]uint16
	for i := 0; i < 4; i++ {
		h[i] = uint16(a.value.Hi >> (48 - 16*i))
		h[4+i] = uint16(a.value.Lo >> (48 - 16*i))
	}
	return h
}

// String 返回规范压缩表示：
// 最长的连续零段（长度 > 1）被压缩为 "::"，并列时取最左；
// 其余段为无前导零的小写十六进制。长度为 1 的零段不压缩。
// 全零地址返回 "::"。
func (a Address) String() string {
	h := a.Hextets()

	// 找最长零段游程，并列取最左。
	runStart, runLen := -1, 1
	for i := 0; i < 8; {
		if h[i] != 0 {
			i++
			continue
		}
		j := i
		for j < 8 && h[j] == 0 {
			j++
		}
		if j-i > runLen {
			runStart, runLen = i, j-i
		}
		i = j
	}

	b := make([]byte, 0, 39)
	if runStart < 0 {
		for i, v := range h {
			if i > 0 {
				b = append(b, ':')
			}
			b = strconv.AppendUint(b, uint64(v), 16)
		}
		return string(b)
	}
	for i := 0; i < runStart; i++ {
		if i > 0 {
			b = append(b, ':')
		}
		b = strconv.AppendUint(b, uint64(h[i]), 16)
	}
	b = append(b, ':', ':')
	for i := runStart + runLen; i < 8; i++ {
		if i > runStart+runLen {
			b = append(b, ':')
		}
		b = strconv.AppendUint(b, uint64(h[i]), 16)
	}
	return string(b)
}

// FullString 返回完整表示：每段恰好 4 位零填充小写十六进制，无压缩。
// 如 "2001:0db8:0000:0000:0000:0000:0000:0001"。
func (a Address) FullString() string {
	h := a.Hextets()
	b := make([]byte, 0, 39)
	for i, v := range h {
		if i > 0 {
			b = append(b, ':')
		}
		b = append(b,
			hexDigit(v>>12),
			hexDigit(v>>8),
			hexDigit(v>>4),
			hexDigit(v))
	}
	return string(b)
}

func hexDigit(v uint16) byte {
	const digits = "0123456789abcdef"
	return digits[v&0xF]
}

// BinaryString 返回二进制表示：每段 16 位零填充，以 ':' 连接。
func (a Address) BinaryString() string {
	h := a.Hextets()
	b := make([]byte, 0, 135)
	for i, v := range h {
		if i > 0 {
			b = append(b, ':')
		}
		for bit := 15; bit >= 0; bit-- {
			b = append(b, byte('0'+(v>>uint(bit))&1))
		}
	}
	return string(b)
}

// Compare 按规范整数比较：a<b 返回 -1，a==b 返回 0，a>b 返回 1。
func (a Address) Compare(b Address) int {
	return a.value.Compare(b.value)
}

// Equal 报告两个地址是否相等。
func (a Address) Equal(b Address) bool { return a.value == b.value }

// Less 报告 a 是否严格小于 b。
func (a Address) Less(b Address) bool { return a.value.Compare(b.value) < 0 }

// LessOrEqual 报告 a 是否小于等于 b。
func (a Address) LessOrEqual(b Address) bool { return a.value.Compare(b.value) <= 0 }

// Greater 报告 a 是否严格大于 b。
func (a Address) Greater(b Address) bool { return a.value.Compare(b.value) > 0 }

// GreaterOrEqual 报告 a 是否大于等于 b。
func (a Address) GreaterOrEqual(b Address) bool { return a.value.Compare(b.value) >= 0 }

// HasNext 报告是否存在后继地址（即 a 不是全 f 地址）。
func (a Address) HasNext() bool {
	return a.value != uint128Max
}

// Next 返回后继地址。到达地址空间上界时返回 (零值, false)，不会 panic。
func (a Address) Next() (Address, bool) {
	if !a.HasNext() {
		return Address{}, false
	}
	return Address{value: a.value.Add(uint128One)}, true
}

// HasPrev 报告是否存在前驱地址（即 a 不是 ::）。
func (a Address) HasPrev() bool {
	return !a.value.IsZero()
}

// Prev 返回前驱地址。到达地址空间下界时返回 (零值, false)，不会 panic。
func (a Address) Prev() (Address, bool) {
	if !a.HasPrev() {
		return Address{}, false
	}
	return Address{value: a.value.Sub(uint128One)}, true
}

// IsLoopback 报告是否为环回地址（::1）。
func (a Address) IsLoopback() bool {
	return a.value == uint128One
}

// IsUnspecified 报告是否为未指定地址（::）。
func (a Address) IsUnspecified() bool {
	return a.value.IsZero()
}

// IsUniqueLocal 报告是否为唯一本地地址（fc00::/7，RFC 4193）。
func (a Address) IsUniqueLocal() bool {
	return a.value.Hi>>57 == 0x7E
}

// IsLinkLocal 报告是否为链路本地地址（fe80::/10）。
func (a Address) IsLinkLocal() bool {
	return a.value.Hi>>54 == 0x3FA
}

// IsMulticast 报告是否为多播地址（ff00::/8）。
func (a Address) IsMulticast() bool {
	return a.value.Hi>>56 == 0xFF
}

// IsIPv4Mapped 报告是否为 IPv4 映射地址（::ffff:0:0/96）。
func (a Address) IsIPv4Mapped() bool {
	return a.value.Hi == 0 && a.value.Lo>>32 == 0xFFFF
}

// IsDocumentation 报告是否为文档专用地址（2001:db8::/32，RFC 3849）。
func (a Address) IsDocumentation() bool {
	return a.value.Hi>>32 == 0x20010DB8
}
