package ipv4

import (
	"fmt"
	"strconv"
	"strings"
)

// IsValidAddress 报告 lit 是否为合法的地址字面量。
// 全函数：nil、长度错误的数组、越界分量、畸形字符串都返回 false，永不 panic。
func IsValidAddress(lit Literal) bool {
	switch v := lit.(type) {
	case Text:
		return IsValidAddressString(string(v))
	case Number:
		return uint64(v) <= MaxSize
	case Octets:
		return isValidOctets(v)
	case Address:
		return true
	default:
		return false
	}
}

// IsValidAddressString 报告 s 是否为合法的点分十进制地址字符串。
// 要求恰好 4 个非空段，每段 1~3 位十进制数字且值在 [0, 255] 内。
// 接受前导零（"001.002.003.004" 合法），首尾空白会被去除。
func IsValidAddressString(s string) bool {
	groups := strings.Split(strings.TrimSpace(s), ".")
	if len(groups) != 4 {
		return false
	}
	for _, g := range groups {
		if _, ok := parseOctetGroup(g); !ok {
			return false
		}
	}
	return true
}

// parseOctetGroup 解析单个八位段。严格模式：仅接受 1~3 位十进制数字。
func parseOctetGroup(g string) (uint8, bool) {
	if len(g) == 0 || len(g) > 3 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(g); i++ {
		c := g[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	if n > 255 {
		return 0, false
	}
	return uint8(n), true
}

func isValidOctets(o Octets) bool {
	if len(o) != 4 {
		return false
	}
	for _, v := range o {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// ParseOctets 将点分十进制字符串解析为 4 个八位段。
// 失败时返回包装 [ErrAddressFormat] 的错误，携带原始字面量。
func ParseOctets(s string) ([4]uint8, error) {
	groups := strings.Split(strings.TrimSpace(s), ".")
	if len(groups) != 4 {
		return [4]uint8{}, fmt.Errorf("%w: %q", ErrAddressFormat, s)
	}
	var out [4]uint8
	for i, g := range groups {
		v, ok := parseOctetGroup(g)
		if !ok {
			return [4]uint8{}, fmt.Errorf("%w: %q", ErrAddressFormat, s)
		}
		out[i] = v
	}
	return out, nil
}

// ParseAddress 将点分十进制字符串解析为 [Address]。
func ParseAddress(s string) (Address, error) {
	o, err := ParseOctets(s)
	if err != nil {
		return Address{}, err
	}
	return FromOctetsArray(o), nil
}

// MustParseAddress 与 [ParseAddress] 相同，但失败时 panic。
// 仅用于测试和字面量已知合法的初始化场景。
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseLiteral 将任意地址字面量解析为 [Address]。
// 通过穷举类型分支逐变体解析；nil 或未知变体返回 [ErrAddressFormat]。
func ParseLiteral(lit Literal) (Address, error) {
	switch v := lit.(type) {
	case Text:
		return ParseAddress(string(v))
	case Number:
		return FromNumber(uint64(v))
	case Octets:
		return FromOctets(v)
	case Address:
		return v, nil
	default:
		return Address{}, fmt.Errorf("%w: %v", ErrAddressFormat, lit)
	}
}

// FromNumber 从平铺整数创建 [Address]。
// n 超出 [0, 2^32-1] 时返回 [ErrAddressFormat]。
func FromNumber(n uint64) (Address, error) {
	if n > MaxSize {
		return Address{}, fmt.Errorf("%w: %d", ErrAddressFormat, n)
	}
	return FromUint32(uint32(n)), nil
}

// FromOctets 从八位段切片创建 [Address]。
// 要求恰好 4 个元素，每个在 [0, 255] 内。
func FromOctets(o Octets) (Address, error) {
	if !isValidOctets(o) {
		return Address{}, fmt.Errorf("%w: %v", ErrAddressFormat, []int(o))
	}
	return FromOctetsArray([4]uint8{uint8(o[0]), uint8(o[1]), uint8(o[2]), uint8(o[3])}), nil
}

// IsValidCIDR 报告 lit 是否为合法的 CIDR 字面量。
// 全函数：nil、缺失地址、非法前缀都返回 false，永不 panic。
func IsValidCIDR(lit CIDRLiteral) bool {
	switch v := lit.(type) {
	case CIDRText:
		return IsValidCIDRString(string(v))
	case CIDRSpec:
		return v.Address != nil && v.Range >= MinRange && v.Range <= MaxRange && IsValidAddress(v.Address)
	case CIDR:
		return true
	default:
		return false
	}
}

// IsValidCIDRString 报告 s 是否为合法的 "address/prefix" 字符串。
func IsValidCIDRString(s string) bool {
	addrPart, prefixPart, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return false
	}
	if _, ok := parsePrefix(prefixPart); !ok {
		return false
	}
	return IsValidAddressString(addrPart)
}

// parsePrefix 解析前缀长度。仅接受十进制整数，范围 [0, 32]。
//
// 设计决策: 不沿用前导整数截断语义（"24.5" 截成 24），
// 非整数前缀一律拒绝。前缀被静默截断会把块大小放大任意倍数，
// 属于高风险正确性问题。
func parsePrefix(s string) (int, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil || n > MaxRange {
		return 0, false
	}
	return int(n), true
}

// ParseCIDRString 将 "address/prefix" 字符串解析为 [CIDR]。
func ParseCIDRString(s string) (CIDR, error) {
	addrPart, prefixPart, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return CIDR{}, fmt.Errorf("%w: %q", ErrCIDRFormat, s)
	}
	bits, ok := parsePrefix(prefixPart)
	if !ok {
		return CIDR{}, fmt.Errorf("%w: bad prefix in %q", ErrCIDRFormat, s)
	}
	addr, err := ParseAddress(addrPart)
	if err != nil {
		return CIDR{}, fmt.Errorf("%w: %q: %w", ErrCIDRFormat, s, err)
	}
	return CIDR{base: addr, bits: bits}, nil
}

// ParseCIDR 将任意 CIDR 字面量解析为 [CIDR]。
// 内嵌地址的解析错误会被包装进 [ErrCIDRFormat] 并保留错误链。
func ParseCIDR(lit CIDRLiteral) (CIDR, error) {
	switch v := lit.(type) {
	case CIDRText:
		return ParseCIDRString(string(v))
	case CIDRSpec:
		if v.Address == nil {
			return CIDR{}, fmt.Errorf("%w: missing address", ErrCIDRFormat)
		}
		if v.Range < MinRange || v.Range > MaxRange {
			return CIDR{}, fmt.Errorf("%w: bad prefix %d", ErrCIDRFormat, v.Range)
		}
		addr, err := ParseLiteral(v.Address)
		if err != nil {
			return CIDR{}, fmt.Errorf("%w: %w", ErrCIDRFormat, err)
		}
		return CIDR{base: addr, bits: v.Range}, nil
	case CIDR:
		return v, nil
	default:
		return CIDR{}, fmt.Errorf("%w: %v", ErrCIDRFormat, lit)
	}
}

// MustParseCIDR 与 [ParseCIDRString] 相同，但失败时 panic。
func MustParseCIDR(s string) CIDR {
	c, err := ParseCIDRString(s)
	if err != nil {
		panic(err)
	}
	return c
}
