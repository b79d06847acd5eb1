package ipv6

import (
	"fmt"
	"math/big"
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
		return true // 任意 Uint128 都是合法的 128 位规范整数
	case Hextets:
		return isValidHextets(v)
	case Address:
		return true
	default:
		return false
	}
}

// IsValidAddressString 报告 s 是否为合法的冒分十六进制地址字符串。
// 规则：
//   - 至多一个 "::" 压缩段；展开后恰好 8 个非空段
//   - 每段 1~4 位十六进制数字（大小写均可）
//   - "::ffff:a.b.c.d" IPv4 映射形式单独校验其点分部分
//
// 首尾空白会被去除。
func IsValidAddressString(s string) bool {
	_, ok := parseHextetGroups(strings.TrimSpace(s))
	return ok
}

// parseHextetGroups 是字符串校验与解析的共享内核。
// 校验与解析走同一条展开路径，保证 IsValid 为 true 的字符串解析必定成功。
func parseHextetGroups(s string) ([8]uint16, bool) {
	// IPv4 映射形式优先于常规展开检测。
	if h, ok := parseMappedSuffix(s); ok {
		return h, true
	}

	var groups []string
	if idx := strings.Index(s, "::"); idx >= 0 {
		// 多于一个压缩标记直接拒绝。
		if strings.Contains(s[idx+2:], "::") {
			return [8]uint16{}, false
		}
		var left, right []string
		if l := s[:idx]; l != "" {
			left = strings.Split(l, ":")
		}
		if r := s[idx+2:]; r != "" {
			right = strings.Split(r, ":")
		}
		missing := 8 - len(left) - len(right)
		if missing < 0 {
			return [8]uint16{}, false
		}
		groups = make([]string, 0, 8)
		groups = append(groups, left...)
		for i := 0; i < missing; i++ {
			groups = append(groups, "0")
		}
		groups = append(groups, right...)
	} else {
		groups = strings.Split(s, ":")
	}

	if len(groups) != 8 {
		return [8]uint16{}, false
	}
	var out [8]uint16
	for i, g := range groups {
		v, ok := parseHextetGroup(g)
		if !ok {
			return [8]uint16{}, false
		}
		out[i] = v
	}
	return out, true
}

// parseHextetGroup 解析单个十六位段。严格模式：仅接受 1~4 位十六进制数字。
func parseHextetGroup(g string) (uint16, bool) {
	if len(g) == 0 || len(g) > 4 {
		return 0, false
	}
	n := uint32(0)
	for i := 0; i < len(g); i++ {
		c := g[i]
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return 0, false
		}
		n = n<<4 | d
	}
	return uint16(n), true
}

// parseMappedSuffix 检测并解析 "::ffff:a.b.c.d" IPv4 映射形式。
// 点分部分按 IPv4 规则独立校验（4 段，每段 1~3 位十进制，0~255）。
// 末两个十六位段由内嵌八位段合成：h[6]=(o0<<8)|o1，h[7]=(o2<<8)|o3。
func parseMappedSuffix(s string) ([8]uint16, bool) {
	const prefix = "::ffff:"
	if len(s) <= len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return [8]uint16{}, false
	}
	dotted := strings.Split(s[len(prefix):], ".")
	if len(dotted) != 4 {
		return [8]uint16{}, false
	}
	var o [4]uint16
	for i, g := range dotted {
		v, ok := parseOctetGroup(g)
		if !ok {
			return [8]uint16{}, false
		}
		o[i] = uint16(v)
	}
	return [8]uint16{0, 0, 0, 0, 0, 0xFFFF, o[0]<<8 | o[1], o[2]<<8 | o[3]}, true
}

// parseOctetGroup 解析 IPv4 映射后缀中的单个八位段（1~3 位十进制，0~255）。
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

func isValidHextets(h Hextets) bool {
	if len(h) != 8 {
		return false
	}
	for _, v := range h {
		if v < 0 || v > 0xFFFF {
			return false
		}
	}
	return true
}

// ParseHextets 将冒分十六进制字符串解析为 8 个十六位段。
// 失败时返回包装 [ErrAddressFormat] 的错误，携带原始字面量。
func ParseHextets(s string) ([8]uint16, error) {
	h, ok := parseHextetGroups(strings.TrimSpace(s))
	if !ok {
		return [8]uint16{}, fmt.Errorf("%w: %q", ErrAddressFormat, s)
	}
	return h, nil
}

// ParseAddress 将冒分十六进制字符串解析为 [Address]。
func ParseAddress(s string) (Address, error) {
	h, err := ParseHextets(s)
	if err != nil {
		return Address{}, err
	}
	return FromHextetsArray(h), nil
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
		return FromUint128(Uint128(v)), nil
	case Hextets:
		return FromHextets(v)
	case Address:
		return v, nil
	default:
		return Address{}, fmt.Errorf("%w: %v", ErrAddressFormat, lit)
	}
}

// FromBigInt 从 [*big.Int] 创建 [Address]。
// nil、负数或超出 [0, 2^128-1] 的值返回 [ErrAddressFormat]。
func FromBigInt(v *big.Int) (Address, error) {
	u, err := Uint128FromBigInt(v)
	if err != nil {
		return Address{}, err
	}
	return FromUint128(u), nil
}

// FromHextets 从十六位段切片创建 [Address]。
// 要求恰好 8 个元素，每个在 [0, 0xFFFF] 内。
func FromHextets(h Hextets) (Address, error) {
	if !isValidHextets(h) {
		return Address{}, fmt.Errorf("%w: %v", ErrAddressFormat, []int(h))
	}
	var arr [8]uint16
	for i, v := range h {
		arr[i] = uint16(v)
	}
	return FromHextetsArray(arr), nil
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

// parsePrefix 解析前缀长度。仅接受十进制整数，范围 [0, 128]。
//
// 设计决策: 不沿用前导整数截断语义（"64.5" 截成 64），
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
