package ipv6

import (
	"net/netip"

	"go4.org/netipx"
)

// NetIP 返回等价的 [netip.Addr]，便于与标准库生态互操作。
// IPv4 映射地址按 16 字节形式返回（不解除映射）。
func (a Address) NetIP() netip.Addr {
	return netip.AddrFrom16(a.value.Bytes())
}

// FromNetIP 从 [netip.Addr] 创建 [Address]。
// 纯 IPv4 地址会被映射到 ::ffff:a.b.c.d；带 zone 的地址返回 (零值, false)
// （zone 信息无法在规范整数中保留，静默丢弃会导致查询误判）。
// 无效地址返回 (零值, false)。
func FromNetIP(addr netip.Addr) (Address, bool) {
	if !addr.IsValid() || addr.Zone() != "" {
		return Address{}, false
	}
	return Address{value: Uint128FromBytes(addr.As16())}, true
}

// Prefix 返回等价的 [netip.Prefix]。基地址保持原样（不对齐）。
func (c CIDR) Prefix() netip.Prefix {
	return netip.PrefixFrom(c.base.NetIP(), c.bits)
}

// FromPrefix 从 [netip.Prefix] 创建 [CIDR]。
// 无效前缀返回 (零值, false)。纯 IPv4 前缀的地址会被映射，
// 前缀长度平移 96 位（如 10.0.0.0/8 → ::ffff:a00:0/104）。
func FromPrefix(p netip.Prefix) (CIDR, bool) {
	if !p.IsValid() {
		return CIDR{}, false
	}
	addr, ok := FromNetIP(p.Addr())
	if !ok {
		return CIDR{}, false
	}
	bits := p.Bits()
	if p.Addr().Is4() {
		bits += 96
	}
	return CIDR{base: addr, bits: bits}, true
}

// IPRange 返回块的闭区间 [netipx.IPRange]。
// 未对齐的基地址靠近地址空间上界时，区间尾被钳制到全 f 地址。
func (c CIDR) IPRange() netipx.IPRange {
	return netipx.IPRangeFrom(c.base.NetIP(), FromUint128(c.lastAddress()).NetIP())
}
