package ipv4

import (
	"net/netip"

	"go4.org/netipx"
)

// NetIP 返回等价的 [netip.Addr]，便于与标准库生态互操作。
func (a Address) NetIP() netip.Addr {
	return netip.AddrFrom4(a.Octets())
}

// FromNetIP 从 [netip.Addr] 创建 [Address]。
// IPv4-mapped IPv6 地址（::ffff:a.b.c.d）会先解除映射。
// 非 IPv4 地址返回 (零值, false)。
func FromNetIP(addr netip.Addr) (Address, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return Address{}, false
	}
	return FromOctetsArray(addr.Unmap().As4()), true
}

// Prefix 返回等价的 [netip.Prefix]。基地址保持原样（不对齐）。
func (c CIDR) Prefix() netip.Prefix {
	return netip.PrefixFrom(c.base.NetIP(), c.bits)
}

// FromPrefix 从 [netip.Prefix] 创建 [CIDR]。
// 非 IPv4 前缀或无效前缀返回 (零值, false)。
func FromPrefix(p netip.Prefix) (CIDR, bool) {
	if !p.IsValid() {
		return CIDR{}, false
	}
	addr, ok := FromNetIP(p.Addr())
	if !ok {
		return CIDR{}, false
	}
	return CIDR{base: addr, bits: p.Bits()}, true
}

// IPRange 返回块的闭区间 [netipx.IPRange]。
// 未对齐的基地址靠近地址空间上界时，区间尾被钳制到 255.255.255.255。
func (c CIDR) IPRange() netipx.IPRange {
	base := uint64(c.base.Uint32())
	last := base + c.AddressCount() - 1
	if last > MaxSize {
		last = MaxSize
	}
	return netipx.IPRangeFrom(c.base.NetIP(), FromUint32(uint32(last)).NetIP())
}
