package ipv4

import (
	"fmt"
	"iter"
	"strconv"
)

// CIDR 是 IPv4 CIDR 块的不可变值类型：基地址加前缀长度。
// 基地址不要求对齐到网络边界，[CIDR.BaseAddress] 返回构造时的原值；
// 对齐形式由 [CIDR.Network] / [CIDR.NetworkCIDR] 按需推导。
// 掩码、网络地址、地址计数均为按需计算的派生值，无缓存状态。
type CIDR struct {
	base Address
	bits int
}

// NewCIDR 从已解析的地址和前缀长度创建 [CIDR]。
// bits 超出 [0, 32] 时返回 [ErrCIDRFormat]。
func NewCIDR(base Address, bits int) (CIDR, error) {
	if bits < MinRange || bits > MaxRange {
		return CIDR{}, fmt.Errorf("%w: bad prefix %d", ErrCIDRFormat, bits)
	}
	return CIDR{base: base, bits: bits}, nil
}

// BaseAddress 返回构造时提供的基地址（未对齐）。
func (c CIDR) BaseAddress() Address { return c.base }

// Range 返回前缀长度。
func (c CIDR) Range() int { return c.bits }

// String 返回 "address/prefix" 表示，如 "192.168.0.0/24"。
func (c CIDR) String() string {
	return c.base.String() + "/" + strconv.Itoa(c.bits)
}

// Netmask 返回网络掩码：高 bits 位为 1，其余为 0。
func (c CIDR) Netmask() Address {
	// 前缀 0 特判，规避对 uint32 的全宽移位。
	if c.bits == 0 {
		return Address{}
	}
	return FromUint32(^uint32(0) << (MaxRange - c.bits))
}

// Hostmask 返回主机掩码（网络掩码按位取反）。
func (c CIDR) Hostmask() Address {
	return FromUint32(^c.Netmask().Uint32())
}

// Network 返回网络地址（基地址与网络掩码按位与）。
func (c CIDR) Network() Address {
	return FromUint32(c.base.Uint32() & c.Netmask().Uint32())
}

// NetworkCIDR 返回以网络地址为基、前缀不变的对齐 CIDR。
func (c CIDR) NetworkCIDR() CIDR {
	return CIDR{base: c.Network(), bits: c.bits}
}

// AddressCount 返回块内地址总数：2^(32-prefix)。
// 前缀 0 时为 2^32，超出 uint32，因此返回 uint64。
func (c CIDR) AddressCount() uint64 {
	return 1 << (MaxRange - c.bits)
}

// FirstUsable 返回第一个可用主机地址（基地址 +1）。
// 前缀为 32（单地址块）时无可用主机范围，返回 (零值, false)。
func (c CIDR) FirstUsable() (Address, bool) {
	if c.bits == MaxRange {
		return Address{}, false
	}
	v := uint64(c.base.Uint32()) + 1
	if v > MaxSize {
		return Address{}, false
	}
	return FromUint32(uint32(v)), true
}

// LastUsable 返回最后一个可用主机地址（基地址 + 地址数 - 2，
// 保留网络地址与广播地址的经典语义）。
// 前缀为 32 时返回 (零值, false)。
func (c CIDR) LastUsable() (Address, bool) {
	if c.bits == MaxRange {
		return Address{}, false
	}
	v := uint64(c.base.Uint32()) + c.AddressCount() - 2
	if v > MaxSize {
		return Address{}, false
	}
	return FromUint32(uint32(v)), true
}

// Addresses 返回块内全部地址的惰性序列，从基地址升序到块尾。
// 每次调用产生独立的新序列（非共享游标），消费方可随时 break 提前终止。
func (c CIDR) Addresses() iter.Seq[Address] {
	return c.AddressesLimit(c.AddressCount())
}

// AddressesLimit 返回块内地址的惰性序列，最多产生 limit 个。
func (c CIDR) AddressesLimit(limit uint64) iter.Seq[Address] {
	return func(yield func(Address) bool) {
		n := c.AddressCount()
		if limit < n {
			n = limit
		}
		base := uint64(c.base.Uint32())
		for i := uint64(0); i < n; i++ {
			v := base + i
			if v > MaxSize {
				return
			}
			if !yield(FromUint32(uint32(v))) {
				return
			}
		}
	}
}

// Equal 报告两个 CIDR 是否相等：基地址与前缀都相等。
// 比较前不做网络对齐（"10.0.0.1/24" 与 "10.0.0.0/24" 不相等）。
func (c CIDR) Equal(o CIDR) bool {
	return c.base.Equal(o.base) && c.bits == o.bits
}

// Contains 报告地址是否落在块内：base <= addr < base+count（半开区间，
// 使用原始基地址而非对齐后的网络地址）。
func (c CIDR) Contains(a Address) bool {
	v := uint64(a.Uint32())
	base := uint64(c.base.Uint32())
	return v >= base && v-base < c.AddressCount()
}

// Overlaps 报告两个块的半开地址区间是否相交。
func (c CIDR) Overlaps(o CIDR) bool {
	s1, e1 := uint64(c.base.Uint32()), uint64(c.base.Uint32())+c.AddressCount()
	s2, e2 := uint64(o.base.Uint32()), uint64(o.base.Uint32())+o.AddressCount()
	return s1 < e2 && s2 < e1
}

// HasNext 报告同前缀的下一个相邻块是否仍完整落在地址空间内。
func (c CIDR) HasNext() bool {
	_, ok := c.Next()
	return ok
}

// Next 返回起于 base+count、前缀相同的下一个相邻块。
// 下一个块的尾地址越过 255.255.255.255 时返回 (零值, false)。
func (c CIDR) Next() (CIDR, bool) {
	count := c.AddressCount()
	start := uint64(c.base.Uint32()) + count
	if start+count-1 > MaxSize {
		return CIDR{}, false
	}
	return CIDR{base: FromUint32(uint32(start)), bits: c.bits}, true
}

// HasPrev 报告同前缀的上一个相邻块是否仍完整落在地址空间内。
func (c CIDR) HasPrev() bool {
	_, ok := c.Prev()
	return ok
}

// Prev 返回起于 base-count、前缀相同的上一个相邻块。
// 起始地址低于 0.0.0.0 时返回 (零值, false)。
func (c CIDR) Prev() (CIDR, bool) {
	count := c.AddressCount()
	base := uint64(c.base.Uint32())
	if base < count {
		return CIDR{}, false
	}
	return CIDR{base: FromUint32(uint32(base - count)), bits: c.bits}, true
}

// Subnet 将块划分为 2^(newBits-prefix) 个等长连续子块，从基地址升序排列。
// newBits 小于当前前缀或大于 32 时返回 [ErrCIDRRange]。
func (c CIDR) Subnet(newBits int) ([]CIDR, error) {
	if newBits < c.bits {
		return nil, fmt.Errorf("%w: new prefix /%d is shorter than /%d", ErrCIDRRange, newBits, c.bits)
	}
	if newBits > MaxRange {
		return nil, fmt.Errorf("%w: new prefix /%d exceeds /%d", ErrCIDRRange, newBits, MaxRange)
	}
	base := uint64(c.base.Uint32())
	if base+c.AddressCount()-1 > MaxSize {
		return nil, fmt.Errorf("%w: block %s extends past the end of the address space", ErrCIDRRange, c)
	}
	n := uint64(1) << (newBits - c.bits)
	step := uint64(1) << (MaxRange - newBits)
	out := make([]CIDR, 0, n)
	for i := uint64(0); i < n; i++ {
		out = append(out, CIDR{base: FromUint32(uint32(base + i*step)), bits: newBits})
	}
	return out, nil
}

// SubnetBy 按给定前缀列表从基地址起顺序分配子块，
// 每个子块紧接上一个子块的结尾。分配是严格顺序贪心的，不做重排。
// 任一请求前缀小于当前前缀、大于 32，或某一步越过父块结尾时，
// 返回 [ErrCIDRRange] 且不返回任何部分结果。
func (c CIDR) SubnetBy(bits []int) ([]CIDR, error) {
	parentCount := c.AddressCount()
	base := uint64(c.base.Uint32())
	out := make([]CIDR, 0, len(bits))
	offset := uint64(0)
	for i, b := range bits {
		if b < c.bits {
			return nil, fmt.Errorf("%w: prefix /%d at index %d is shorter than /%d", ErrCIDRRange, b, i, c.bits)
		}
		if b > MaxRange {
			return nil, fmt.Errorf("%w: prefix /%d at index %d exceeds /%d", ErrCIDRRange, b, i, MaxRange)
		}
		blockCount := uint64(1) << (MaxRange - b)
		if blockCount > parentCount-offset {
			return nil, fmt.Errorf("%w: allocation /%d at index %d extends past the end of %s", ErrCIDRRange, b, i, c)
		}
		start := base + offset
		if start+blockCount-1 > MaxSize {
			return nil, fmt.Errorf("%w: allocation /%d at index %d extends past the end of the address space", ErrCIDRRange, b, i)
		}
		out = append(out, CIDR{base: FromUint32(uint32(start)), bits: b})
		offset += blockCount
	}
	return out, nil
}
