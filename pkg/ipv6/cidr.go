package ipv6

import (
	"fmt"
	"iter"
	"math/big"
	"strconv"
)

// CIDR 是 IPv6 CIDR 块的不可变值类型：基地址加前缀长度。
// 基地址不要求对齐到网络边界，[CIDR.BaseAddress] 返回构造时的原值；
// 对齐形式由 [CIDR.Network] / [CIDR.NetworkCIDR] 按需推导。
// 掩码、网络地址、地址计数均为按需计算的派生值，无缓存状态。
//
// 块内算术使用定宽 [Uint128] 并显式处理 2^128 边界的进位/借位；
// 仅地址计数可能达到 2^128（/0 块），以 [*big.Int] 返回。
type CIDR struct {
	base Address
	bits int
}

// NewCIDR 从已解析的地址和前缀长度创建 [CIDR]。
// bits 超出 [0, 128] 时返回 [ErrCIDRFormat]。
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

// String 返回 "address/prefix" 表示，如 "2001:db8::/32"。
func (c CIDR) String() string {
	return c.base.String() + "/" + strconv.Itoa(c.bits)
}

// Netmask 返回网络掩码地址：高 bits 位为 1，其余为 0。
func (c CIDR) Netmask() Address {
	// 前缀 0 特判，规避全宽移位。
	if c.bits == 0 {
		return Address{}
	}
	return FromUint128(uint128Max.Lsh(uint(MaxRange - c.bits)))
}

// Hostmask 返回主机掩码（网络掩码按位取反）。
func (c CIDR) Hostmask() Address {
	return FromUint128(c.Netmask().Value().Not())
}

// hostmask 返回主机掩码的裸整数，同时也是块内地址数减一。
func (c CIDR) hostmask() Uint128 {
	return c.Netmask().Value().Not()
}

// Network 返回网络地址（基地址与网络掩码按位与）。
func (c CIDR) Network() Address {
	return FromUint128(c.base.Value().And(c.Netmask().Value()))
}

// NetworkCIDR 返回以网络地址为基、前缀不变的对齐 CIDR。
func (c CIDR) NetworkCIDR() CIDR {
	return CIDR{base: c.Network(), bits: c.bits}
}

// AddressCount 返回块内地址总数：2^(128-prefix)。
// 前缀 0 时为 2^128，超出任何定宽整数，因此返回 [*big.Int]。
func (c CIDR) AddressCount() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(MaxRange-c.bits))
}

// FirstUsable 返回第一个可用主机地址（基地址 +1）。
// 前缀为 128（单地址块）时无可用主机范围，返回 (零值, false)。
func (c CIDR) FirstUsable() (Address, bool) {
	if c.bits == MaxRange {
		return Address{}, false
	}
	v, carry := c.base.Value().AddCarry(uint128One)
	if carry != 0 {
		return Address{}, false
	}
	return FromUint128(v), true
}

// LastUsable 返回最后一个可用主机地址（基地址 + 地址数 - 2）。
// 沿用 IPv4 广播约定保留块尾地址；IPv6 并无广播地址，
// 该语义是兼容性保留，见包文档。
// 前缀为 128 时返回 (零值, false)。
func (c CIDR) LastUsable() (Address, bool) {
	if c.bits == MaxRange {
		return Address{}, false
	}
	last, carry := c.base.Value().AddCarry(c.hostmask())
	if carry != 0 {
		return Address{}, false
	}
	return FromUint128(last.Sub(uint128One)), true
}

// Addresses 返回块内全部地址的惰性序列，从基地址升序到块尾。
// 每次调用产生独立的新序列（非共享游标），消费方可随时 break 提前终止。
// /0 块的完整序列有 2^128 个元素，消费方应自行限制或改用 [CIDR.AddressesLimit]。
func (c CIDR) Addresses() iter.Seq[Address] {
	return func(yield func(Address) bool) {
		remaining := c.hostmask()
		cur := c.base.Value()
		for {
			if !yield(FromUint128(cur)) {
				return
			}
			if remaining.IsZero() {
				return
			}
			next, carry := cur.AddCarry(uint128One)
			if carry != 0 {
				return
			}
			cur = next
			remaining = remaining.Sub(uint128One)
		}
	}
}

// AddressesLimit 返回块内地址的惰性序列，最多产生 limit 个。
func (c CIDR) AddressesLimit(limit uint64) iter.Seq[Address] {
	return func(yield func(Address) bool) {
		if limit == 0 {
			return
		}
		remaining := c.hostmask()
		cur := c.base.Value()
		for n := uint64(0); ; n++ {
			if !yield(FromUint128(cur)) {
				return
			}
			if n+1 >= limit || remaining.IsZero() {
				return
			}
			next, carry := cur.AddCarry(uint128One)
			if carry != 0 {
				return
			}
			cur = next
			remaining = remaining.Sub(uint128One)
		}
	}
}

// Equal 报告两个 CIDR 是否相等：基地址与前缀都相等。
// 比较前不做网络对齐（"2001:db8::1/64" 与 "2001:db8::/64" 不相等）。
func (c CIDR) Equal(o CIDR) bool {
	return c.base.Equal(o.base) && c.bits == o.bits
}

// Contains 报告地址是否落在块内：base <= addr < base+count（半开区间，
// 使用原始基地址而非对齐后的网络地址）。
func (c CIDR) Contains(a Address) bool {
	offset, borrow := a.Value().SubBorrow(c.base.Value())
	if borrow != 0 {
		return false
	}
	return offset.Compare(c.hostmask()) <= 0
}

// lastAddress 返回块尾地址（base + count - 1）。
// 未对齐基地址靠近地址空间上界时块尾溢出，钳制到全 f 地址；
// 钳制值对 <= 比较恰好等价于无界算术。
func (c CIDR) lastAddress() Uint128 {
	last, carry := c.base.Value().AddCarry(c.hostmask())
	if carry != 0 {
		return uint128Max
	}
	return last
}

// Overlaps 报告两个块的地址区间是否相交。
func (c CIDR) Overlaps(o CIDR) bool {
	return c.base.Value().Compare(o.lastAddress()) <= 0 &&
		o.base.Value().Compare(c.lastAddress()) <= 0
}

// HasNext 报告同前缀的下一个相邻块是否仍完整落在地址空间内。
func (c CIDR) HasNext() bool {
	_, ok := c.Next()
	return ok
}

// Next 返回起于 base+count、前缀相同的下一个相邻块。
// 下一个块的尾地址越过地址空间上界时返回 (零值, false)。
func (c CIDR) Next() (CIDR, bool) {
	hm := c.hostmask()
	end, carry := c.base.Value().AddCarry(hm)
	if carry != 0 {
		return CIDR{}, false
	}
	start, carry := end.AddCarry(uint128One)
	if carry != 0 {
		return CIDR{}, false
	}
	if _, carry := start.AddCarry(hm); carry != 0 {
		return CIDR{}, false
	}
	return CIDR{base: FromUint128(start), bits: c.bits}, true
}

// HasPrev 报告同前缀的上一个相邻块是否仍完整落在地址空间内。
func (c CIDR) HasPrev() bool {
	_, ok := c.Prev()
	return ok
}

// Prev 返回起于 base-count、前缀相同的上一个相邻块。
// 起始地址低于 :: 时返回 (零值, false)。
func (c CIDR) Prev() (CIDR, bool) {
	hm := c.hostmask()
	start, borrow := c.base.Value().SubBorrow(hm)
	if borrow != 0 {
		return CIDR{}, false
	}
	start, borrow = start.SubBorrow(uint128One)
	if borrow != 0 {
		return CIDR{}, false
	}
	return CIDR{base: FromUint128(start), bits: c.bits}, true
}

// Subnet 将块划分为 2^(newBits-prefix) 个等长连续子块，从基地址升序排列。
// newBits 小于当前前缀或大于 128 时返回 [ErrCIDRRange]。
// 子块数量超过 2^62（无法物化为切片）时同样返回 [ErrCIDRRange]；
// 超大展开请改用 [CIDR.Addresses] 或相邻块导航。
func (c CIDR) Subnet(newBits int) ([]CIDR, error) {
	if newBits < c.bits {
		return nil, fmt.Errorf("%w: new prefix /%d is shorter than /%d", ErrCIDRRange, newBits, c.bits)
	}
	if newBits > MaxRange {
		return nil, fmt.Errorf("%w: new prefix /%d exceeds /%d", ErrCIDRRange, newBits, MaxRange)
	}
	diff := newBits - c.bits
	if diff > 62 {
		return nil, fmt.Errorf("%w: 2^%d subnets cannot be materialized", ErrCIDRRange, diff)
	}
	if _, carry := c.base.Value().AddCarry(c.hostmask()); carry != 0 {
		return nil, fmt.Errorf("%w: block %s extends past the end of the address space", ErrCIDRRange, c)
	}
	n := uint64(1) << diff
	step := uint128One.Lsh(uint(MaxRange - newBits))
	out := make([]CIDR, 0, n)
	cur := c.base.Value()
	for i := uint64(0); i < n; i++ {
		out = append(out, CIDR{base: FromUint128(cur), bits: newBits})
		cur = cur.Add(step)
	}
	return out, nil
}

// SubnetBy 按给定前缀列表从基地址起顺序分配子块，
// 每个子块紧接上一个子块的结尾。分配是严格顺序贪心的，不做重排。
// 任一请求前缀小于当前前缀、大于 128，或某一步越过父块结尾时，
// 返回 [ErrCIDRRange] 且不返回任何部分结果。
func (c CIDR) SubnetBy(bits []int) ([]CIDR, error) {
	parentHm := c.hostmask()
	if _, carry := c.base.Value().AddCarry(parentHm); carry != 0 {
		return nil, fmt.Errorf("%w: block %s extends past the end of the address space", ErrCIDRRange, c)
	}
	out := make([]CIDR, 0, len(bits))
	offset := uint128Zero
	exhausted := false
	for i, b := range bits {
		if b < c.bits {
			return nil, fmt.Errorf("%w: prefix /%d at index %d is shorter than /%d", ErrCIDRRange, b, i, c.bits)
		}
		if b > MaxRange {
			return nil, fmt.Errorf("%w: prefix /%d at index %d exceeds /%d", ErrCIDRRange, b, i, MaxRange)
		}
		if exhausted {
			return nil, fmt.Errorf("%w: allocation /%d at index %d extends past the end of %s", ErrCIDRRange, b, i, c)
		}
		blockHm := uint128Max.Rsh(uint(b))
		end, carry := offset.AddCarry(blockHm)
		if carry != 0 || end.Compare(parentHm) > 0 {
			return nil, fmt.Errorf("%w: allocation /%d at index %d extends past the end of %s", ErrCIDRRange, b, i, c)
		}
		out = append(out, CIDR{base: FromUint128(c.base.Value().Add(offset)), bits: b})
		next, carry := end.AddCarry(uint128One)
		if carry != 0 {
			exhausted = true
		}
		offset = next
	}
	return out, nil
}
