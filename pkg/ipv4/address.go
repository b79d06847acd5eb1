package ipv4

import "strconv"

// 地址族常量。规范整数恒落在 [MinSize, MaxSize]，
// 前缀长度恒落在 [MinRange, MaxRange]。
const (
	// MinSize 是规范整数的下界（0.0.0.0）。
	MinSize uint64 = 0
	// MaxSize 是规范整数的上界（255.255.255.255）。
	MaxSize uint64 = 1<<32 - 1
	// MinRange 是最小前缀长度。
	MinRange = 0
	// MaxRange 是最大前缀长度。
	MaxRange = 32
)

// Address 是 IPv4 地址的不可变值类型。
// 内部表示为大端语义的规范 uint32，零值为 0.0.0.0。
// 可按值复制、比较（==）、做 map key。
type Address struct {
	value uint32
}

// FromUint32 从规范 uint32 创建 [Address]。网络字节序（大端）。
func FromUint32(v uint32) Address {
	return Address{value: v}
}

// FromOctetsArray 从定长八位段数组创建 [Address]。
// 数组形式的构造不会失败；切片形式请用 [FromOctets]。
func FromOctetsArray(o [4]uint8) Address {
	return Address{value: uint32(o[0])<<24 | uint32(o[1])<<16 | uint32(o[2])<<8 | uint32(o[3])}
}

// Uint32 返回规范整数表示。
func (a Address) Uint32() uint32 {
	return a.value
}

// Octets 返回 4 个八位段，索引 0 为最高有效段。
func (a Address) Octets() [4]uint8 {
	return [4]uint8{
		uint8(a.value >> 24),
		uint8(a.value >> 16),
		uint8(a.value >> 8),
		uint8(a.value),
	}
}

// String 返回点分十进制表示，如 "192.168.1.1"。
func (a Address) String() string {
	o := a.Octets()
	// 预分配最大长度，避免中间分配。
	b := make([]byte, 0, 15)
	for i, v := range o {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(v), 10)
	}
	return string(b)
}

// BinaryString 返回二进制表示：每段 8 位零填充，以 '.' 连接。
// 如 "11000000.10101000.00000001.00000001"。
func (a Address) BinaryString() string {
	o := a.Octets()
	b := make([]byte, 0, 35)
	for i, v := range o {
		if i > 0 {
			b = append(b, '.')
		}
		for bit := 7; bit >= 0; bit-- {
			b = append(b, '0'+(v>>uint(bit))&1)
		}
	}
	return string(b)
}

// Compare 按规范整数比较：a<b 返回 -1，a==b 返回 0，a>b 返回 1。
func (a Address) Compare(b Address) int {
	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	default:
		return 0
	}
}

// Equal 报告两个地址是否相等。
func (a Address) Equal(b Address) bool { return a.value == b.value }

// Less 报告 a 是否严格小于 b。
func (a Address) Less(b Address) bool { return a.value < b.value }

// LessOrEqual 报告 a 是否小于等于 b。
func (a Address) LessOrEqual(b Address) bool { return a.value <= b.value }

// Greater 报告 a 是否严格大于 b。
func (a Address) Greater(b Address) bool { return a.value > b.value }

// GreaterOrEqual 报告 a 是否大于等于 b。
func (a Address) GreaterOrEqual(b Address) bool { return a.value >= b.value }

// HasNext 报告是否存在后继地址（即 a 不是 255.255.255.255）。
func (a Address) HasNext() bool {
	return uint64(a.value) < MaxSize
}

// Next 返回后继地址。到达地址空间上界时返回 (零值, false)，不会 panic。
func (a Address) Next() (Address, bool) {
	if !a.HasNext() {
		return Address{}, false
	}
	return Address{value: a.value + 1}, true
}

// HasPrev 报告是否存在前驱地址（即 a 不是 0.0.0.0）。
func (a Address) HasPrev() bool {
	return uint64(a.value) > MinSize
}

// Prev 返回前驱地址。到达地址空间下界时返回 (零值, false)，不会 panic。
func (a Address) Prev() (Address, bool) {
	if !a.HasPrev() {
		return Address{}, false
	}
	return Address{value: a.value - 1}, true
}

// IsLoopback 报告是否为环回地址（127.0.0.0/8）。
func (a Address) IsLoopback() bool {
	return a.value>>24 == 127
}

// IsPrivate 报告是否为私有地址。
// 私有地址包括 10.0.0.0/8、172.16.0.0/12、192.168.0.0/16（RFC 1918）。
func (a Address) IsPrivate() bool {
	return a.value>>24 == 10 ||
		a.value>>20 == 0xAC1 || // 172.16.0.0/12
		a.value>>16 == 0xC0A8 // 192.168.0.0/16
}

// IsLinkLocal 报告是否为链路本地地址（169.254.0.0/16，APIPA）。
func (a Address) IsLinkLocal() bool {
	return a.value>>16 == 0xA9FE
}

// IsMulticast 报告是否为多播地址（224.0.0.0/4，首段 224~239）。
func (a Address) IsMulticast() bool {
	return a.value>>28 == 0xE
}
