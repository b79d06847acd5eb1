package ipv6

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Uint128 是定宽 128 位无符号整数，IPv6 规范整数的载体。
// 由两个 64 位肢组成，Hi 为高 64 位。零值即数值 0。
//
// 设计决策: 地址算术（移位、掩码、加减、比较）全部在定宽肢上完成，
// 仅在数值可能超出 128 位时（如 /0 块的地址计数 2^128）换用 [math/big]。
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// 常用值。
var (
	uint128Zero = Uint128{}
	uint128One  = Uint128{Lo: 1}
	uint128Max  = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
)

// MaxUint128 返回 2^128-1。
func MaxUint128() Uint128 { return uint128Max }

// IsZero 报告 u 是否为 0。
// 写成 Hi|Lo 比与零值比较少一个分支。
func (u Uint128) IsZero() bool { return u.Hi|u.Lo == 0 }

// Compare 比较两个值：u<v 返回 -1，u==v 返回 0，u>v 返回 1。
func (u Uint128) Compare(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	default:
		return 0
	}
}

// AddCarry 返回 u+v 与进位（0 或 1）。
func (u Uint128) AddCarry(v Uint128) (Uint128, uint64) {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, carry := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}, carry
}

// Add 返回 u+v，溢出时回绕（mod 2^128）。
func (u Uint128) Add(v Uint128) Uint128 {
	sum, _ := u.AddCarry(v)
	return sum
}

// SubBorrow 返回 u-v 与借位（0 或 1）。
func (u Uint128) SubBorrow(v Uint128) (Uint128, uint64) {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, borrow := bits.Sub64(u.Hi, v.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}, borrow
}

// Sub 返回 u-v，下溢时回绕（mod 2^128）。
func (u Uint128) Sub(v Uint128) Uint128 {
	diff, _ := u.SubBorrow(v)
	return diff
}

// And 返回按位与。
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// Or 返回按位或。
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// Xor 返回按位异或。
func (u Uint128) Xor(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi ^ v.Hi, Lo: u.Lo ^ v.Lo}
}

// Not 返回按位取反。
func (u Uint128) Not() Uint128 {
	return Uint128{Hi: ^u.Hi, Lo: ^u.Lo}
}

// Lsh 返回 u<<n。n >= 128 时返回 0。
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Rsh 返回 u>>n。n >= 128 时返回 0。
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// Bytes 返回大端 16 字节表示。
func (u Uint128) Bytes() [16]byte {
	var b [16]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(u.Hi >> (56 - 8*i))
		b[8+i] = byte(u.Lo >> (56 - 8*i))
	}
	return b
}

// Uint128FromBytes 从大端 16 字节创建 [Uint128]。
func Uint128FromBytes(b [16]byte) Uint128 {
	var u Uint128
	for i := 0; i < 8; i++ {
		u.Hi = u.Hi<<8 | uint64(b[i])
		u.Lo = u.Lo<<8 | uint64(b[8+i])
	}
	return u
}

// BigInt 返回等值的 [*big.Int]。
func (u Uint128) BigInt() *big.Int {
	b := u.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// Uint128FromBigInt 从 [*big.Int] 创建 [Uint128]。
// nil、负数或超出 128 位的值返回 [ErrAddressFormat]。
func Uint128FromBigInt(v *big.Int) (Uint128, error) {
	if v == nil || v.Sign() < 0 || v.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("%w: big.Int value out of range", ErrAddressFormat)
	}
	var b [16]byte
	vBytes := v.Bytes()
	copy(b[16-len(vBytes):], vBytes)
	return Uint128FromBytes(b), nil
}

// String 返回十进制表示，便于日志与调试输出。
func (u Uint128) String() string {
	return u.BigInt().String()
}
