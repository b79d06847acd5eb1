package ipv6

import "fmt"

// MarshalText 实现 [encoding.TextMarshaler]，输出规范压缩表示。
// 使 [Address] 可直接用于 JSON/YAML 字段。
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (a *Address) UnmarshalText(b []byte) error {
	addr, err := ParseAddress(string(b))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// MarshalText 实现 [encoding.TextMarshaler]，输出 "address/prefix" 表示。
func (c CIDR) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (c *CIDR) UnmarshalText(b []byte) error {
	parsed, err := ParseCIDRString(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// WireCIDR 是 CIDR 块的序列化格式。
// 使用 JSON/BSON/YAML 标签 {"address":"...","range":n}。
type WireCIDR struct {
	Address string `json:"address" bson:"address" yaml:"address"`
	Range   int    `json:"range" bson:"range" yaml:"range"`
}

// WireCIDRFrom 从 [CIDR] 创建 WireCIDR。地址字段使用规范压缩表示。
func WireCIDRFrom(c CIDR) WireCIDR {
	return WireCIDR{Address: c.base.String(), Range: c.bits}
}

// ToCIDR 将 WireCIDR 转换回 [CIDR]。
// 字段非法时返回 [ErrCIDRFormat]。
func (w WireCIDR) ToCIDR() (CIDR, error) {
	return ParseCIDR(CIDRSpec{Address: Text(w.Address), Range: w.Range})
}

// IsZero 报告 w 是否为零值。
func (w WireCIDR) IsZero() bool {
	return w.Address == "" && w.Range == 0
}

// String 返回 "address/range" 表示。零值返回空字符串。
func (w WireCIDR) String() string {
	if w.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s/%d", w.Address, w.Range)
}
