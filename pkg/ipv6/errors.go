package ipv6

import "errors"

var (
	// ErrAddressFormat 表示地址字面量未通过校验。
	ErrAddressFormat = errors.New("ipv6: invalid address literal")

	// ErrCIDRFormat 表示 CIDR 字面量未通过校验（形状、内嵌地址或前缀非法）。
	ErrCIDRFormat = errors.New("ipv6: invalid CIDR literal")

	// ErrCIDRRange 表示前缀长度操作超出当前块或地址族的边界。
	ErrCIDRRange = errors.New("ipv6: prefix out of range")
)
