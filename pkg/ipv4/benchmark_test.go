package ipv4

import (
	"testing"
)

// =============================================================================
// 解析基准测试
// =============================================================================

func BenchmarkParseAddress(b *testing.B) {
	for b.Loop() {
		_, _ = ParseAddress("192.168.1.1")
	}
}

func BenchmarkIsValidAddressString(b *testing.B) {
	b.Run("valid", func(b *testing.B) {
		for b.Loop() {
			_ = IsValidAddressString("192.168.1.1")
		}
	})
	b.Run("invalid", func(b *testing.B) {
		for b.Loop() {
			_ = IsValidAddressString("192.168.1.256")
		}
	})
}

func BenchmarkParseCIDRString(b *testing.B) {
	for b.Loop() {
		_, _ = ParseCIDRString("192.168.0.0/24")
	}
}

// =============================================================================
// 格式化基准测试
// =============================================================================

func BenchmarkAddressString(b *testing.B) {
	addr := MustParseAddress("192.168.100.200")
	for b.Loop() {
		_ = addr.String()
	}
}

func BenchmarkBinaryString(b *testing.B) {
	addr := MustParseAddress("192.168.100.200")
	for b.Loop() {
		_ = addr.BinaryString()
	}
}

// =============================================================================
// 块运算基准测试
// =============================================================================

func BenchmarkContains(b *testing.B) {
	c := MustParseCIDR("10.0.0.0/8")
	addr := MustParseAddress("10.128.0.1")
	for b.Loop() {
		_ = c.Contains(addr)
	}
}

func BenchmarkSubnet(b *testing.B) {
	c := MustParseCIDR("192.168.0.0/24")
	for b.Loop() {
		_, _ = c.Subnet(28)
	}
}
