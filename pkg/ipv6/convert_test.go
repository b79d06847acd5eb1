package ipv6

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetIP(t *testing.T) {
	addr := MustParseAddress("2001:db8::1")
	got := addr.NetIP()
	assert.Equal(t, netip.MustParseAddr("2001:db8::1"), got)
	assert.True(t, got.Is6())
}

func TestFromNetIP(t *testing.T) {
	t.Run("plain v6", func(t *testing.T) {
		addr, ok := FromNetIP(netip.MustParseAddr("2001:db8::1"))
		require.True(t, ok)
		assert.Equal(t, "2001:db8::1", addr.String())
	})

	t.Run("pure v4 is mapped", func(t *testing.T) {
		addr, ok := FromNetIP(netip.MustParseAddr("10.0.0.1"))
		require.True(t, ok)
		assert.True(t, addr.IsIPv4Mapped())
		assert.Equal(t, "::ffff:a00:1", addr.String())
	})

	t.Run("zoned addr rejected", func(t *testing.T) {
		_, ok := FromNetIP(netip.MustParseAddr("fe80::1%eth0"))
		assert.False(t, ok)
	})

	t.Run("invalid addr rejected", func(t *testing.T) {
		_, ok := FromNetIP(netip.Addr{})
		assert.False(t, ok)
	})
}

func TestPrefixConversion(t *testing.T) {
	c := MustParseCIDR("2001:db8::/32")
	p := c.Prefix()
	assert.Equal(t, netip.MustParsePrefix("2001:db8::/32"), p)

	back, ok := FromPrefix(p)
	require.True(t, ok)
	assert.True(t, back.Equal(c))

	_, ok = FromPrefix(netip.Prefix{})
	assert.False(t, ok)
}

func TestFromPrefixV4(t *testing.T) {
	// 纯 IPv4 前缀映射后前缀长度平移 96 位
	c, ok := FromPrefix(netip.MustParsePrefix("10.0.0.0/8"))
	require.True(t, ok)
	assert.Equal(t, 104, c.Range())
	assert.True(t, c.BaseAddress().IsIPv4Mapped())
}

func TestIPRange(t *testing.T) {
	c := MustParseCIDR("2001:db8::/126")
	r := c.IPRange()
	assert.Equal(t, "2001:db8::", r.From().String())
	assert.Equal(t, "2001:db8::3", r.To().String())
	assert.True(t, r.IsValid())

	// 未对齐基地址靠近上界时钳制区间尾
	base := MustParseAddress("ffff:ffff:ffff:ffff:ffff:ffff:ffff:fffe")
	top, err := NewCIDR(base, 64)
	require.NoError(t, err)
	r = top.IPRange()
	assert.Equal(t, "ffff:ffff:ffff:ffff:ffff:ffff:ffff:fffe", r.From().String())
	assert.Equal(t, "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff", r.To().String())
}
