package ipv4

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetIP(t *testing.T) {
	addr := MustParseAddress("192.168.1.1")
	got := addr.NetIP()
	assert.Equal(t, netip.MustParseAddr("192.168.1.1"), got)
	assert.True(t, got.Is4())
}

func TestFromNetIP(t *testing.T) {
	t.Run("plain v4", func(t *testing.T) {
		addr, ok := FromNetIP(netip.MustParseAddr("10.0.0.1"))
		require.True(t, ok)
		assert.Equal(t, "10.0.0.1", addr.String())
	})

	t.Run("v4-mapped v6 is unmapped", func(t *testing.T) {
		addr, ok := FromNetIP(netip.MustParseAddr("::ffff:10.0.0.1"))
		require.True(t, ok)
		assert.Equal(t, "10.0.0.1", addr.String())
	})

	t.Run("plain v6 rejected", func(t *testing.T) {
		_, ok := FromNetIP(netip.MustParseAddr("2001:db8::1"))
		assert.False(t, ok)
	})

	t.Run("invalid addr rejected", func(t *testing.T) {
		_, ok := FromNetIP(netip.Addr{})
		assert.False(t, ok)
	})
}

func TestPrefixConversion(t *testing.T) {
	c := MustParseCIDR("192.168.0.0/24")
	p := c.Prefix()
	assert.Equal(t, netip.MustParsePrefix("192.168.0.0/24"), p)

	back, ok := FromPrefix(p)
	require.True(t, ok)
	assert.True(t, back.Equal(c))

	_, ok = FromPrefix(netip.Prefix{})
	assert.False(t, ok)

	_, ok = FromPrefix(netip.MustParsePrefix("2001:db8::/32"))
	assert.False(t, ok)
}

func TestIPRange(t *testing.T) {
	c := MustParseCIDR("192.168.1.0/24")
	r := c.IPRange()
	assert.Equal(t, "192.168.1.0", r.From().String())
	assert.Equal(t, "192.168.1.255", r.To().String())
	assert.True(t, r.IsValid())

	// 未对齐基地址靠近上界时钳制区间尾
	top := MustParseCIDR("255.255.255.200/24")
	r = top.IPRange()
	assert.Equal(t, "255.255.255.200", r.From().String())
	assert.Equal(t, "255.255.255.255", r.To().String())
}
