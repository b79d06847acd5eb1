package ipv6

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidAddressString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"full form", "2001:0db8:0000:0000:0000:0000:0000:0001", true},
		{"compressed", "2001:db8::1", true},
		{"all zero", "::", true},
		{"loopback", "::1", true},
		{"trailing compression", "2001:db8::", true},
		{"uppercase hex", "2001:DB8::1", true},
		{"mixed case", "2001:Db8::aB", true},
		{"max address", "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff", true},
		{"mapped form", "::ffff:192.168.1.1", true},
		{"mapped uppercase prefix", "::FFFF:10.0.0.1", true},
		{"compression of one group", "1:2:3:4:5:6:7::", true},
		{"compression of zero groups tolerated", "1:2:3:4:5:6:7::8", true},
		{"leading and trailing space", "  2001:db8::1  ", true},
		{"double compression", "2001::db8::1", false},
		{"triple colon", "2001:db8:::1", false},
		{"too many groups", "1:2:3:4:5:6:7:8:9", false},
		{"too few groups", "1:2:3:4:5:6:7", false},
		{"group too long", "12345::", false},
		{"non-hex digit", "2001:dg8::1", false},
		{"empty", "", false},
		{"lone colon", ":", false},
		{"inner whitespace", "2001:db8 ::1", false},
		{"mapped octet overflow", "::ffff:256.0.0.1", false},
		{"mapped wrong group count", "::ffff:1.2.3", false},
		{"dotted without mapped prefix", "1:2:3:4:5:6:1.2.3.4", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidAddressString(tt.in))
		})
	}
}

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name string
		in   Literal
		want bool
	}{
		{"nil literal", nil, false},
		{"text", Text("2001:db8::1"), true},
		{"bad text", Text("2001:db8:::1"), false},
		{"any number is valid", Number(uint128Max), true},
		{"hextets", Hextets{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}, true},
		{"hextets wrong length", Hextets{1, 2, 3}, false},
		{"hextets component overflow", Hextets{0x10000, 0, 0, 0, 0, 0, 0, 0}, false},
		{"hextets negative component", Hextets{-1, 0, 0, 0, 0, 0, 0, 0}, false},
		{"address passes through", MustParseAddress("::1"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidAddress(tt.in))
		})
	}
}

func TestParseAddress(t *testing.T) {
	t.Run("canonical integer", func(t *testing.T) {
		addr, err := ParseAddress("2001:db8::1")
		require.NoError(t, err)
		assert.Equal(t, Uint128{Hi: 0x20010DB800000000, Lo: 1}, addr.Value())
	})

	t.Run("compression expands to zeros", func(t *testing.T) {
		a := MustParseAddress("2001:db8::1")
		b := MustParseAddress("2001:0db8:0000:0000:0000:0000:0000:0001")
		assert.True(t, a.Equal(b))
	})

	t.Run("mapped form synthesizes tail groups", func(t *testing.T) {
		addr, err := ParseAddress("::ffff:192.168.1.1")
		require.NoError(t, err)
		assert.Equal(t, [8]uint16{0, 0, 0, 0, 0, 0xFFFF, 0xC0A8, 0x0101}, addr.Hextets())
		assert.True(t, addr.IsIPv4Mapped())
	})

	t.Run("failure carries literal", func(t *testing.T) {
		_, err := ParseAddress("2001:db8:::1")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAddressFormat)
		assert.Contains(t, err.Error(), "2001:db8:::1")
	})
}

func TestParseLiteral(t *testing.T) {
	want := MustParseAddress("2001:db8::1")

	tests := []struct {
		name string
		in   Literal
	}{
		{"text", Text("2001:db8::1")},
		{"number", Number(Uint128{Hi: 0x20010DB800000000, Lo: 1})},
		{"hextets", Hextets{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}},
		{"address", want},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLiteral(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(want))
		})
	}

	t.Run("nil literal rejected", func(t *testing.T) {
		_, err := ParseLiteral(nil)
		assert.ErrorIs(t, err, ErrAddressFormat)
	})
}

func TestFromBigInt(t *testing.T) {
	addr, err := FromBigInt(big.NewInt(1))
	require.NoError(t, err)
	assert.True(t, addr.IsLoopback())

	_, err = FromBigInt(new(big.Int).Lsh(big.NewInt(1), 128))
	assert.ErrorIs(t, err, ErrAddressFormat)
}

// 校验通过的输入解析必定成功，反之亦然。
func TestValidateParseConsistency(t *testing.T) {
	inputs := []string{
		"2001:db8::1", "::", "::1", "2001:db8:::1", "1:2:3:4:5:6:7:8",
		"::ffff:10.0.0.1", "::ffff:300.0.0.1", "12345::", "", "g::1",
	}
	for _, s := range inputs {
		_, err := ParseAddress(s)
		assert.Equal(t, IsValidAddressString(s), err == nil, "input %q", s)
	}
}

func TestIsValidCIDRString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"documentation block", "2001:db8::/32", true},
		{"whole space", "::/0", true},
		{"single address", "2001:db8::1/128", true},
		{"surrounding space", " 2001:db8::/32 ", true},
		{"prefix too large", "2001:db8::/129", false},
		{"fractional prefix rejected", "2001:db8::/32.5", false},
		{"negative prefix", "2001:db8::/-1", false},
		{"missing slash", "2001:db8::", false},
		{"missing address", "/32", false},
		{"bad address part", "2001:db8:::1/64", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCIDRString(tt.in))
		})
	}
}

func TestParseCIDR(t *testing.T) {
	t.Run("text literal", func(t *testing.T) {
		c, err := ParseCIDR(CIDRText("2001:db8::/32"))
		require.NoError(t, err)
		assert.Equal(t, 32, c.Range())
		assert.Equal(t, "2001:db8::", c.BaseAddress().String())
	})

	t.Run("spec with nested literal", func(t *testing.T) {
		c, err := ParseCIDR(CIDRSpec{Address: Hextets{0x2001, 0xdb8, 0, 0, 0, 0, 0, 0}, Range: 32})
		require.NoError(t, err)
		assert.True(t, c.Equal(MustParseCIDR("2001:db8::/32")))
	})

	t.Run("cidr passes through", func(t *testing.T) {
		orig := MustParseCIDR("2001:db8::/32")
		c, err := ParseCIDR(orig)
		require.NoError(t, err)
		assert.True(t, c.Equal(orig))
	})

	t.Run("spec error chain keeps both sentinels", func(t *testing.T) {
		_, err := ParseCIDR(CIDRSpec{Address: Text("2001:db8:::1"), Range: 64})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCIDRFormat)
		assert.ErrorIs(t, err, ErrAddressFormat)
	})

	t.Run("spec prefix out of range", func(t *testing.T) {
		_, err := ParseCIDR(CIDRSpec{Address: Text("::1"), Range: 129})
		assert.ErrorIs(t, err, ErrCIDRFormat)
	})

	t.Run("nil spec address", func(t *testing.T) {
		_, err := ParseCIDR(CIDRSpec{Range: 64})
		assert.ErrorIs(t, err, ErrCIDRFormat)
	})

	t.Run("nil literal", func(t *testing.T) {
		_, err := ParseCIDR(nil)
		assert.ErrorIs(t, err, ErrCIDRFormat)
	})
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParseAddress("2001:db8:::1") })
	assert.Panics(t, func() { MustParseCIDR("2001:db8::/129") })
	assert.NotPanics(t, func() { MustParseAddress("::1") })
	assert.NotPanics(t, func() { MustParseCIDR("::/0") })
}
