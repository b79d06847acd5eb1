package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLiteral(t *testing.T) {
	tests := []struct {
		lit  string
		want bool
	}{
		{"192.168.1.1", true},
		{"192.168.1.256", false},
		{"192.168.0.0/24", true},
		{"192.168.0.0/24.5", false},
		{"2001:db8::1", true},
		{"2001:db8:::1", false},
		{"2001:db8::/32", true},
		{"2001:db8::/129", false},
	}
	for _, tt := range tests {
		t.Run(tt.lit, func(t *testing.T) {
			assert.Equal(t, tt.want, checkLiteral(tt.lit))
		})
	}
}

func TestRenderInfo(t *testing.T) {
	t.Run("v4 address", func(t *testing.T) {
		out, err := renderInfo("192.168.1.1")
		require.NoError(t, err)
		assert.Contains(t, out, "3232235777")
		assert.Contains(t, out, "私有:   是")
	})

	t.Run("v6 cidr", func(t *testing.T) {
		out, err := renderInfo("2001:db8::/32")
		require.NoError(t, err)
		assert.Contains(t, out, "ffff:ffff::")
		assert.Contains(t, out, "79228162514264337593543950336")
	})

	t.Run("bad literal", func(t *testing.T) {
		_, err := renderInfo("300.0.0.1")
		assert.Error(t, err)
	})
}

func TestRenderSubnets(t *testing.T) {
	out, err := renderSubnets("192.168.0.0/24", 26)
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.0/26\n192.168.0.64/26\n192.168.0.128/26\n192.168.0.192/26\n", out)

	out, err = renderSubnets("2001:db8::/32", 34)
	require.NoError(t, err)
	assert.Contains(t, out, "2001:db8:c000::/34\n")

	_, err = renderSubnets("192.168.0.0/24", 16)
	assert.Error(t, err)
}

func TestRenderSplit(t *testing.T) {
	out, err := renderSplit("192.168.0.0/24", []int{25, 26, 27, 27})
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.0/25\n192.168.0.128/26\n192.168.0.192/27\n192.168.0.224/27\n", out)

	_, err = renderSplit("192.168.0.0/24", []int{24, 24})
	assert.Error(t, err)
}

func TestParsePrefixList(t *testing.T) {
	bits, err := parsePrefixList("25, 26,27")
	require.NoError(t, err)
	assert.Equal(t, []int{25, 26, 27}, bits)

	_, err = parsePrefixList("25,abc")
	require.Error(t, err)
	var ue *usageError
	assert.ErrorAs(t, err, &ue)
}

func TestRenderFormat(t *testing.T) {
	out, err := renderFormat("2001:0db8:0000:0000:0000:0000:0000:0001", false, false)
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::1", out)

	out, err = renderFormat("2001:db8::1", true, false)
	require.NoError(t, err)
	assert.Equal(t, "2001:0db8:0000:0000:0000:0000:0000:0001", out)

	out, err = renderFormat("001.002.003.004", false, false)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3.4", out)

	out, err = renderFormat("192.168.1.1", false, true)
	require.NoError(t, err)
	assert.Equal(t, "11000000.10101000.00000001.00000001", out)
}
