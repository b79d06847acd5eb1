package ipv6

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 密封接口的实现集合在编译期锁定。
var (
	_ Literal = Text("")
	_ Literal = Number(Uint128{})
	_ Literal = Hextets(nil)
	_ Literal = Address{}

	_ CIDRLiteral = CIDRText("")
	_ CIDRLiteral = CIDRSpec{}
	_ CIDRLiteral = CIDR{}
)

func TestCIDRSpecLiteral(t *testing.T) {
	spec := CIDRSpec{Address: Text("2001:db8::"), Range: 32}
	assert.True(t, IsValidCIDR(spec))

	c, err := ParseCIDR(spec)
	assert.NoError(t, err)
	assert.True(t, c.Equal(MustParseCIDR("2001:db8::/32")))
}
