package ipv4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 密封接口的实现集合在编译期锁定。
var (
	_ Literal = Text("")
	_ Literal = Number(0)
	_ Literal = Octets(nil)
	_ Literal = Address{}

	_ CIDRLiteral = CIDRText("")
	_ CIDRLiteral = CIDRSpec{}
	_ CIDRLiteral = CIDR{}
)

func TestCIDRSpecLiteral(t *testing.T) {
	spec := CIDRSpec{Address: Text("192.168.0.0"), Range: 24}
	assert.True(t, IsValidCIDR(spec))

	c, err := ParseCIDR(spec)
	assert.NoError(t, err)
	assert.True(t, c.Equal(MustParseCIDR("192.168.0.0/24")))
}
