package ipv6_test

import (
	"fmt"

	"github.com/omeyang/cidrkit/pkg/ipv6"
)

func ExampleParseAddress() {
	addr, err := ipv6.ParseAddress("2001:0db8:0000:0000:0000:0000:0000:0001")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(addr)
	fmt.Println(addr.FullString())
	// Output:
	// 2001:db8::1
	// 2001:0db8:0000:0000:0000:0000:0000:0001
}

func ExampleParseLiteral() {
	a, _ := ipv6.ParseLiteral(ipv6.Text("2001:db8::1"))
	b, _ := ipv6.ParseLiteral(ipv6.Hextets{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1})
	fmt.Println(a, a.Equal(b))
	// Output:
	// 2001:db8::1 true
}

func ExampleCIDR_Subnet() {
	c, _ := ipv6.ParseCIDRString("2001:db8::/32")
	subs, _ := c.Subnet(34)
	for _, s := range subs {
		fmt.Println(s)
	}
	// Output:
	// 2001:db8::/34
	// 2001:db8:4000::/34
	// 2001:db8:8000::/34
	// 2001:db8:c000::/34
}

func ExampleCIDR_AddressCount() {
	c, _ := ipv6.ParseCIDRString("::/0")
	fmt.Println(c.AddressCount())
	// Output:
	// 340282366920938463463374607431768211456
}

func ExampleCIDR_AddressesLimit() {
	c, _ := ipv6.ParseCIDRString("2001:db8::/32")
	for addr := range c.AddressesLimit(3) {
		fmt.Println(addr)
	}
	// Output:
	// 2001:db8::
	// 2001:db8::1
	// 2001:db8::2
}

func ExampleIsValidAddressString() {
	fmt.Println(ipv6.IsValidAddressString("2001:db8::1"))
	fmt.Println(ipv6.IsValidAddressString("::ffff:192.168.1.1"))
	fmt.Println(ipv6.IsValidAddressString("2001:db8:::1"))
	// Output:
	// true
	// true
	// false
}
