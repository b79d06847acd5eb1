package ipv6

// Literal 是地址字面量的密封接口。
// 实现类型：[Text]、[Number]、[Hextets] 和 [Address] 本身。
//
// 设计决策: 用密封接口加穷举类型分支替代运行时鸭子类型探测，
// 非法变体在编译期即被拒绝。
type Literal interface {
	isAddressLiteral()
}

// Text 是冒分十六进制字符串字面量，
// 支持至多一个 "::" 压缩段与 "::ffff:a.b.c.d" IPv4 映射后缀。
type Text string

// Number 是 128 位整数字面量。
type Number Uint128

// Hextets 是十六位段数组字面量，要求恰好 8 个元素，每个在 [0, 0xFFFF] 内。
// 使用 int 切片以便将长度错误和越界元素报告为校验失败而非编译错误。
type Hextets []int

func (Text) isAddressLiteral()    {}
func (Number) isAddressLiteral()  {}
func (Hextets) isAddressLiteral() {}
func (Address) isAddressLiteral() {}

// CIDRLiteral 是 CIDR 字面量的密封接口。
// 实现类型：[CIDRText]、[CIDRSpec] 和 [CIDR] 本身。
type CIDRLiteral interface {
	isCIDRLiteral()
}

// CIDRText 是 "address/prefix" 形式的字符串字面量，如 "2001:db8::/32"。
type CIDRText string

// CIDRSpec 是结构化 CIDR 字面量：地址字面量加前缀长度。
type CIDRSpec struct {
	// Address 是任意地址字面量，不得为 nil。
	Address Literal
	// Range 是前缀长度，合法范围 [0, 128]。
	Range int
}

func (CIDRText) isCIDRLiteral() {}
func (CIDRSpec) isCIDRLiteral() {}
func (CIDR) isCIDRLiteral()     {}
