package builder

// Product collects the parts a Builder adds.
type Product struct {
	parts []string
}

// Add appends a part.
func (p *Product) Add(part string) {
	p.parts = append(p.parts, part)
}

// Parts returns the parts in the order they were added.
func (p *Product) Parts() []string {
	return append([]string(nil), p.parts...)
}

// Builder builds a Product in three parts.
type Builder interface {
	BuildPartA()
	BuildPartB()
	BuildPartC()
	Result() *Product
}

// ConcreteBuilder adds one named part per step.
type ConcreteBuilder struct {
	product Product
}

func (b *ConcreteBuilder) BuildPartA()      { b.product.Add("Part A") }
func (b *ConcreteBuilder) BuildPartB()      { b.product.Add("Part B") }
func (b *ConcreteBuilder) BuildPartC()      { b.product.Add("Part C") }
func (b *ConcreteBuilder) Result() *Product { return &b.product }

// Director drives a Builder through the construction steps.
type Director struct {
	builder Builder
}

// NewDirector creates a director for b.
func NewDirector(b Builder) *Director {
	return &Director{builder: b}
}

// Construct runs the steps in order.
func (d *Director) Construct() {
	d.builder.BuildPartA()
	d.builder.BuildPartB()
	d.builder.BuildPartC()
}
