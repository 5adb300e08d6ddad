package abstractfactory

// AbstractProductA and AbstractProductB are the two product kinds of a family.
type AbstractProductA interface{ Name() string }
type AbstractProductB interface{ Name() string }

type ProductA1 struct{}
type ProductB1 struct{}
type ProductA2 struct{}
type ProductB2 struct{}

func (ProductA1) Name() string { return "A1" }
func (ProductB1) Name() string { return "B1" }
func (ProductA2) Name() string { return "A2" }
func (ProductB2) Name() string { return "B2" }

// AbstractFactory creates one product of each kind from the same family.
type AbstractFactory interface {
	CreateProductA() AbstractProductA
	CreateProductB() AbstractProductB
}

type ConcreteFactory1 struct{}

func (ConcreteFactory1) CreateProductA() AbstractProductA { return ProductA1{} }
func (ConcreteFactory1) CreateProductB() AbstractProductB { return ProductB1{} }

type ConcreteFactory2 struct{}

func (ConcreteFactory2) CreateProductA() AbstractProductA { return ProductA2{} }
func (ConcreteFactory2) CreateProductB() AbstractProductB { return ProductB2{} }

// Client works with products without knowing their family.
type Client struct {
	a AbstractProductA
	b AbstractProductB
}

// NewClient takes both products from f.
func NewClient(f AbstractFactory) *Client {
	return &Client{b: f.CreateProductB(), a: f.CreateProductA()}
}

// Run returns the names of the client's products.
func (c *Client) Run() []string {
	return []string{c.a.Name(), c.b.Name()}
}
