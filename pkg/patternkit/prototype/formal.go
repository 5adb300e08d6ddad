package prototype

// Prototype is the minimal cloneable type.
type Prototype interface {
	ID() int
	Clone() Prototype
}

type ConcretePrototype1 struct{ id int }

func NewConcretePrototype1(id int) *ConcretePrototype1 { return &ConcretePrototype1{id: id} }

func (p *ConcretePrototype1) ID() int          { return p.id }
func (p *ConcretePrototype1) Clone() Prototype { return NewConcretePrototype1(p.id) }

type ConcretePrototype2 struct{ id int }

func NewConcretePrototype2(id int) *ConcretePrototype2 { return &ConcretePrototype2{id: id} }

func (p *ConcretePrototype2) ID() int          { return p.id }
func (p *ConcretePrototype2) Clone() Prototype { return NewConcretePrototype2(p.id) }
