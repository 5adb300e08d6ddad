package strategy

// Strategy is an interchangeable algorithm.
type Strategy interface {
	Algorithm() string
}

type ConcreteStrategy1 struct{}

func (ConcreteStrategy1) Algorithm() string { return "algorithm 1" }

type ConcreteStrategy2 struct{}

func (ConcreteStrategy2) Algorithm() string { return "algorithm 2" }

// Context runs whichever Strategy it currently holds.
type Context struct {
	Strategy Strategy
}

// ExecuteAlgorithm runs the current strategy.
func (c *Context) ExecuteAlgorithm() string {
	return c.Strategy.Algorithm()
}
