package templatemethod

// Operations are the primitive steps of TemplateMethod.
type Operations interface {
	Operation1() string
	Operation2() string
}

// TemplateMethod runs Operation1 then Operation2.
func TemplateMethod(o Operations) []string {
	return []string{o.Operation1(), o.Operation2()}
}

type ConcreteClass struct{}

func (ConcreteClass) Operation1() string { return "operation 1" }
func (ConcreteClass) Operation2() string { return "operation 2" }
