package command

import "sync/atomic"

// Receiver performs the work a ConcreteCommand asks for.
type Receiver struct {
	operations atomic.Int32
}

// Operation does the work and returns a message.
func (r *Receiver) Operation() string {
	r.operations.Add(1)
	return "receiver operation"
}

// Operations returns how many times Operation ran.
func (r *Receiver) Operations() int {
	return int(r.operations.Load())
}

// ConcreteCommand forwards Execute to a Receiver. Undo does nothing.
type ConcreteCommand struct {
	receiver *Receiver
}

// NewConcreteCommand binds the command to r.
func NewConcreteCommand(r *Receiver) *ConcreteCommand {
	return &ConcreteCommand{receiver: r}
}

func (c *ConcreteCommand) Execute() string { return c.receiver.Operation() }
func (c *ConcreteCommand) Undo() string    { return "" }
func (c *ConcreteCommand) Name() string    { return "concrete" }

// Invoker runs a single command without knowing its receiver.
type Invoker struct {
	command Command
}

// SetCommand sets the command to run.
func (i *Invoker) SetCommand(c Command) {
	i.command = c
}

// Run executes the command, if any.
func (i *Invoker) Run() string {
	if i.command == nil {
		return ""
	}
	return i.command.Execute()
}

// Cancel undoes the command, if any.
func (i *Invoker) Cancel() string {
	if i.command == nil {
		return ""
	}
	return i.command.Undo()
}
