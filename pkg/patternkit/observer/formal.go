package observer

import "slices"

// Subscriber is notified by an Observable. It knows nothing about the
// subject beyond being called.
type Subscriber interface {
	Update() string
}

// Observable manages subscribers and notifies them.
type Observable interface {
	AddObserver(s Subscriber)
	RemoveObserver(s Subscriber)
	NotifyObservers() []string
}

// ConcreteObservable keeps subscribers in the order they were added.
// It is not safe for concurrent use; Stock is.
type ConcreteObservable struct {
	observers []Subscriber
}

func (o *ConcreteObservable) AddObserver(s Subscriber) {
	o.observers = append(o.observers, s)
}

// RemoveObserver drops the first occurrence of s.
func (o *ConcreteObservable) RemoveObserver(s Subscriber) {
	if i := slices.Index(o.observers, s); i >= 0 {
		o.observers = slices.Delete(o.observers, i, i+1)
	}
}

func (o *ConcreteObservable) NotifyObservers() []string {
	out := make([]string, 0, len(o.observers))
	for _, s := range o.observers {
		out = append(out, s.Update())
	}
	return out
}

type ConcreteObserver struct {
	Label   string
	Updates int
}

func (c *ConcreteObserver) Update() string {
	c.Updates++
	return c.Label + " updated"
}
