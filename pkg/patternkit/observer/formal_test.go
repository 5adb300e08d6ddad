package observer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcreteObservable(t *testing.T) {
	tests := []struct {
		name    string
		steps   func(o *ConcreteObservable, a, b *ConcreteObserver)
		want    []string
		updates [2]int
	}{
		{
			name:  "no observers",
			steps: func(*ConcreteObservable, *ConcreteObserver, *ConcreteObserver) {},
			want:  []string{},
		},
		{
			name: "notifies in add order",
			steps: func(o *ConcreteObservable, a, b *ConcreteObserver) {
				o.AddObserver(b)
				o.AddObserver(a)
			},
			want:    []string{"b updated", "a updated"},
			updates: [2]int{1, 1},
		},
		{
			name: "removed observer is skipped",
			steps: func(o *ConcreteObservable, a, b *ConcreteObserver) {
				o.AddObserver(a)
				o.AddObserver(b)
				o.RemoveObserver(a)
			},
			want:    []string{"b updated"},
			updates: [2]int{0, 1},
		},
		{
			name: "removing an unknown observer is a no-op",
			steps: func(o *ConcreteObservable, a, b *ConcreteObserver) {
				o.AddObserver(a)
				o.RemoveObserver(b)
			},
			want:    []string{"a updated"},
			updates: [2]int{1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &ConcreteObserver{Label: "a"}
			b := &ConcreteObserver{Label: "b"}
			var o Observable = &ConcreteObservable{}
			tt.steps(o.(*ConcreteObservable), a, b)

			assert.Equal(t, tt.want, o.NotifyObservers())
			assert.Equal(t, tt.updates, [2]int{a.Updates, b.Updates})
		})
	}
}
