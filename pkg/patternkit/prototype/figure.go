// Package prototype creates figures by copying existing ones.
package prototype

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"slices"

	"github.com/randalmurphal/patternkit/pkg/patternkit/registry"
)

// ErrUnknownPrototype is returned when spawning an unregistered name.
var ErrUnknownPrototype = errors.New("unknown prototype")

// Figure can copy itself.
type Figure interface {
	Clone() Figure
	Info() string
}

// Rectangle is a value-only figure; Clone copies it completely.
type Rectangle struct {
	Width  int
	Height int
}

// Clone implements Figure.
func (r *Rectangle) Clone() Figure {
	c := *r
	return &c
}

// Info implements Figure.
func (r *Rectangle) Info() string {
	return fmt.Sprintf("rectangle with height %d and width %d", r.Height, r.Width)
}

// Point is a circle center.
type Point struct {
	X int
	Y int
}

// Circle refers to its center by pointer, so Clone shares it and DeepCopy
// does not.
type Circle struct {
	Radius int
	Center *Point
}

// NewCircle creates a circle of radius r centered at (x, y).
func NewCircle(r, x, y int) *Circle {
	return &Circle{Radius: r, Center: &Point{X: x, Y: y}}
}

// Clone implements Figure with a shallow copy.
func (c *Circle) Clone() Figure {
	cp := *c
	return &cp
}

// DeepCopy copies c through a gob round trip.
func (c *Circle) DeepCopy() (*Circle, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode circle: %w", err)
	}
	var cp Circle
	if err := gob.NewDecoder(&buf).Decode(&cp); err != nil {
		return nil, fmt.Errorf("decode circle: %w", err)
	}
	return &cp, nil
}

// Info implements Figure.
func (c *Circle) Info() string {
	if c.Center == nil {
		return fmt.Sprintf("circle with radius %d", c.Radius)
	}
	return fmt.Sprintf("circle with radius %d centered at (%d, %d)", c.Radius, c.Center.X, c.Center.Y)
}

// Registry holds named prototype figures.
type Registry struct {
	figures *registry.Registry[string, Figure]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{figures: registry.New[string, Figure]()}
}

// Register stores f under name, replacing any previous prototype.
func (r *Registry) Register(name string, f Figure) {
	r.figures.Register(name, f)
}

// Spawn returns a clone of the prototype registered under name.
func (r *Registry) Spawn(name string) (Figure, error) {
	f, ok := r.figures.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrototype, name)
	}
	return f.Clone(), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := r.figures.Keys()
	slices.Sort(names)
	return names
}
