// Package builder assembles bread step by step.
package builder

import "strings"

// Flour is the bread's flour.
type Flour struct {
	Sort string
}

// Salt marks salted bread.
type Salt struct{}

// Additives is an optional improver.
type Additives struct {
	Name string
}

// Bread is the assembled product. Nil parts are absent.
type Bread struct {
	Flour     *Flour
	Salt      *Salt
	Additives *Additives
}

// String lists the present parts, one per line.
func (b *Bread) String() string {
	var parts []string
	if b.Flour != nil {
		parts = append(parts, b.Flour.Sort)
	}
	if b.Salt != nil {
		parts = append(parts, "salt")
	}
	if b.Additives != nil {
		parts = append(parts, "additives: "+b.Additives.Name)
	}
	return strings.Join(parts, "\n")
}

// BreadBuilder sets the parts of one loaf.
type BreadBuilder interface {
	Reset()
	SetFlour()
	SetSalt()
	SetAdditives()
	Bread() *Bread
}

// loaf holds the bread under construction.
type loaf struct {
	bread *Bread
}

// Reset starts a new loaf.
func (l *loaf) Reset() { l.bread = &Bread{} }

// Bread returns the current loaf.
func (l *loaf) Bread() *Bread { return l.bread }

// RyeBreadBuilder makes salted rye bread without additives.
type RyeBreadBuilder struct {
	loaf
}

func (b *RyeBreadBuilder) SetFlour()     { b.bread.Flour = &Flour{Sort: "rye flour, first grade"} }
func (b *RyeBreadBuilder) SetSalt()      { b.bread.Salt = &Salt{} }
func (b *RyeBreadBuilder) SetAdditives() {}

// WheatBreadBuilder makes salted premium wheat bread with a baking improver.
type WheatBreadBuilder struct {
	loaf
}

func (b *WheatBreadBuilder) SetFlour() { b.bread.Flour = &Flour{Sort: "wheat flour, premium grade"} }
func (b *WheatBreadBuilder) SetSalt()  { b.bread.Salt = &Salt{} }
func (b *WheatBreadBuilder) SetAdditives() {
	b.bread.Additives = &Additives{Name: "baking improver"}
}

// Baker runs a BreadBuilder through its steps in a fixed order.
type Baker struct{}

// Bake returns a fresh loaf from b.
func (Baker) Bake(b BreadBuilder) *Bread {
	b.Reset()
	b.SetFlour()
	b.SetSalt()
	b.SetAdditives()
	return b.Bread()
}
