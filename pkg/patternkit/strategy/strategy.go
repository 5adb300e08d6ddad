// Package strategy swaps a car's propulsion at runtime.
package strategy

import (
	"fmt"
	"sync"
)

// Mover is a propulsion strategy.
type Mover interface {
	Move() string
}

// PetrolMove drives on petrol.
type PetrolMove struct{}

func (PetrolMove) Move() string { return "moving on petrol" }

// ElectricMove drives on electricity.
type ElectricMove struct{}

func (ElectricMove) Move() string { return "moving on electricity" }

// Car delegates movement to its current Mover.
type Car struct {
	Passengers int
	Model      string

	mu    sync.RWMutex
	mover Mover
}

// NewCar creates a car using mover.
func NewCar(passengers int, model string, mover Mover) *Car {
	return &Car{Passengers: passengers, Model: model, mover: mover}
}

// SetMover replaces the strategy.
func (c *Car) SetMover(m Mover) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mover = m
}

// Move moves the car with the current strategy. A car without one stands still.
func (c *Car) Move() string {
	c.mu.RLock()
	m := c.mover
	c.mu.RUnlock()

	if m == nil {
		return fmt.Sprintf("%s stands still", c.Model)
	}
	return fmt.Sprintf("%s: %s", c.Model, m.Move())
}
