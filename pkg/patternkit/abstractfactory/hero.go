// Package abstractfactory equips heroes from matching weapon and movement
// families.
package abstractfactory

import (
	"errors"
	"fmt"
	"slices"

	"github.com/randalmurphal/patternkit/pkg/patternkit/registry"
)

// ErrUnknownRace is returned for a race with no registered factory.
var ErrUnknownRace = errors.New("unknown hero race")

// Weapon attacks.
type Weapon interface {
	Hit() string
}

// Movement moves.
type Movement interface {
	Move() string
}

type Crossbow struct{}

func (Crossbow) Hit() string { return "shoot the crossbow" }

type Sword struct{}

func (Sword) Hit() string { return "strike with the sword" }

type RunMovement struct{}

func (RunMovement) Move() string { return "run" }

type FlyMovement struct{}

func (FlyMovement) Move() string { return "fly" }

// HeroFactory creates a weapon and a movement that belong together.
type HeroFactory interface {
	CreateWeapon() Weapon
	CreateMovement() Movement
}

// ElfFactory equips elves: crossbow and flight.
type ElfFactory struct{}

func (ElfFactory) CreateWeapon() Weapon     { return Crossbow{} }
func (ElfFactory) CreateMovement() Movement { return FlyMovement{} }

// WarriorFactory equips warriors: sword and running.
type WarriorFactory struct{}

func (WarriorFactory) CreateWeapon() Weapon     { return Sword{} }
func (WarriorFactory) CreateMovement() Movement { return RunMovement{} }

// Hero fights and moves with whatever its factory supplied.
type Hero struct {
	weapon   Weapon
	movement Movement
}

// NewHero equips a hero from f.
func NewHero(f HeroFactory) *Hero {
	return &Hero{weapon: f.CreateWeapon(), movement: f.CreateMovement()}
}

// Hit attacks with the hero's weapon.
func (h *Hero) Hit() string { return h.weapon.Hit() }

// Run moves the hero.
func (h *Hero) Run() string { return h.movement.Move() }

// Factories maps race names to hero factories.
type Factories struct {
	races *registry.Registry[string, HeroFactory]
}

// NewFactories returns the elf and warrior factories.
func NewFactories() *Factories {
	f := &Factories{races: registry.New[string, HeroFactory]()}
	f.Register("elf", ElfFactory{})
	f.Register("warrior", WarriorFactory{})
	return f
}

// Register adds or replaces the factory for race.
func (f *Factories) Register(race string, factory HeroFactory) {
	f.races.Register(race, factory)
}

// Factory returns the factory for race.
func (f *Factories) Factory(race string) (HeroFactory, error) {
	factory, ok := f.races.Get(race)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRace, race)
	}
	return factory, nil
}

// Hero equips a hero of the given race.
func (f *Factories) Hero(race string) (*Hero, error) {
	factory, err := f.Factory(race)
	if err != nil {
		return nil, err
	}
	return NewHero(factory), nil
}

// Races returns the registered races in sorted order.
func (f *Factories) Races() []string {
	races := f.races.Keys()
	slices.Sort(races)
	return races
}
