// Package factory lets each developer decide which kind of house it builds.
package factory

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/randalmurphal/patternkit/pkg/patternkit/registry"
)

// ErrUnknownKind is returned for a house kind with no registered developer.
var ErrUnknownKind = errors.New("unknown house kind")

// House kinds.
const (
	KindPanel  = "panel"
	KindWooden = "wooden"
)

// House is a built house.
type House interface {
	Kind() string
}

type PanelHouse struct{}

func (PanelHouse) Kind() string { return KindPanel }

type WoodenHouse struct{}

func (WoodenHouse) Kind() string { return KindWooden }

// Developer is a company that builds one kind of house.
type Developer interface {
	Name() string
	Create() House
}

// developer holds the company name and logger.
type developer struct {
	name   string
	logger *slog.Logger
}

func newDeveloper(name string, kind string, logger *slog.Logger) developer {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("developer founded", slog.String("company", name), slog.String("kind", kind))
	return developer{name: name, logger: logger}
}

func (d developer) Name() string { return d.name }

func (d developer) built(h House) House {
	d.logger.Info("house built", slog.String("company", d.name), slog.String("kind", h.Kind()))
	return h
}

// PanelDeveloper builds panel houses.
type PanelDeveloper struct {
	developer
}

// NewPanelDeveloper creates a panel developer. A nil logger uses slog.Default().
func NewPanelDeveloper(company string, logger *slog.Logger) *PanelDeveloper {
	return &PanelDeveloper{newDeveloper(company, KindPanel, logger)}
}

// Create implements Developer.
func (d *PanelDeveloper) Create() House { return d.built(PanelHouse{}) }

// WoodenDeveloper builds wooden houses.
type WoodenDeveloper struct {
	developer
}

// NewWoodenDeveloper creates a wooden developer. A nil logger uses slog.Default().
func NewWoodenDeveloper(company string, logger *slog.Logger) *WoodenDeveloper {
	return &WoodenDeveloper{newDeveloper(company, KindWooden, logger)}
}

// Create implements Developer.
func (d *WoodenDeveloper) Create() House { return d.built(WoodenHouse{}) }

// NewDeveloperFunc founds a developer for a company.
type NewDeveloperFunc func(company string, logger *slog.Logger) Developer

// Catalog maps house kinds to developer constructors.
type Catalog struct {
	kinds  *registry.Registry[string, NewDeveloperFunc]
	logger *slog.Logger
}

// NewCatalog returns a catalog with the panel and wooden developers.
func NewCatalog(logger *slog.Logger) *Catalog {
	c := &Catalog{
		kinds:  registry.New[string, NewDeveloperFunc](),
		logger: logger,
	}
	c.Register(KindPanel, func(company string, logger *slog.Logger) Developer {
		return NewPanelDeveloper(company, logger)
	})
	c.Register(KindWooden, func(company string, logger *slog.Logger) Developer {
		return NewWoodenDeveloper(company, logger)
	})
	return c
}

// Register adds or replaces the developer constructor for kind.
func (c *Catalog) Register(kind string, fn NewDeveloperFunc) {
	c.kinds.Register(kind, fn)
}

// Developer founds a developer of the given kind.
func (c *Catalog) Developer(kind, company string) (Developer, error) {
	fn, ok := c.kinds.Get(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return fn(company, c.logger), nil
}

// Kinds returns the registered kinds in sorted order.
func (c *Catalog) Kinds() []string {
	kinds := c.kinds.Keys()
	slices.Sort(kinds)
	return kinds
}
