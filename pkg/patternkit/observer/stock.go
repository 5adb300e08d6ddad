// Package observer broadcasts stock quotes to registered traders.
package observer

import (
	"log/slog"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Quote ranges, lower bound inclusive, upper bound exclusive.
const (
	usdMin, usdMax   = 20, 40
	euroMin, euroMax = 30, 50
)

// StockInfo is one round of trading quotes.
type StockInfo struct {
	QuoteID uuid.UUID
	USD     int
	Euro    int
}

// Observer reacts to quotes. Update returns the decision it made.
type Observer interface {
	Name() string
	Update(info StockInfo) string
}

// Stock is the observable exchange. It is safe for concurrent use.
type Stock struct {
	mu        sync.RWMutex
	observers []Observer

	rngMu sync.Mutex
	rng   *rand.Rand

	logger *slog.Logger
}

// NewStock creates an exchange drawing quotes from src. A nil src is seeded
// from the clock; a nil logger uses slog.Default().
func NewStock(src rand.Source, logger *slog.Logger) *Stock {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Stock{rng: rand.New(src), logger: logger}
}

// Register adds o. Registering the same observer twice has no effect.
func (s *Stock) Register(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.observers, o) {
		return
	}
	s.observers = append(s.observers, o)
}

// Deregister removes o. Unknown observers are ignored.
func (s *Stock) Deregister(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = slices.DeleteFunc(s.observers, func(x Observer) bool { return x == o })
}

// Observers returns the registered observer names in registration order.
func (s *Stock) Observers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.observers))
	for i, o := range s.observers {
		names[i] = o.Name()
	}
	return names
}

// Notify sends info to every observer registered at the time of the call and
// returns their decisions in registration order. Observers may register or
// deregister from inside Update.
func (s *Stock) Notify(info StockInfo) []string {
	s.mu.RLock()
	observers := slices.Clone(s.observers)
	s.mu.RUnlock()

	decisions := make([]string, 0, len(observers))
	for _, o := range observers {
		decisions = append(decisions, o.Update(info))
	}
	return decisions
}

// Market runs one round of trading: it draws new quotes and notifies.
func (s *Stock) Market() (StockInfo, []string) {
	s.rngMu.Lock()
	info := StockInfo{
		QuoteID: uuid.New(),
		USD:     usdMin + s.rng.Intn(usdMax-usdMin),
		Euro:    euroMin + s.rng.Intn(euroMax-euroMin),
	}
	s.rngMu.Unlock()

	s.logger.Debug("market quotes",
		slog.String("quote_id", info.QuoteID.String()),
		slog.Int("usd", info.USD),
		slog.Int("euro", info.Euro),
	)
	return info, s.Notify(info)
}
