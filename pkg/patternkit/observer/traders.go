package observer

import (
	"fmt"
	"log/slog"
	"sync"
)

// Trading thresholds on the USD quote.
const (
	brokerSellAbove = 30
	bankSellAbove   = 35
)

// trader holds what Broker and Bank share.
type trader struct {
	name   string
	logger *slog.Logger

	mu    sync.Mutex
	stock *Stock
	last  string
}

func (t *trader) Name() string { return t.name }

// LastDecision returns the most recent decision, or "" before any quote.
func (t *trader) LastDecision() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

func (t *trader) decide(info StockInfo, decision string) string {
	t.mu.Lock()
	t.last = decision
	t.mu.Unlock()

	t.logger.Info(decision, slog.String("quote_id", info.QuoteID.String()))
	return decision
}

// Broker trades dollars: it sells when USD is above 30 and buys otherwise.
type Broker struct {
	trader
}

// NewBroker creates a broker and registers it with stock.
func NewBroker(name string, stock *Stock, logger *slog.Logger) *Broker {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Broker{trader{name: name, stock: stock, logger: logger}}
	stock.Register(b)
	return b
}

// Update implements Observer.
func (b *Broker) Update(info StockInfo) string {
	verb := "buys"
	if info.USD > brokerSellAbove {
		verb = "sells"
	}
	return b.decide(info, fmt.Sprintf("broker %s %s dollars; USD rate %d", b.name, verb, info.USD))
}

// StopTrade deregisters the broker. Later calls do nothing.
func (b *Broker) StopTrade() {
	b.mu.Lock()
	stock := b.stock
	b.stock = nil
	b.mu.Unlock()

	if stock != nil {
		stock.Deregister(b)
	}
}

// Bank trades euros: it sells when USD is above 35 and buys otherwise.
type Bank struct {
	trader
}

// NewBank creates a bank and registers it with stock.
func NewBank(name string, stock *Stock, logger *slog.Logger) *Bank {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bank{trader{name: name, stock: stock, logger: logger}}
	stock.Register(b)
	return b
}

// Update implements Observer.
func (b *Bank) Update(info StockInfo) string {
	verb := "buys"
	if info.USD > bankSellAbove {
		verb = "sells"
	}
	return b.decide(info, fmt.Sprintf("bank %s %s euro; EUR rate %d", b.name, verb, info.Euro))
}
