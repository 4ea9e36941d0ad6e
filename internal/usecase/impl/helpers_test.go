package impl

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"bazaar/config"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Checkout.DeliveryFee = 40
	cfg.Checkout.TaxRate = 0.05
	cfg.Profile.RecentSearchLimit = 10

	return cfg
}

// sequenceIDs hands out prefix-1, prefix-2, ...
type sequenceIDs struct {
	prefix string
	n      atomic.Int64
}

func (g *sequenceIDs) NewID() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.n.Add(1))
}
