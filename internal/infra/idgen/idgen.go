// Package idgen mints identifiers for cart lines, orders and addresses.
package idgen

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"bazaar/internal/domain/service"

	"github.com/oklog/ulid/v2"
)

// ulidGenerator produces lexically sortable ids, monotonic within a millisecond.
type ulidGenerator struct {
	mu      sync.Mutex
	prefix  string
	entropy io.Reader
	now     func() time.Time
}

// NewULIDGenerator returns an IDGenerator whose ids sort by creation time.
func NewULIDGenerator() service.IDGenerator {
	return newULIDGenerator("", time.Now)
}

// NewOrderIDGenerator returns ULID ids carrying the "ORD" prefix shown on receipts.
func NewOrderIDGenerator() service.IDGenerator {
	return newULIDGenerator("ORD", time.Now)
}

func newULIDGenerator(prefix string, now func() time.Time) *ulidGenerator {
	return &ulidGenerator{
		prefix:  prefix,
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     now,
	}
}

func (g *ulidGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.prefix + ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}
