package fee

import (
	"context"
	"sync"
)

// Purse holds the cycles a caller attached to a single request.
type Purse struct {
	mu        sync.Mutex
	available uint64
	accepted  uint64
}

func NewPurse(attached uint64) *Purse {
	return &Purse{available: attached}
}

// Accept moves up to amount cycles from the attached balance into the
// accepted balance and returns how many were moved.
func (p *Purse) Accept(amount uint64) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	accepted := min(amount, p.available)
	p.available -= accepted
	p.accepted += accepted

	return accepted
}

// Available returns the attached cycles not accepted yet.
func (p *Purse) Available() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.available
}

// Accepted returns the cycles accepted so far.
func (p *Purse) Accepted() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.accepted
}

type contextKey string

const purseContextKey contextKey = "fee_purse"

// WithPurse attaches p to ctx.
func WithPurse(ctx context.Context, p *Purse) context.Context {
	return context.WithValue(ctx, purseContextKey, p)
}

// PurseFromContext returns the purse of ctx, or an empty one.
func PurseFromContext(ctx context.Context) *Purse {
	p, ok := ctx.Value(purseContextKey).(*Purse)
	if !ok || p == nil {
		return NewPurse(0)
	}

	return p
}

// Accept accepts up to amount cycles from the purse attached to ctx.
func Accept(ctx context.Context, amount uint64) uint64 {
	return PurseFromContext(ctx).Accept(amount)
}
