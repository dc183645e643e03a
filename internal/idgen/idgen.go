// Package idgen issues booking identifiers.
package idgen

import (
	"sync"
	"time"
)

// Millis generates epoch-millisecond identifiers with a monotonic guard:
// an id issued at the same millisecond as the previous one is bumped past
// it, so rapid sequential creates cannot collide.
type Millis struct {
	mu   sync.Mutex
	last int64
}

func NewMillis() *Millis {
	return &Millis{}
}

func (g *Millis) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id

	return id
}
