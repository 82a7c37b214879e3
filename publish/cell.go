package publish

import (
	"context"
	"sync/atomic"
)

// Cell is an atomic latest-value slot. One writer, any number of
// readers; neither side ever blocks.
type Cell struct {
	v atomic.Int64
}

func NewCell() *Cell { return &Cell{} }

func (c *Cell) Publish(count int64) { c.v.Store(count) }

func (c *Cell) Load() int64 { return c.v.Load() }

// Next returns the current value immediately. ok is false only once ctx
// is done.
func (c *Cell) Next(ctx context.Context) (int64, bool) {
	if ctx.Err() != nil {
		return 0, false
	}
	return c.v.Load(), true
}
