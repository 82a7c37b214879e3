// Package publish hands the latest encoder count from its single
// sampling goroutine to readers. Every strategy coalesces: a reader may
// miss intermediate values but always ends up with the newest one.
package publish

// Publisher is the capability the sampling loop is given.
// Publish must not block.
type Publisher interface {
	Publish(count int64)
}

// Func adapts a plain function.
type Func func(count int64)

func (f Func) Publish(count int64) { f(count) }

// Multi fans one count out to several publishers, in order.
type Multi []Publisher

func (m Multi) Publish(count int64) {
	for _, p := range m {
		p.Publish(count)
	}
}
