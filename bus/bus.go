// bus.go
package bus

import (
	"strings"
	"sync"
)

// -----------------------------------------------------------------------------
// Topics
// -----------------------------------------------------------------------------

// Topic is a sequence of path tokens, e.g. {"encoder", "enc1", "count"}.
type Topic []string

// T builds a topic from tokens.
func T(tokens ...string) Topic { return Topic(tokens) }

// Append returns a new topic with extra tokens; the receiver is not modified.
func (t Topic) Append(tokens ...string) Topic {
	out := make(Topic, 0, len(t)+len(tokens))
	out = append(out, t...)
	return append(out, tokens...)
}

func (t Topic) String() string { return strings.Join(t, "/") }

// -----------------------------------------------------------------------------
// Message
// -----------------------------------------------------------------------------

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
}

// NewMessage is a convenience constructor.
func NewMessage(topic Topic, payload any, retained bool) *Message {
	return &Message{Topic: topic, Payload: payload, Retained: retained}
}

// -----------------------------------------------------------------------------
// Subscription
// -----------------------------------------------------------------------------

type Subscription struct {
	topic Topic
	ch    chan *Message
	conn  *Connection // owning connection
	once  sync.Once
}

func (s *Subscription) Topic() Topic             { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

// close is safe to call more than once.
func (s *Subscription) close() { s.once.Do(func() { close(s.ch) }) }

// -----------------------------------------------------------------------------
// Trie node
// -----------------------------------------------------------------------------

type node struct {
	children map[string]*node
	subs     []*Subscription
	retained *Message
}

// -----------------------------------------------------------------------------
// Bus
// -----------------------------------------------------------------------------

type Bus struct {
	mu   sync.Mutex
	root *node
	qLen int
}

// NewBus creates a new bus with the given default subscription queue length.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8 // safe default
	}
	return &Bus{
		root: &node{},
		qLen: queueLen,
	}
}

// walk returns the node for topic, creating it when create is set.
// Caller holds b.mu.
func (b *Bus) walk(topic Topic, create bool) *node {
	n := b.root
	for _, tok := range topic {
		child, ok := n.children[tok]
		if !ok {
			if !create {
				return nil
			}
			if n.children == nil {
				n.children = make(map[string]*node)
			}
			child = &node{}
			n.children[tok] = child
		}
		n = child
	}
	return n
}

// addSubscription inserts a subscription into the trie.
func (b *Bus) addSubscription(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.walk(sub.topic, true)
	n.subs = append(n.subs, sub)

	// Deliver retained message if present.
	if n.retained != nil {
		select {
		case sub.ch <- n.retained:
		default:
		}
	}
}

// Publish delivers a message to all subscribers of its topic.
// A subscriber whose queue is full loses its oldest message, so slow
// readers always end up holding the newest values.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.walk(msg.Topic, msg.Retained)
	if n == nil {
		return
	}

	for _, sub := range n.subs {
		select {
		case sub.ch <- msg:
		default:
			// drop oldest if queue full
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- msg:
			default:
			}
		}
	}

	// Store or clear retained message.
	if msg.Retained {
		if msg.Payload == nil {
			n.retained = nil
		} else {
			n.retained = msg
		}
	}
}

// Retained returns the retained message for topic, if any.
func (b *Bus) Retained(topic Topic) (*Message, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.walk(topic, false)
	if n == nil || n.retained == nil {
		return nil, false
	}
	return n.retained, true
}

// unsubscribe removes a subscription from the trie.
func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	topic := sub.topic
	n := b.root
	var stack []*node
	for _, t := range topic {
		child, ok := n.children[t]
		if !ok {
			return
		}
		stack = append(stack, n)
		n = child
	}

	// Remove subscription.
	for i, s := range n.subs {
		if s == sub {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			break
		}
	}

	// Prune empty nodes.
	for i := len(topic) - 1; i >= 0; i-- {
		parent := stack[i]
		key := topic[i]
		child := parent.children[key]
		if len(child.subs) == 0 && len(child.children) == 0 && child.retained == nil {
			delete(parent.children, key)
		} else {
			break
		}
	}
}

// -----------------------------------------------------------------------------
// Connection
// -----------------------------------------------------------------------------

type Connection struct {
	bus  *Bus
	subs []*Subscription
	mu   sync.Mutex
}

// NewConnection creates a new connection bound to this bus.
func (b *Bus) NewConnection() *Connection {
	return &Connection{bus: b}
}

// Publish sends a message via the bus.
func (c *Connection) Publish(msg *Message) {
	c.bus.Publish(msg)
}

// Subscribe registers a subscription with the bus default queue length.
func (c *Connection) Subscribe(topic Topic) *Subscription {
	return c.SubscribeN(topic, c.bus.qLen)
}

// SubscribeN registers a subscription with its own queue length.
// A length of 1 gives latest-value-wins delivery.
func (c *Connection) SubscribeN(topic Topic, queueLen int) *Subscription {
	if queueLen <= 0 {
		queueLen = c.bus.qLen
	}
	sub := &Subscription{
		topic: topic,
		ch:    make(chan *Message, queueLen),
		conn:  c,
	}
	c.bus.addSubscription(sub)
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	return sub
}

// Unsubscribe removes a subscription owned by this connection.
func (c *Connection) Unsubscribe(sub *Subscription) {
	c.bus.unsubscribe(sub)
	c.mu.Lock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	sub.close()
}

// Disconnect closes all subscriptions and clears them.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()

	for _, sub := range subs {
		c.bus.unsubscribe(sub)
		sub.close()
	}
}
