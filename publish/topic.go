package publish

import (
	"context"

	"encodercode-go/bus"
)

var encoderRoot = bus.T("encoder")

// CountTopic is where an encoder's count is retained: encoder/<name>/count.
func CountTopic(name string) bus.Topic { return encoderRoot.Append(name, "count") }

// Topic publishes counts as retained bus messages, so late subscribers
// start from the current position.
type Topic struct {
	conn  *bus.Connection
	topic bus.Topic
}

func NewTopic(conn *bus.Connection, name string) *Topic {
	return &Topic{conn: conn, topic: CountTopic(name)}
}

func (t *Topic) Publish(count int64) {
	t.conn.Publish(bus.NewMessage(t.topic, count, true))
}

// Subscriber reads counts from a bus subscription. It owns a queue of
// length one, so it coalesces the same way Slot does.
type Subscriber struct {
	sub *bus.Subscription
}

func Subscribe(conn *bus.Connection, name string) *Subscriber {
	return &Subscriber{sub: conn.SubscribeN(CountTopic(name), 1)}
}

// Next waits for the next count. ok is false when ctx is done or the
// subscription has been closed.
func (s *Subscriber) Next(ctx context.Context) (int64, bool) {
	for {
		select {
		case <-ctx.Done():
			return 0, false
		case m, ok := <-s.sub.Channel():
			if !ok {
				return 0, false
			}
			if v, ok := m.Payload.(int64); ok {
				return v, true
			}
		}
	}
}

func (s *Subscriber) Close() { s.sub.Unsubscribe() }
