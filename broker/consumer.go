package broker

import (
	"log"

	"github.com/nats-io/nats.go"
)

// Consumer wraps a set of queue subscriptions and funnels their messages
// into one channel, the shape the preview hub consumes.
type Consumer struct {
	conn     *nats.Conn
	subs     []*nats.Subscription
	messages chan *nats.Msg
}

// InitConsumer connects and subscribes to the given subjects as part of
// a queue group, so multiple instances split the stream.
func InitConsumer(natsURL string, subjects []string, queue string) (*Consumer, error) {
	conn, err := nats.Connect(natsURL)
	if err != nil {
		return nil, err
	}

	consumer := &Consumer{
		conn:     conn,
		messages: make(chan *nats.Msg, 256),
	}

	for _, subject := range subjects {
		sub, err := conn.QueueSubscribe(subject, queue, func(msg *nats.Msg) {
			select {
			case consumer.messages <- msg:
			default:
				log.Printf("Dropping message on %s: consumer channel full", msg.Subject)
			}
		})
		if err != nil {
			consumer.Close()
			return nil, err
		}
		consumer.subs = append(consumer.subs, sub)
	}

	log.Printf("NATS consumer started, listening to subjects: %v", subjects)
	return consumer, nil
}

// GetMessageChannel returns the channel messages are delivered on.
func (c *Consumer) GetMessageChannel() chan *nats.Msg {
	return c.messages
}

func (c *Consumer) Close() {
	for _, sub := range c.subs {
		if err := sub.Unsubscribe(); err != nil {
			log.Printf("Failed to unsubscribe from %s: %v", sub.Subject, err)
		}
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
