package broker

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

var (
	producerConn *nats.Conn
	producerMu   sync.RWMutex
)

var ErrProducerUnavailable = errors.New("broker producer is not initialized")

// InitProducer connects the publishing side to NATS. The application
// runs without it; callers of Publish get an error they are expected to
// log and swallow.
func InitProducer(natsURL string) error {
	conn, err := nats.Connect(natsURL,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return err
	}

	producerMu.Lock()
	producerConn = conn
	producerMu.Unlock()

	log.Println("NATS producer initialized")
	return nil
}

// Publish sends a message on a subject. Fire-and-forget delivery; NATS
// core gives no acknowledgment and none is needed for telemetry fanout.
func Publish(subject string, data []byte) error {
	producerMu.RLock()
	conn := producerConn
	producerMu.RUnlock()

	if conn == nil {
		return ErrProducerUnavailable
	}

	return conn.Publish(subject, data)
}

func CloseProducer() {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerConn != nil {
		producerConn.Close()
		producerConn = nil
	}
}
