package broker

import (
	"encoding/json"
	"fmt"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
	"lolpoker-server/pkg/playable"
)

// Publisher publishes hand-log messages outside of the server
type Publisher interface {
	Publish(tableID string, messages []*playable.LogMessage) error
	Close()
}

// Noop discards every message
type Noop struct{}

// Publish implements Publisher
func (Noop) Publish(string, []*playable.LogMessage) error {
	return nil
}

// Close implements Publisher
func (Noop) Close() {}

// conn is the part of *nats.Conn the broker needs
type conn interface {
	Publish(subj string, data []byte) error
	Drain() error
}

// NATS publishes hand-log messages to a NATS server
type NATS struct {
	conn   conn
	prefix string
}

// logEvent is the payload of a single published message
type logEvent struct {
	TableID  string                 `json:"tableId"`
	Messages []*playable.LogMessage `json:"messages"`
}

// Connect returns a NATS publisher
// If url is empty, a Noop publisher is returned
func Connect(url, token, prefix string) (Publisher, error) {
	if url == "" {
		return Noop{}, nil
	}

	opts := []nats.Option{
		nats.Name("lolpoker-server"),
	}

	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to NATS at %s: %w", url, err)
	}

	logrus.WithField("url", url).Info("connected to NATS")
	return newNATS(nc, prefix), nil
}

func newNATS(c conn, prefix string) *NATS {
	return &NATS{
		conn:   c,
		prefix: prefix,
	}
}

// Subject returns the subject messages for the table are published to
func (n *NATS) Subject(tableID string) string {
	return fmt.Sprintf("%s.%s.log", n.prefix, tableID)
}

// Publish implements Publisher
func (n *NATS) Publish(tableID string, messages []*playable.LogMessage) error {
	if len(messages) == 0 {
		return nil
	}

	data, err := json.Marshal(logEvent{
		TableID:  tableID,
		Messages: messages,
	})
	if err != nil {
		return err
	}

	return n.conn.Publish(n.Subject(tableID), data)
}

// Close drains the connection
func (n *NATS) Close() {
	if err := n.conn.Drain(); err != nil {
		logrus.WithError(err).Warn("could not drain NATS connection")
	}
}
