package room

import (
	"context"
	"github.com/sirupsen/logrus"
	"lolpoker-server/internal/broker"
	"lolpoker-server/internal/rng"
	"lolpoker-server/pkg/catalog"
	"lolpoker-server/pkg/playable"
	"lolpoker-server/pkg/table"
	"lolpoker-server/pkg/turntimer"
	"sync"
	"time"
)

// Dealer runs a single table
// Every change to the table happens on the dealer's run loop
type Dealer struct {
	table     *table.Table
	logger    logrus.FieldLogger
	publisher broker.Publisher
	clients   map[*Client]bool
	lock      sync.RWMutex

	// logMessages must only be accessed from the run loop
	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	close         chan bool
	endShift      sync.Once
}

// NewDealer creates a new dealer object and its table
func NewDealer(id string, logger logrus.FieldLogger, c *catalog.Catalog, opts table.Options, g rng.Generator, publisher broker.Publisher) (*Dealer, error) {
	d := &Dealer{
		logger:        logger.WithField("table", id),
		publisher:     publisher,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}

	tbl, err := table.New(id, logger, c, opts, g, d)
	if err != nil {
		return nil, err
	}

	d.table = tbl
	return d, nil
}

// ID returns the table ID
func (d *Dealer) ID() string {
	return d.table.ID
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// exec queues fn on the run loop
// false is returned if the dealer has ended its shift
func (d *Dealer) exec(fn func()) bool {
	select {
	case <-d.close:
		return false
	default:
	}

	select {
	case d.execInRunLoop <- fn:
		return true
	case <-d.close:
		return false
	}
}

// event runs fn on the run loop and then publishes whatever it logged
func (d *Dealer) event(fn func()) bool {
	return d.exec(func() {
		fn()
		d.flushLogs()
	})
}

// AfterFunc schedules fn on the run loop after duration
func (d *Dealer) AfterFunc(duration time.Duration, fn func()) turntimer.Stopper {
	return time.AfterFunc(duration, func() {
		d.event(fn)
	})
}

// flushLogs sends new log messages to every client and the publisher
// NOTE: must only be called from the run loop
func (d *Dealer) flushLogs() {
	logs := d.table.DrainLogs()
	if len(logs) == 0 {
		return
	}

	d.addLogMessages(logs)
	resp := d.logsResponse()
	for _, client := range d.Clients() {
		client.Send(resp)
	}

	if err := d.publisher.Publish(d.table.ID, logs); err != nil {
		d.logger.WithError(err).Warn("could not publish log messages")
	}
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.event(func() {
		client.player = d.table.Connect(client)
		client.Send(d.logsResponse())
	})
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) {
	d.lock.Lock()
	delete(d.clients, client)
	d.lock.Unlock()

	d.event(func() {
		if client.player == nil {
			return
		}

		d.table.Disconnect(client.player)
		client.player = nil
	})
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	d.event(func() {
		if c.player == nil {
			d.logger.WithField("client", c.String()).Warn("received message from a client without a player")
			return
		}

		if err := d.table.Action(c.player, msg); err != nil {
			d.logger.WithError(err).WithFields(logrus.Fields{
				"client": c.String(),
				"type":   msg.Type,
			}).Debug("ignored action")
		}
	})
}

// Summary returns a snapshot of the table
func (d *Dealer) Summary(ctx context.Context) (table.Summary, error) {
	result := make(chan table.Summary, 1)
	if !d.exec(func() {
		result <- d.table.Summary()
	}) {
		return table.Summary{}, table.ErrTableIsClosed
	}

	select {
	case summary := <-result:
		return summary, nil
	case <-ctx.Done():
		return table.Summary{}, ctx.Err()
	case <-d.close:
		return table.Summary{}, table.ErrTableIsClosed
	}
}

// EndShift stops the table's timers and the run loop
func (d *Dealer) EndShift() {
	d.endShift.Do(func() {
		done := make(chan bool)
		if d.exec(func() {
			d.table.Close()
			close(done)
		}) {
			<-done
		}

		close(d.close)
	})
}
