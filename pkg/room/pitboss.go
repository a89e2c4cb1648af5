package room

import (
	"context"
	"errors"
	"github.com/sirupsen/logrus"
	"lolpoker-server/internal/broker"
	"lolpoker-server/internal/rng"
	"lolpoker-server/pkg/catalog"
	"lolpoker-server/pkg/table"
)

// ErrTableNotFound is returned when a client asks for a table that does not exist
var ErrTableNotFound = errors.New("table not found")

// PitBoss is responsible for dispatching players to tables
// The set of tables is fixed once the PitBoss is created
type PitBoss struct {
	dealers   map[string]*Dealer
	order     []string
	publisher broker.Publisher
}

// NewPitBoss returns a PitBoss with a dealer for each table id
func NewPitBoss(logger logrus.FieldLogger, c *catalog.Catalog, opts table.Options, ids []string, g rng.Generator, publisher broker.Publisher) (*PitBoss, error) {
	p := &PitBoss{
		dealers:   make(map[string]*Dealer, len(ids)),
		order:     make([]string, 0, len(ids)),
		publisher: publisher,
	}

	for _, id := range ids {
		if _, found := p.dealers[id]; found {
			return nil, errors.New("duplicate table: " + id)
		}

		dealer, err := NewDealer(id, logger, c, opts, g, publisher)
		if err != nil {
			return nil, err
		}

		p.dealers[id] = dealer
		p.order = append(p.order, id)
	}

	return p, nil
}

// StartShift starts every dealer's run loop
func (p *PitBoss) StartShift() {
	for _, id := range p.order {
		p.dealers[id].StartShift()
	}
}

// EndShift stops every dealer and closes the publisher
func (p *PitBoss) EndShift() {
	for _, id := range p.order {
		p.dealers[id].EndShift()
	}

	p.publisher.Close()
}

// Dealer returns the dealer running the table
func (p *PitBoss) Dealer(id string) (*Dealer, bool) {
	d, found := p.dealers[id]
	return d, found
}

// Summaries returns a snapshot of every table, in configuration order
func (p *PitBoss) Summaries(ctx context.Context) ([]table.Summary, error) {
	summaries := make([]table.Summary, 0, len(p.order))
	for _, id := range p.order {
		summary, err := p.dealers[id].Summary(ctx)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// ClientConnected is called when a client connects to a table
func (p *PitBoss) ClientConnected(tableID string, client *Client) error {
	dealer, found := p.dealers[tableID]
	if !found {
		return ErrTableNotFound
	}

	logrus.WithField("client", client.ID).WithField("table", tableID).Debug("client connected")
	dealer.AddClient(client)
	return nil
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	if client.dealer == nil {
		logrus.WithField("client", client.ID).WithField("type", "exception").Error("client has no dealer")
		return
	}

	logrus.WithField("client", client.String()).Debug("client disconnected")
	client.dealer.RemoveClient(client)
}
