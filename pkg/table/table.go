package table

import (
	"github.com/sirupsen/logrus"
	"lolpoker-server/internal/rng"
	"lolpoker-server/internal/util"
	"lolpoker-server/pkg/catalog"
	"lolpoker-server/pkg/deck"
	"lolpoker-server/pkg/handanalyzer"
	"lolpoker-server/pkg/playable"
	"lolpoker-server/pkg/potmanager"
	"lolpoker-server/pkg/turntimer"
)

// Table is a single game: the lobby, the seats, and the hand being played
// A Table is not safe for concurrent use. Every method, and every callback handed
// to the scheduler, must run on the same goroutine (see room.Dealer)
type Table struct {
	ID string

	logger    logrus.FieldLogger
	catalog   *catalog.Catalog
	options   Options
	rng       rng.Generator
	scheduler turntimer.Scheduler
	timer     *turntimer.Timer

	state     State
	pickOrder []catalog.Lane
	decks     []*deck.Deck
	estimator *handanalyzer.Estimator
	board     []*catalog.Card
	pot       int
	toBet     int
	settled   potmanager.Pots

	players    []*Player
	spectators []*Player
	queue      []*Player
	// departed left mid-hand, their chips stay in the pot until settlement
	departed []*Player

	restart turntimer.Stopper
	closed  bool
	nextID  int64
	logs    []*playable.LogMessage
}

// New returns a table waiting for players
func New(id string, logger logrus.FieldLogger, c *catalog.Catalog, opts Options, g rng.Generator, scheduler turntimer.Scheduler) (*Table, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if c == nil || c.Size() == 0 {
		return nil, catalog.ErrEmptyCatalog
	}

	return &Table{
		ID:        id,
		logger:    logger.WithField("table", id),
		catalog:   c,
		options:   opts,
		rng:       g,
		scheduler: scheduler,
		timer:     turntimer.New(scheduler, opts.TurnSeconds, opts.TickInterval),
		state:     StateReadyUp,
	}, nil
}

// State returns the state of the table
func (t *Table) State() State {
	return t.state
}

// Pot returns the chips committed to the current hand
func (t *Table) Pot() int {
	return t.pot
}

// ToBet returns the level every active player has to match
func (t *Table) ToBet() int {
	return t.toBet
}

// Board returns the revealed cards
func (t *Table) Board() []*catalog.Card {
	return t.board
}

// PickOrder returns the lane order for the current hand
func (t *Table) PickOrder() []catalog.Lane {
	return t.pickOrder
}

// Players returns the seated players in turn order
func (t *Table) Players() []*Player {
	return t.players
}

// Pots returns the result of the last settlement
func (t *Table) Pots() potmanager.Pots {
	return t.settled
}

// Summary is a snapshot of the table suitable for listings
type Summary struct {
	ID          string `json:"id"`
	State       State  `json:"state"`
	Seated      int    `json:"seated"`
	MaxSeats    int    `json:"maxSeats"`
	Spectators  int    `json:"spectators"`
	Queued      int    `json:"queued"`
	Pot         int    `json:"pot"`
	BoardLength int    `json:"boardLength"`
}

// Summary returns a snapshot of the table
func (t *Table) Summary() Summary {
	return Summary{
		ID:          t.ID,
		State:       t.state,
		Seated:      len(t.players),
		MaxSeats:    t.options.MaxSeats,
		Spectators:  len(t.spectators),
		Queued:      len(t.queue),
		Pot:         t.pot,
		BoardLength: len(t.board),
	}
}

// Connect adds a connection to the table
// The player is seated if the table is between hands and has room, otherwise they spectate
func (t *Table) Connect(conn playable.Connection) *Player {
	t.nextID++
	p := newPlayer(t.nextID, util.GetRandomName(t.rng), conn, t.options.StartingBank)

	if t.state == StateReadyUp && len(t.players) < t.options.MaxSeats {
		p.state = PlayerStateReadyUp
		t.players = append(t.players, p)
		t.logger.WithField("player", p.ID).Debug("seated player")
		t.sendReady()
		return p
	}

	p.state = PlayerStateQueueUp
	t.spectators = append(t.spectators, p)
	t.logger.WithField("player", p.ID).Debug("player is spectating")
	p.send(lobbyKey, lobbyView{LeftButton: buttonQueueUp})
	t.sendSpectatorView(p)
	return p
}

// Disconnect removes a connection from the table
func (t *Table) Disconnect(p *Player) {
	logger := t.logger.WithField("player", p.ID).WithField("state", p.state)
	logger.Debug("player disconnected")

	switch p.state {
	case PlayerStateReadyUp, PlayerStateReady:
		t.leaveLobby(p)
	case PlayerStateQueueUp:
		t.spectators = removePlayer(t.spectators, p)
	case PlayerStateQueue:
		t.queue = removePlayer(t.queue, p)
		t.sendQueue()
	case PlayerStateWaitingTurn, PlayerStateCurrentTurn, PlayerStateFinishedTurn, PlayerStateFolded, PlayerStateAllIn:
		t.leaveHand(p)
	default:
		logger.Warn("disconnected player has no state")
	}

	p.conn = nil
}

// Action performs an action for the player
// An error means the action was ignored and nothing changed
func (t *Table) Action(p *Player, payload *playable.PayloadIn) error {
	if t.closed {
		return ErrTableIsClosed
	}

	action, err := ActionFromString(payload.Type)
	if err != nil {
		return err
	}

	switch action {
	case ActionReadyUp:
		return t.readyUp(p)
	case ActionUnready:
		return t.unready(p)
	case ActionQueueUp:
		return t.queueUp(p)
	case ActionUnqueue:
		return t.unqueue(p)
	case ActionName:
		return t.setName(p, payload.Name)
	case ActionShow:
		return t.show(p)
	}

	return t.bettingAction(p, action, payload.Raise)
}

// Close stops every timer. The table ignores any further input
func (t *Table) Close() {
	t.closed = true
	t.timer.Cancel()
	t.cancelRestart()
}

// DrainLogs returns the log messages since the last call
func (t *Table) DrainLogs() []*playable.LogMessage {
	logs := t.logs
	t.logs = nil
	return logs
}

func (t *Table) log(playerID int64, format string, a ...interface{}) {
	t.logs = append(t.logs, playable.SimpleLogMessage(playerID, format, a...))
}

func (t *Table) logCards(playerID int64, cards []*catalog.Card, format string, a ...interface{}) {
	t.logs = append(t.logs, playable.CardsLogMessage(playerID, cards, format, a...))
}

func (t *Table) indexOf(p *Player) int {
	for i, player := range t.players {
		if player == p {
			return i
		}
	}

	return -1
}

// seatHands returns the hole cards of every seated player
func (t *Table) seatHands() []handanalyzer.Hand {
	hands := make([]handanalyzer.Hand, len(t.players))
	for i, p := range t.players {
		hands[i] = p.hand
	}

	return hands
}

func (t *Table) notFolded() int {
	n := 0
	for _, p := range t.players {
		if p.state != PlayerStateFolded {
			n++
		}
	}

	return n
}

func removePlayer(players []*Player, p *Player) []*Player {
	for i, player := range players {
		if player == p {
			return append(players[:i], players[i+1:]...)
		}
	}

	return players
}
