package table

import (
	"lolpoker-server/pkg/catalog"
	"lolpoker-server/pkg/handanalyzer"
	"lolpoker-server/pkg/potmanager"
)

// response keys
const (
	lobbyKey    = "lobby"
	turnKey     = "turn"
	tickKey     = "tick"
	finishedKey = "finished"
)

// spectatorIndex is the seat index sent to anybody without a seat
const spectatorIndex = -1

// buttons shown to the player
const (
	buttonReadyUp       = "ready up"
	buttonReadyCount    = "ready count"
	buttonQueueUp       = "queue up"
	buttonQueuePosition = "queue position"
	buttonFoldAny       = "fold any"
	buttonCheckAny      = "check any"
	buttonCallAny       = "call any"
)

type lobbyView struct {
	LeftButton  string `json:"leftButton"`
	ReadyCount  int    `json:"readyCount,omitempty"`
	PlayerCount int    `json:"playerCount,omitempty"`
	Position    int    `json:"position,omitempty"`
}

// PlayerData is what everybody can see about a seated player
type PlayerData struct {
	Bank  int         `json:"bank"`
	Pot   int         `json:"pot"`
	State PlayerState `json:"state"`
	Name  string      `json:"name"`
}

// CardView is a card without its synergy tables
type CardView struct {
	Name   string       `json:"name"`
	Lane   catalog.Lane `json:"lane"`
	Points int          `json:"points"`
}

// BoardCard is a board card with its synergy for the recipient's hole cards
type BoardCard struct {
	Name        string       `json:"name"`
	Lane        catalog.Lane `json:"lane"`
	LeftPoints  int          `json:"leftPoints"`
	RightPoints int          `json:"rightPoints"`
}

// TurnView is sent whenever the betting changes
type TurnView struct {
	PlayersData  []PlayerData   `json:"playersData"`
	PlayerHand   []*CardView    `json:"playerHand"`
	Synergy      int            `json:"synergy"`
	Index        int            `json:"index"`
	Score        int            `json:"score"`
	WinChance    int            `json:"winchance"`
	MaxScore     int            `json:"maxScore"`
	MinBet       int            `json:"minBet"`
	MaxBet       int            `json:"maxBet"`
	Pot          int            `json:"pot"`
	PotBet       int            `json:"potBet"`
	Board        []BoardCard    `json:"board"`
	Lanes        []catalog.Lane `json:"lanes"`
	LeftButton   string         `json:"leftButton,omitempty"`
	MiddleButton string         `json:"middleButton,omitempty"`
	RightButton  string         `json:"rightButton,omitempty"`
}

// TickView is sent every time the clock ticks
type TickView struct {
	ActivePlayer []bool `json:"activePlayer"`
	Index        int    `json:"index"`
	TimeLeft     int    `json:"timeLeft"`
}

// ShowdownData is what everybody can see about a seated player after the hand
// Cards and points are left out for folded players that did not show
type ShowdownData struct {
	Left        *CardView   `json:"left"`
	Right       *CardView   `json:"right"`
	LeftPoints  []int       `json:"leftPoints"`
	RightPoints []int       `json:"rightPoints"`
	Synergy     int         `json:"synergy"`
	Score       int         `json:"score"`
	Alpha       float64     `json:"alpha"`
	Bank        int         `json:"bank"`
	Won         int         `json:"won"`
	Name        string      `json:"name"`
	State       PlayerState `json:"state"`
	Unshow      bool        `json:"unshow"`
}

// FinishedView is sent when the hand is over
type FinishedView struct {
	PlayersData []ShowdownData  `json:"playersData"`
	PlayerHand  []*CardView     `json:"playerHand"`
	Synergy     int             `json:"synergy"`
	Index       int             `json:"index"`
	Score       int             `json:"score"`
	Alpha       float64         `json:"alpha"`
	Board       []BoardCard     `json:"board"`
	Finished    bool            `json:"finished"`
	Pot         int             `json:"pot"`
	Pots        potmanager.Pots `json:"pots"`
	Lanes       []catalog.Lane  `json:"lanes"`
	LeftButton  string          `json:"leftButton,omitempty"`
	RestartIn   int64           `json:"restartIn"`
}

func newCardView(c *catalog.Card) *CardView {
	if c == nil {
		return nil
	}

	return &CardView{
		Name:   c.Name,
		Lane:   c.Lane,
		Points: c.Points,
	}
}

func handView(h handanalyzer.Hand) []*CardView {
	if !h.IsDealt() {
		return nil
	}

	return []*CardView{newCardView(h[0]), newCardView(h[1])}
}

// boardView returns the board, with synergy for the hand if it was dealt
func (t *Table) boardView(h handanalyzer.Hand) []BoardCard {
	board := make([]BoardCard, len(t.board))
	for i, c := range t.board {
		board[i] = BoardCard{
			Name: c.Name,
			Lane: c.Lane,
		}

		if h.IsDealt() {
			board[i].LeftPoints = h[0].SynergyWith(c)
			board[i].RightPoints = h[1].SynergyWith(c)
		}
	}

	return board
}

func (t *Table) playersData() []PlayerData {
	data := make([]PlayerData, len(t.players))
	for i, p := range t.players {
		data[i] = PlayerData{
			Bank:  p.available(),
			Pot:   p.committed,
			State: p.state,
			Name:  p.Name,
		}
	}

	return data
}

// turnView returns the view for the seat at index, or the public view if p is nil
func (t *Table) turnView(players []PlayerData, p *Player, index int) *TurnView {
	view := &TurnView{
		PlayersData: players,
		Index:       spectatorIndex,
		MaxScore:    handanalyzer.MaxScore(len(t.board)),
		Pot:         t.pot,
		PotBet:      t.toBet,
		Lanes:       t.pickOrder,
	}

	if p == nil {
		view.Board = t.boardView(handanalyzer.Hand{})
		return view
	}

	view.Index = index
	view.PlayerHand = handView(p.hand)
	view.Synergy = p.hand.Synergy()
	view.Score = p.score
	view.WinChance = p.winChance
	view.Board = t.boardView(p.hand)
	view.MaxBet = p.available()
	view.MinBet = p.owes(t.toBet)
	if view.MinBet > view.MaxBet {
		view.MinBet = view.MaxBet
	}

	switch p.state {
	case PlayerStateCurrentTurn:
		view.LeftButton = string(ActionFold)
		if view.MinBet == 0 {
			view.MiddleButton = string(ActionCheck)
			view.RightButton = string(ActionRaise)
		} else if view.MinBet == view.MaxBet {
			view.RightButton = string(ActionAllIn)
		} else {
			view.MiddleButton = string(ActionCall)
			view.RightButton = string(ActionRaise)
		}
	case PlayerStateWaitingTurn, PlayerStateFinishedTurn:
		view.LeftButton = buttonFoldAny
		view.MiddleButton = buttonCheckAny
		view.RightButton = buttonCallAny
	}

	return view
}

func (t *Table) showdownData() []ShowdownData {
	data := make([]ShowdownData, len(t.players))
	for i, p := range t.players {
		sd := ShowdownData{
			Bank:   p.bank,
			Won:    p.won,
			Name:   p.Name,
			Unshow: p.isHidden(),
		}

		switch {
		case p.winner:
			sd.State = PlayerStateCurrentTurn
		case p.state == PlayerStateFolded:
			sd.State = PlayerStateFolded
		default:
			sd.State = PlayerStateWaitingTurn
		}

		if !sd.Unshow && p.hand.IsDealt() {
			sd.Left = newCardView(p.hand[0])
			sd.Right = newCardView(p.hand[1])
			sd.LeftPoints, sd.RightPoints = handanalyzer.Breakdown(p.hand, t.board)
			sd.Synergy = p.hand.Synergy()
			sd.Score = p.score
			sd.Alpha = p.alpha
		}

		data[i] = sd
	}

	return data
}

// finishedView returns the view for the seat at index, or the public view if p is nil
func (t *Table) finishedView(players []ShowdownData, p *Player, index int) *FinishedView {
	view := &FinishedView{
		PlayersData: players,
		Index:       spectatorIndex,
		Finished:    true,
		Pot:         t.settled.Total(),
		Pots:        t.settled,
		Lanes:       t.pickOrder,
		RestartIn:   t.options.RestartDelay.Milliseconds(),
	}

	if p == nil {
		view.Board = t.boardView(handanalyzer.Hand{})
		return view
	}

	view.Index = index
	view.PlayerHand = handView(p.hand)
	view.Score = p.score
	view.Alpha = p.alpha
	view.Board = t.boardView(p.hand)
	if p.hand.IsDealt() {
		view.Synergy = p.hand.Synergy()
	}

	if p.isHidden() && !p.winner {
		view.LeftButton = string(ActionShow)
	}

	return view
}

// sendViews refreshes whatever view matches the state of the table
func (t *Table) sendViews() {
	switch {
	case t.state.InBettingRound():
		t.sendTurn()
	case t.state.IsSettled():
		t.sendFinished()
	}
}

// unseated returns every connection without a seat
func (t *Table) unseated() []*Player {
	unseated := make([]*Player, 0, len(t.spectators)+len(t.queue))
	unseated = append(unseated, t.spectators...)
	return append(unseated, t.queue...)
}

func (t *Table) sendTurn() {
	if !t.state.InBettingRound() {
		return
	}

	players := t.playersData()
	for i, p := range t.players {
		p.send(turnKey, t.turnView(players, p, i))
	}

	public := t.turnView(players, nil, spectatorIndex)
	for _, p := range t.unseated() {
		p.send(turnKey, public)
	}
}

// sendTick reports the time left for the player on the clock
func (t *Table) sendTick(timeLeft int) {
	active := make([]bool, len(t.players))
	for i, p := range t.players {
		active[i] = p.state == PlayerStateCurrentTurn
	}

	for i, p := range t.players {
		p.send(tickKey, TickView{ActivePlayer: active, Index: i, TimeLeft: timeLeft})
	}

	for _, p := range t.unseated() {
		p.send(tickKey, TickView{ActivePlayer: active, Index: spectatorIndex, TimeLeft: timeLeft})
	}
}

func (t *Table) sendFinished() {
	if !t.state.IsSettled() {
		return
	}

	players := t.showdownData()
	for i, p := range t.players {
		p.send(finishedKey, t.finishedView(players, p, i))
	}

	public := t.finishedView(players, nil, spectatorIndex)
	for _, p := range t.unseated() {
		p.send(finishedKey, public)
	}
}

// sendSpectatorView catches a new spectator up on the hand in progress
func (t *Table) sendSpectatorView(p *Player) {
	switch {
	case t.state.InBettingRound():
		p.send(turnKey, t.turnView(t.playersData(), nil, spectatorIndex))
	case t.state.IsSettled():
		p.send(finishedKey, t.finishedView(t.showdownData(), nil, spectatorIndex))
	}
}
