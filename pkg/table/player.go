package table

import (
	"lolpoker-server/pkg/handanalyzer"
	"lolpoker-server/pkg/playable"
	"math"
)

// maxNameLength is the longest display name in runes
const maxNameLength = 20

// Player is a connection to a table, seated or not
type Player struct {
	ID   int64
	Name string

	conn  playable.Connection
	state PlayerState

	bank      int
	committed int
	hand      handanalyzer.Hand
	score     int
	winChance int
	timeLeft  int

	// maxBuyIn is the next restock amount, zero until the first restock
	maxBuyIn float64

	winner bool
	shown  bool
	alpha  float64
	won    int
}

func newPlayer(id int64, name string, conn playable.Connection, bank int) *Player {
	return &Player{
		ID:   id,
		Name: name,
		conn: conn,
		bank: bank,
	}
}

// State returns the player's state
func (p *Player) State() PlayerState {
	return p.state
}

// Bank returns the player's bankroll, including any chips committed to the current hand
func (p *Player) Bank() int {
	return p.bank
}

// Committed returns how much the player put into the current hand
func (p *Player) Committed() int {
	return p.committed
}

// Hand returns the player's hole cards
func (p *Player) Hand() handanalyzer.Hand {
	return p.hand
}

// TimeLeft returns the last countdown value reported for the player
func (p *Player) TimeLeft() int {
	return p.timeLeft
}

// IsWinner returns true if the player took a share of the last pot
func (p *Player) IsWinner() bool {
	return p.winner
}

// available is what the player can still put in
func (p *Player) available() int {
	return p.bank - p.committed
}

// owes is what the player must put in to match toBet
func (p *Player) owes(toBet int) int {
	if toBet <= p.committed {
		return 0
	}

	return toBet - p.committed
}

// commit moves chips into the pot and returns how many were moved
func (p *Player) commit(amount int) int {
	if amount > p.available() {
		amount = p.available()
	}

	p.committed += amount
	if p.committed == p.bank {
		p.state = PlayerStateAllIn
	}

	return amount
}

func (p *Player) resetForHand() {
	p.state = PlayerStateWaitingTurn
	p.committed = 0
	p.hand = handanalyzer.Hand{}
	p.score = 0
	p.winChance = 0
	p.timeLeft = 0
	p.winner = false
	p.shown = false
	p.alpha = 0
	p.won = 0
}

func (p *Player) resetForLobby() {
	p.resetForHand()
	p.state = PlayerStateReadyUp
}

// isHidden returns true if the player's cards are not part of the showdown
func (p *Player) isHidden() bool {
	return p.state == PlayerStateFolded && !p.shown
}

// restock tops up a busted bankroll, each restock worth two thirds of the last
func (p *Player) restock(opts Options) bool {
	if p.bank >= opts.MinBankroll {
		return false
	}

	if p.maxBuyIn == 0 {
		p.maxBuyIn = float64(opts.BaseStake) * 2 / 3
	}

	p.bank = int(math.Round(p.maxBuyIn))
	p.maxBuyIn = math.Max(p.maxBuyIn*2/3, float64(opts.MinStake))
	return true
}

func (p *Player) send(key string, data interface{}) bool {
	if p.conn == nil {
		return false
	}

	return p.conn.Send(&playable.Response{
		Key:  key,
		Data: data,
	})
}

// playerParticipant adapts a player to potmanager.Participant
type playerParticipant struct {
	*Player
}

func (p playerParticipant) ID() int64 {
	return p.Player.ID
}

func (p playerParticipant) AmountInPlay() int {
	return p.committed
}

func (p playerParticipant) SetAmountInPlay(amount int) {
	p.committed = amount
}

func (p playerParticipant) AdjustBalance(amount int) {
	p.bank += amount
}

func (p playerParticipant) IsFolded() bool {
	return p.state == PlayerStateFolded
}

func (p playerParticipant) HandStrength() int {
	return p.score
}

func (p playerParticipant) SetWinner(won bool) {
	p.winner = won
}
