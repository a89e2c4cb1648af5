package table

import "encoding/json"

// State is where the table is in the life of a hand
type State int

// State constants
const (
	StateReadyUp State = iota
	StateZerothCard
	StateFirstCard
	StateSecondCard
	StateThirdCard
	StateFinished
	StateChopped
)

func (s State) String() string {
	switch s {
	case StateReadyUp:
		return "ready up"
	case StateZerothCard:
		return "zeroth card"
	case StateFirstCard:
		return "first card"
	case StateSecondCard:
		return "second card"
	case StateThirdCard:
		return "third card"
	case StateFinished:
		return "finished"
	case StateChopped:
		return "chopped"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}

// InBettingRound returns true if players are acting
func (s State) InBettingRound() bool {
	return s >= StateZerothCard && s <= StateThirdCard
}

// IsSettled returns true if the pot has been paid out and the table is waiting to restart
func (s State) IsSettled() bool {
	return s == StateFinished || s == StateChopped
}

// PlayerState is the state of a single connection at the table
type PlayerState string

// PlayerState constants
const (
	PlayerStateReadyUp      PlayerState = "ready up"
	PlayerStateReady        PlayerState = "ready"
	PlayerStateQueueUp      PlayerState = "queue up"
	PlayerStateQueue        PlayerState = "queue"
	PlayerStateWaitingTurn  PlayerState = "waiting turn"
	PlayerStateCurrentTurn  PlayerState = "current turn"
	PlayerStateFinishedTurn PlayerState = "finished turn"
	PlayerStateFolded       PlayerState = "folded"
	PlayerStateAllIn        PlayerState = "all in"
)

// IsSeatedBeforeHand returns true for players holding a seat in the lobby
func (p PlayerState) IsSeatedBeforeHand() bool {
	return p == PlayerStateReadyUp || p == PlayerStateReady
}

// InHand returns true for any state a dealt player can be in
func (p PlayerState) InHand() bool {
	switch p {
	case PlayerStateWaitingTurn, PlayerStateCurrentTurn, PlayerStateFinishedTurn, PlayerStateFolded, PlayerStateAllIn:
		return true
	}

	return false
}

// isTerminal returns true if the player won't act again this hand
func (p PlayerState) isTerminal() bool {
	return p == PlayerStateFolded || p == PlayerStateAllIn
}
