package table

import (
	"fmt"
	"lolpoker-server/pkg/catalog"
)

// Action is something a connection asks the table to do
type Action string

// Action constants
const (
	ActionReadyUp Action = "ready up"
	ActionQueueUp Action = "queue up"
	ActionUnready Action = "unready"
	ActionUnqueue Action = "unqueue"
	ActionName    Action = "name"
	ActionCheck   Action = "check"
	ActionCall    Action = "call"
	ActionRaise   Action = "raise"
	ActionFold    Action = "fold"
	ActionAllIn   Action = "all in"
	ActionShow    Action = "show"
)

var allowedActions = map[Action]bool{
	ActionReadyUp: true,
	ActionQueueUp: true,
	ActionUnready: true,
	ActionUnqueue: true,
	ActionName:    true,
	ActionCheck:   true,
	ActionCall:    true,
	ActionRaise:   true,
	ActionFold:    true,
	ActionAllIn:   true,
	ActionShow:    true,
}

// ActionFromString returns an action for the given string
func ActionFromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount int) string {
	switch a {
	case ActionCheck:
		return "checked"
	case ActionCall:
		return fmt.Sprintf("called %d", amount)
	case ActionRaise:
		return fmt.Sprintf("raised to %d", amount)
	case ActionFold:
		return "folded"
	case ActionAllIn:
		return fmt.Sprintf("went all in for %d", amount)
	}

	return string(a)
}

// bettingAction performs check, call, raise, fold or all in for the player on the clock
func (t *Table) bettingAction(p *Player, action Action, raise int) error {
	if !t.state.InBettingRound() {
		return ErrWrongState
	}

	if p.state != PlayerStateCurrentTurn {
		return ErrNotYourTurn
	}

	owed := p.owes(t.toBet)

	// validate before the timer is touched so an ignored action changes nothing
	switch action {
	case ActionCheck:
		if owed > 0 {
			return ErrMustCall
		}
	case ActionCall:
		if owed == 0 {
			return ErrNothingToCall
		}
	case ActionRaise:
		level := p.committed + raise
		if raise <= 0 || level <= t.toBet || level > p.bank {
			return fmt.Errorf("%w: %d", ErrInvalidRaise, raise)
		}
	case ActionFold, ActionAllIn:
	default:
		return ErrUnknownAction
	}

	t.timer.CancelFor(p.ID)

	switch action {
	case ActionCheck:
		p.state = PlayerStateFinishedTurn
	case ActionCall:
		p.state = PlayerStateFinishedTurn
		t.pot += p.commit(owed)
	case ActionRaise:
		p.state = PlayerStateFinishedTurn
		t.pot += p.commit(raise)
		t.raiseTo(p, p.committed)
	case ActionFold:
		p.state = PlayerStateFolded
	case ActionAllIn:
		t.pot += p.commit(p.available())
		if p.committed > t.toBet {
			t.raiseTo(p, p.committed)
		}
	}

	t.log(p.ID, "%s %s", p.Name, action.LogMessage(p.committed))
	t.advance(t.indexOf(p))
	return nil
}

// raiseTo sets a new level and gives every player that can still act another turn
func (t *Table) raiseTo(raiser *Player, level int) {
	t.toBet = level
	for _, p := range t.players {
		if p == raiser || p.state.isTerminal() {
			continue
		}

		p.state = PlayerStateWaitingTurn
	}
}

// show reveals a hidden hand after the hand is over
// It has no effect on the payout
func (t *Table) show(p *Player) error {
	if !t.state.IsSettled() || t.indexOf(p) < 0 {
		return ErrWrongState
	}

	if p.winner || !p.isHidden() {
		return ErrWrongState
	}

	p.shown = true
	t.logCards(p.ID, []*catalog.Card{p.hand[0], p.hand[1]}, "%s showed %s and %s", p.Name, p.hand[0].Name, p.hand[1].Name)
	t.sendFinished()
	return nil
}
