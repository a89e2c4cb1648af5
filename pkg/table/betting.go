package table

import (
	"lolpoker-server/internal/rng"
	"lolpoker-server/pkg/catalog"
	"lolpoker-server/pkg/deck"
	"lolpoker-server/pkg/handanalyzer"
	"lolpoker-server/pkg/potmanager"
)

// holeDecks is the number of decks hole cards are dealt from
// the remaining decks are revealed on the board, one per street
const holeDecks = 2

// startHand shuffles up and deals to every seated player
func (t *Table) startHand() {
	t.timer.Cancel()
	t.cancelRestart()

	n := len(t.players)
	if n < 2 {
		t.resetToLobby()
		return
	}

	t.state = StateZerothCard
	t.pickOrder = deck.PickOrder(t.rng)
	t.decks = deck.Build(t.catalog, t.pickOrder, t.rng)
	t.estimator = handanalyzer.NewEstimator(t.catalog, t.pickOrder)
	t.board = nil
	t.departed = nil
	t.settled = nil
	t.pot = 0
	t.toBet = t.options.BigBlind

	start := t.rng.Intn(n)
	bigBlind := t.rng.Intn(n)
	smallBlind := rng.Pick(t.rng, n, bigBlind)

	for _, p := range t.players {
		p.resetForHand()
	}

	if err := t.dealHoleCards(); err != nil {
		t.logger.WithError(err).Error("could not deal hole cards")
		t.resetToLobby()
		return
	}

	t.pot += t.players[bigBlind].commit(t.options.BigBlind)
	t.pot += t.players[smallBlind].commit(t.options.SmallBlind)

	t.log(0, "new hand, lanes %v", t.pickOrder)
	t.log(t.players[bigBlind].ID, "%s posted the big blind", t.players[bigBlind].Name)
	t.log(t.players[smallBlind].ID, "%s posted the small blind", t.players[smallBlind].Name)

	t.recompute()
	t.advance(start - 1)
}

// dealHoleCards gives every seated player one card from each hole deck
func (t *Table) dealHoleCards() error {
	taken := make(map[string]bool)
	for _, p := range t.players {
		for i := 0; i < holeDecks; i++ {
			card, err := drawLegal(t.decks[i], taken)
			if err != nil {
				return err
			}

			p.hand[i] = card
			taken[card.Name] = true
		}
	}

	return nil
}

// drawLegal draws a card whose name isn't taken, cycling rejected cards to the front of the deck
func drawLegal(d *deck.Deck, taken map[string]bool) (*catalog.Card, error) {
	for attempts := d.CardsLeft(); attempts > 0; attempts-- {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		if !taken[card.Name] {
			return card, nil
		}

		d.Return(card)
	}

	if d.CardsLeft() == 0 {
		return nil, deck.ErrEndOfDeck
	}

	return nil, ErrNoLegalCard
}

// recompute refreshes the score and win chance of every seated player
func (t *Table) recompute() {
	seated := t.seatHands()
	for _, p := range t.players {
		p.score = handanalyzer.Score(p.hand, t.board)
		p.winChance = t.estimator.WinChance(p.hand, t.board, seated)
	}
}

// advance gives the turn to the next player after seat from
// Betting rounds that are complete reveal the next street, and the hand settles
// once the board is complete or only one player remains
func (t *Table) advance(from int) {
	for {
		if t.notFolded() <= 1 {
			t.chop()
			return
		}

		if next, ok := t.nextActor(from); ok {
			t.setCurrentTurn(t.players[next])
			return
		}

		if !t.advanceStreet() {
			return
		}
	}
}

// nextActor returns the first seat after from that still has to act
func (t *Table) nextActor(from int) (int, bool) {
	n := len(t.players)

	live := 0
	var last *Player
	for _, p := range t.players {
		if !p.state.isTerminal() {
			live++
			last = p
		}
	}

	// nobody is left to respond to the only player who could still bet
	if live == 0 || (live == 1 && last.owes(t.toBet) == 0) {
		return 0, false
	}

	for i := 1; i <= n; i++ {
		index := ((from+i)%n + n) % n
		switch t.players[index].state {
		case PlayerStateWaitingTurn, PlayerStateCurrentTurn:
			return index, true
		}
	}

	return 0, false
}

// advanceStreet reveals the next board card
// Returns false if the hand was settled instead
func (t *Table) advanceStreet() bool {
	if t.state == StateThirdCard {
		t.finish()
		return false
	}

	if !t.state.InBettingRound() {
		return false
	}

	d := t.decks[holeDecks+len(t.board)]
	card, err := drawLegal(d, t.heldNames())
	if err != nil {
		t.logger.WithError(err).WithField("lane", d.Lane).Error("could not reveal board card")
		t.finish()
		return false
	}

	t.board = append(t.board, card)
	t.state++
	t.logCards(0, []*catalog.Card{card}, "revealed %s", card.Name)

	for _, p := range t.players {
		if !p.state.isTerminal() {
			p.state = PlayerStateWaitingTurn
		}
	}

	t.recompute()
	return true
}

// heldNames returns every card name in a hand or on the board
func (t *Table) heldNames() map[string]bool {
	taken := make(map[string]bool)
	for _, players := range [][]*Player{t.players, t.departed} {
		for _, p := range players {
			for _, c := range p.hand {
				if c != nil {
					taken[c.Name] = true
				}
			}
		}
	}

	for _, c := range t.board {
		taken[c.Name] = true
	}

	return taken
}

func (t *Table) setCurrentTurn(p *Player) {
	p.state = PlayerStateCurrentTurn
	t.sendTurn()
	t.timer.Start(p.ID, func(remaining int) {
		p.timeLeft = remaining
		t.sendTick(remaining)
	}, func() {
		t.expire(p)
	})
}

// expire acts for a player who ran out of time
func (t *Table) expire(p *Player) {
	if t.closed || p.state != PlayerStateCurrentTurn {
		return
	}

	if p.owes(t.toBet) == 0 {
		p.state = PlayerStateFinishedTurn
		t.log(p.ID, "%s ran out of time and checked", p.Name)
	} else {
		p.state = PlayerStateFolded
		t.log(p.ID, "%s ran out of time and folded", p.Name)
	}

	t.advance(t.indexOf(p))
}

// finish settles a hand that reached the showdown
func (t *Table) finish() {
	t.timer.Cancel()
	t.state = StateFinished
	t.settle()
	t.sendFinished()
	t.scheduleRestart()
}

// chop settles a hand where only one player did not fold
func (t *Table) chop() {
	t.timer.Cancel()
	t.state = StateChopped
	t.settle()
	for _, p := range t.players {
		p.state = PlayerStateFolded
	}

	t.sendFinished()
	t.scheduleRestart()
}

// settle pays out the pot to the seated players, departed players can only lose chips
func (t *Table) settle() {
	participants := make([]potmanager.Participant, 0, len(t.players)+len(t.departed))
	before := make([]int, 0, len(t.players))
	for _, p := range t.players {
		participants = append(participants, playerParticipant{p})
		before = append(before, p.bank-p.committed)
	}

	for _, p := range t.departed {
		participants = append(participants, playerParticipant{p})
	}

	t.settled = potmanager.Settle(participants)
	t.pot = 0
	t.toBet = 0
	t.departed = nil

	for i, p := range t.players {
		p.won = p.bank - before[i]
		if p.won > 0 {
			t.log(p.ID, "%s won %d with %d", p.Name, p.won, p.score)
		}
	}

	t.setAlphas()
}

// setAlphas scales each score between the worst (0) and best (1) hand at the table
func (t *Table) setAlphas() {
	if len(t.players) == 0 {
		return
	}

	low, high := t.players[0].score, t.players[0].score
	for _, p := range t.players[1:] {
		if p.score < low {
			low = p.score
		}

		if p.score > high {
			high = p.score
		}
	}

	for _, p := range t.players {
		if high == low || t.state == StateChopped {
			p.alpha = 0
			continue
		}

		p.alpha = float64(p.score-low) / float64(high-low)
	}
}

func (t *Table) scheduleRestart() {
	t.cancelRestart()
	t.restart = t.scheduler.AfterFunc(t.options.RestartDelay, t.restartHand)
}

func (t *Table) cancelRestart() {
	if t.restart != nil {
		t.restart.Stop()
		t.restart = nil
	}
}

// restartHand restocks busted players and deals again if there are enough of them
func (t *Table) restartHand() {
	if t.closed || !t.state.IsSettled() {
		return
	}

	t.restart = nil
	for _, p := range t.players {
		if p.restock(t.options) {
			t.log(p.ID, "%s was restocked to %d", p.Name, p.bank)
		}
	}

	t.state = StateReadyUp
	t.seatFromQueue()
	if len(t.players) < 2 {
		t.resetToLobby()
		return
	}

	t.startHand()
}
