package table

import (
	"strings"
	"unicode/utf8"
)

func (t *Table) readyUp(p *Player) error {
	if p.state != PlayerStateReadyUp {
		return ErrWrongState
	}

	p.state = PlayerStateReady
	t.startIfAllReady()
	return nil
}

func (t *Table) unready(p *Player) error {
	if p.state != PlayerStateReady {
		return ErrWrongState
	}

	p.state = PlayerStateReadyUp
	t.sendReady()
	return nil
}

func (t *Table) queueUp(p *Player) error {
	if p.state != PlayerStateQueueUp {
		return ErrWrongState
	}

	p.state = PlayerStateQueue
	t.spectators = removePlayer(t.spectators, p)
	t.queue = append(t.queue, p)
	t.sendQueue()

	// an idle table seats the queue right away
	if t.state == StateReadyUp && len(t.players) < t.options.MaxSeats {
		t.seatFromQueue()
		t.sendReady()
	}

	return nil
}

func (t *Table) unqueue(p *Player) error {
	if p.state != PlayerStateQueue {
		return ErrWrongState
	}

	p.state = PlayerStateQueueUp
	t.queue = removePlayer(t.queue, p)
	t.spectators = append(t.spectators, p)
	p.send(lobbyKey, lobbyView{LeftButton: buttonQueueUp})
	t.sendQueue()
	return nil
}

func (t *Table) setName(p *Player, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}

	if utf8.RuneCountInString(name) > maxNameLength {
		name = string([]rune(name)[:maxNameLength])
	}

	p.Name = name
	t.sendViews()
	return nil
}

// startIfAllReady starts a hand once at least two seated players are ready
func (t *Table) startIfAllReady() {
	if t.state == StateReadyUp && len(t.players) > 1 && t.readyCount() == len(t.players) {
		t.startHand()
		return
	}

	t.sendReady()
}

func (t *Table) readyCount() int {
	n := 0
	for _, p := range t.players {
		if p.state == PlayerStateReady {
			n++
		}
	}

	return n
}

// leaveLobby frees a seat before a hand, handing it to the queue or a spectator
func (t *Table) leaveLobby(p *Player) {
	t.players = removePlayer(t.players, p)

	var promoted *Player
	if len(t.queue) > 0 {
		promoted = t.queue[0]
		t.queue = t.queue[1:]
	} else if len(t.spectators) > 0 {
		promoted = t.spectators[0]
		t.spectators = t.spectators[1:]
	}

	if promoted != nil {
		promoted.resetForLobby()
		t.players = append(t.players, promoted)
		t.logger.WithField("player", promoted.ID).Debug("promoted player to seat")
	}

	t.sendQueue()
	t.startIfAllReady()
}

// leaveHand removes a dealt player from the table
func (t *Table) leaveHand(p *Player) {
	index := t.indexOf(p)
	if index < 0 {
		return
	}

	wasCurrent := p.state == PlayerStateCurrentTurn
	t.timer.CancelFor(p.ID)
	t.players = removePlayer(t.players, p)
	t.log(p.ID, "%s left the table", p.Name)

	if t.state.IsSettled() {
		// chips were already paid out, the pending restart takes care of the rest
		t.sendViews()
		return
	}

	p.state = PlayerStateFolded
	t.departed = append(t.departed, p)

	if len(t.players) <= 1 {
		t.refund()
		t.seatFromQueue()
		if len(t.players) > 1 {
			t.logger.Debug("aborting hand, starting over with queued players")
			t.startHand()
			return
		}

		t.resetToLobby()
		return
	}

	if t.notFolded() == 1 {
		t.chop()
		return
	}

	if wasCurrent {
		t.advance(index - 1)
		return
	}

	t.sendTurn()
}

// refund hands back every committed chip and abandons the hand
func (t *Table) refund() {
	t.timer.Cancel()
	for _, p := range t.players {
		p.committed = 0
	}

	t.departed = nil
	t.pot = 0
	t.toBet = 0
}

// seatFromQueue fills open seats in queue order
func (t *Table) seatFromQueue() {
	seated := false
	for len(t.players) < t.options.MaxSeats && len(t.queue) > 0 {
		p := t.queue[0]
		t.queue = t.queue[1:]
		p.resetForLobby()
		t.players = append(t.players, p)
		seated = true
	}

	if seated {
		t.sendQueue()
	}
}

// resetToLobby returns every seated player to "ready up"
func (t *Table) resetToLobby() {
	t.timer.Cancel()
	t.cancelRestart()

	t.state = StateReadyUp
	t.board = nil
	t.decks = nil
	t.estimator = nil
	t.pot = 0
	t.toBet = 0
	t.departed = nil
	for _, p := range t.players {
		p.resetForLobby()
	}

	t.sendReady()
}

// sendReady tells every seated player how many are ready
func (t *Table) sendReady() {
	ready := t.readyCount()
	for _, p := range t.players {
		view := lobbyView{
			ReadyCount:  ready,
			PlayerCount: len(t.players),
		}

		switch p.state {
		case PlayerStateReady:
			view.LeftButton = buttonReadyCount
		case PlayerStateReadyUp:
			view.LeftButton = buttonReadyUp
		default:
			continue
		}

		p.send(lobbyKey, view)
	}
}

// sendQueue tells every queued player where they are in line
func (t *Table) sendQueue() {
	for i, p := range t.queue {
		p.send(lobbyKey, lobbyView{
			LeftButton: buttonQueuePosition,
			Position:   i + 1,
		})
	}
}
