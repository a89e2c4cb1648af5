package table

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestTable_playToShowdown(t *testing.T) {
	a := assert.New(t)
	tbl, scheduler := newTestTable(t, 8)
	players, conns := startHand(t, tbl, 2)

	playPassively(t, tbl)
	a.Equal(StateFinished, tbl.State())
	a.Len(tbl.Board(), 3)
	a.Equal(0, tbl.Pot())
	a.Equal(20, tbl.Pots().Total())
	a.Equal(2000, totalBank(players))
	a.True(players[0].IsWinner() || players[1].IsWinner())
	assertInvariants(t, tbl)

	for i, conn := range conns {
		a.GreaterOrEqual(conn.count(turnKey), 4)

		view := conn.last(finishedKey).(*FinishedView)
		a.Equal(i, view.Index)
		a.Equal(20, view.Pot)
		a.Len(view.Board, 3)
		a.NotNil(view.PlayersData[0].Left, "hands are revealed at showdown")
		a.NotNil(view.PlayersData[1].Left)
		a.Equal(7500, int(view.RestartIn))
	}

	// the next hand starts on its own
	scheduler.Advance(DefaultOptions().RestartDelay - 1)
	a.Equal(StateFinished, tbl.State())
	scheduler.Advance(1)
	a.Equal(StateZerothCard, tbl.State())
	a.Equal(15, tbl.Pot())
	a.Empty(tbl.Board())
	assertInvariants(t, tbl)
}

func TestTable_foldChops(t *testing.T) {
	a := assert.New(t)
	tbl, _ := newTestTable(t, 9)
	players, _ := startHand(t, tbl, 2)

	folder := currentPlayer(tbl)
	other := players[0]
	if other == folder {
		other = players[1]
	}

	act(t, tbl, folder, ActionFold)
	a.Equal(StateChopped, tbl.State())
	a.Empty(tbl.Board())
	a.Equal(0, tbl.Pot())
	a.True(other.IsWinner())
	a.False(folder.IsWinner())
	a.Equal(PlayerStateFolded, other.State())
	a.Equal(PlayerStateFolded, folder.State())
	a.Nil(currentPlayer(tbl))
}

func TestTable_nextActorSkipsTerminalSeats(t *testing.T) {
	a := assert.New(t)
	tbl, _ := newTestTable(t, 10)
	players, _ := startHand(t, tbl, 4)

	tbl.timer.Cancel()
	players[0].state = PlayerStateCurrentTurn
	players[1].state = PlayerStateAllIn
	players[2].state = PlayerStateFolded
	players[3].state = PlayerStateWaitingTurn
	for _, p := range players {
		p.committed = tbl.toBet
	}
	players[1].bank = tbl.toBet
	tbl.pot = 4 * tbl.toBet

	act(t, tbl, players[0], ActionCheck)
	a.Equal(PlayerStateFinishedTurn, players[0].State())
	a.Equal(PlayerStateCurrentTurn, players[3].State())
	a.Equal(StateZerothCard, tbl.State())
	assertInvariants(t, tbl)
}

func TestTable_nextActor(t *testing.T) {
	a := assert.New(t)
	tbl, _ := newTestTable(t, 1)
	tbl.toBet = 10

	states := func(states ...PlayerState) {
		tbl.players = make([]*Player, len(states))
		for i, s := range states {
			tbl.players[i] = &Player{state: s, bank: 100, committed: 10}
		}
	}

	states(PlayerStateFinishedTurn, PlayerStateAllIn, PlayerStateFolded, PlayerStateWaitingTurn)
	next, ok := tbl.nextActor(0)
	a.True(ok)
	a.Equal(3, next)

	// wraps around the table
	states(PlayerStateWaitingTurn, PlayerStateFinishedTurn, PlayerStateFolded, PlayerStateFinishedTurn)
	next, ok = tbl.nextActor(3)
	a.True(ok)
	a.Equal(0, next)

	next, ok = tbl.nextActor(-1)
	a.True(ok)
	a.Equal(0, next)

	// everybody acted
	states(PlayerStateFinishedTurn, PlayerStateFinishedTurn, PlayerStateAllIn)
	_, ok = tbl.nextActor(0)
	a.False(ok)

	// the only player who can still bet has nobody to bet against
	states(PlayerStateWaitingTurn, PlayerStateAllIn, PlayerStateFolded)
	_, ok = tbl.nextActor(2)
	a.False(ok)

	// unless they still owe chips
	tbl.players[0].committed = 5
	next, ok = tbl.nextActor(2)
	a.True(ok)
	a.Equal(0, next)
}

func TestTable_soleLivePlayerRunsOutTheBoard(t *testing.T) {
	a := assert.New(t)
	tbl, _ := newTestTable(t, 11)
	players, _ := startHand(t, tbl, 3)

	tbl.timer.Cancel()
	players[0].state = PlayerStateCurrentTurn
	players[1].state = PlayerStateAllIn
	players[2].state = PlayerStateFolded
	for _, p := range players {
		p.committed = 0
	}
	tbl.pot = 0
	tbl.toBet = 0

	act(t, tbl, players[0], ActionCheck)
	a.Equal(StateFinished, tbl.State())
	a.Len(tbl.Board(), 3)
}

func TestTable_timerExpiry(t *testing.T) {
	a := assert.New(t)
	tbl, scheduler := newTestTable(t, 12)
	players, conns := startHand(t, tbl, 2)

	p := currentPlayer(tbl)
	other := players[0]
	if other == p {
		other = players[1]
	}

	owed := p.owes(tbl.ToBet()) > 0

	scheduler.Advance(tickSeconds(29))
	a.Equal(PlayerStateCurrentTurn, p.State())
	a.Equal(1, p.TimeLeft())
	a.Equal(30, conns[0].count(tickKey))

	scheduler.Advance(tickSeconds(1))
	a.Equal(0, p.TimeLeft())
	if owed {
		a.Equal(PlayerStateFolded, p.State())
		a.Equal(StateChopped, tbl.State())
	} else {
		a.Equal(PlayerStateFinishedTurn, p.State())
		a.Equal(other, currentPlayer(tbl))
	}

	assertInvariants(t, tbl)
}

func TestTable_actionCancelsTheTimer(t *testing.T) {
	a := assert.New(t)
	tbl, scheduler := newTestTable(t, 13)
	startHand(t, tbl, 3)

	scheduler.Advance(tickSeconds(10))
	p := currentPlayer(tbl)
	act(t, tbl, p, ActionFold)

	next := currentPlayer(tbl)
	require.NotNil(t, next)
	a.NotEqual(p, next)
	a.Equal(30, next.TimeLeft())

	conn := next.conn.(*testConn)
	var ticks []int
	for _, msg := range conn.messages {
		if msg.Key == tickKey {
			ticks = append(ticks, msg.Data.(TickView).TimeLeft)
		}
	}

	a.Equal([]int{30, 29, 28, 27, 26, 25, 24, 23, 22, 21, 20, 0, 30}, ticks)

	// the cancelled countdown never fires
	scheduler.Advance(tickSeconds(29))
	a.Equal(PlayerStateFolded, p.State())
	a.Equal(next, currentPlayer(tbl))
}

func TestTable_restartRestocks(t *testing.T) {
	a := assert.New(t)
	tbl, scheduler := newTestTable(t, 14)
	players, _ := startHand(t, tbl, 2)
	playPassively(t, tbl)

	players[0].bank = 5
	scheduler.Advance(DefaultOptions().RestartDelay)
	a.Equal(StateZerothCard, tbl.State())
	a.Equal(667, players[0].Bank())
	a.InDelta(444.44, players[0].maxBuyIn, 0.01)
}

func TestTable_restartSeatsTheQueue(t *testing.T) {
	a := assert.New(t)
	tbl, scheduler := newTestTable(t, 15)
	players, _ := startHand(t, tbl, 2)

	late, _ := connect(tbl, 1)
	act(t, tbl, late[0], ActionQueueUp)
	playPassively(t, tbl)

	scheduler.Advance(DefaultOptions().RestartDelay)
	a.Equal([]*Player{players[0], players[1], late[0]}, tbl.Players())
	a.Equal(StateZerothCard, tbl.State())
	a.True(late[0].Hand().IsDealt())
}

func TestTable_Close(t *testing.T) {
	a := assert.New(t)
	tbl, scheduler := newTestTable(t, 16)
	players, _ := startHand(t, tbl, 2)

	tbl.Close()
	a.Equal(0, scheduler.Pending())
	a.ErrorIs(tbl.Action(players[0], payload(ActionFold)), ErrTableIsClosed)
}
