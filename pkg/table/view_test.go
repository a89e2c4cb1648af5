package table

import (
	"github.com/stretchr/testify/assert"
	"lolpoker-server/pkg/snapshot"
	"testing"
)

func TestTable_turnView_buttons(t *testing.T) {
	a := assert.New(t)
	tbl, _ := newTestTable(t, 30)
	players, _ := startHand(t, tbl, 3)

	p := players[0]
	data := tbl.playersData()
	buttons := func() []string {
		view := tbl.turnView(data, p, 0)
		return []string{view.LeftButton, view.MiddleButton, view.RightButton}
	}

	p.state = PlayerStateCurrentTurn
	p.committed = tbl.toBet
	a.Equal([]string{"fold", "check", "raise"}, buttons())

	p.committed = 0
	a.Equal([]string{"fold", "call", "raise"}, buttons())

	p.bank = 5
	a.Equal([]string{"fold", "", "all in"}, buttons())
	a.Equal(5, tbl.turnView(data, p, 0).MinBet)
	a.Equal(5, tbl.turnView(data, p, 0).MaxBet)

	p.bank = 1000
	p.state = PlayerStateWaitingTurn
	a.Equal([]string{"fold any", "check any", "call any"}, buttons())

	p.state = PlayerStateFinishedTurn
	a.Equal([]string{"fold any", "check any", "call any"}, buttons())

	p.state = PlayerStateFolded
	a.Equal([]string{"", "", ""}, buttons())

	p.state = PlayerStateAllIn
	a.Equal([]string{"", "", ""}, buttons())
}

func TestTable_turnView(t *testing.T) {
	a := assert.New(t)
	tbl, _ := newTestTable(t, 31)
	players, conns := startHand(t, tbl, 2)

	view := conns[1].last(turnKey).(*TurnView)
	a.Equal(1, view.Index)
	a.Equal(12, view.MaxScore)
	a.Equal(15, view.Pot)
	a.Equal(10, view.PotBet)
	a.Equal(tbl.PickOrder(), view.Lanes)
	a.Equal(players[1].Hand().Left().Name, view.PlayerHand[0].Name)
	a.Equal(players[1].Hand().Synergy(), view.Synergy)
	a.Equal(players[1].score, view.Score)
	a.Len(view.PlayersData, 2)
	a.Equal(players[0].Bank()-players[0].Committed(), view.PlayersData[0].Bank)

	late, lateConns := connect(tbl, 1)
	a.Equal(PlayerStateQueueUp, late[0].State())

	public := lateConns[0].last(turnKey).(*TurnView)
	a.Equal(spectatorIndex, public.Index)
	a.Nil(public.PlayerHand)
	a.Empty(public.LeftButton)
	a.Equal(view.PlayersData, public.PlayersData)

	// spectators see the clock too
	tbl.timer.Cancel()
	tick := lateConns[0].last(tickKey).(TickView)
	a.Equal(spectatorIndex, tick.Index)
	a.Equal(0, tick.TimeLeft)
}

func TestTable_boardView(t *testing.T) {
	a := assert.New(t)
	tbl, _ := newTestTable(t, 32)
	players, conns := startHand(t, tbl, 2)

	for i := 0; i < 10 && len(tbl.Board()) == 0; i++ {
		p := currentPlayer(tbl)
		if p.owes(tbl.ToBet()) > 0 {
			act(t, tbl, p, ActionCall)
		} else {
			act(t, tbl, p, ActionCheck)
		}
	}

	a.Len(tbl.Board(), 1)
	card := tbl.Board()[0]
	a.Equal(tbl.PickOrder()[2], card.Lane)

	view := conns[0].last(turnKey).(*TurnView)
	a.Equal(20, view.MaxScore)
	a.Equal([]BoardCard{{
		Name:        card.Name,
		Lane:        card.Lane,
		LeftPoints:  players[0].Hand().Left().SynergyWith(card),
		RightPoints: players[0].Hand().Right().SynergyWith(card),
	}}, view.Board)
}

func TestTable_finishedView_snapshot(t *testing.T) {
	tbl, _ := newTestTable(t, 33)
	startHand(t, tbl, 3)
	playPassively(t, tbl)

	snapshot.Validate(t, tbl.finishedView(tbl.showdownData(), tbl.players[0], 0))
}
