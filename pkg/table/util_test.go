package table

import (
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lolpoker-server/pkg/catalog/catalogtest"
	"lolpoker-server/pkg/playable"
	"lolpoker-server/pkg/turntimer"
	"math/rand"
	"testing"
	"time"
)

type testConn struct {
	messages []*playable.Response
}

func (c *testConn) Send(msg interface{}) bool {
	c.messages = append(c.messages, msg.(*playable.Response))
	return true
}

// last returns the data of the most recent message with the key
func (c *testConn) last(key string) interface{} {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Key == key {
			return c.messages[i].Data
		}
	}

	return nil
}

func (c *testConn) count(key string) int {
	n := 0
	for _, msg := range c.messages {
		if msg.Key == key {
			n++
		}
	}

	return n
}

func (c *testConn) reset() {
	c.messages = nil
}

func newTestTable(t *testing.T, seed int64) (*Table, *turntimer.ManualScheduler) {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	scheduler := turntimer.NewManualScheduler()
	tbl, err := New("test", logger, catalogtest.New(20), DefaultOptions(), rand.New(rand.NewSource(seed)), scheduler) // nolint:gosec
	require.NoError(t, err)

	return tbl, scheduler
}

func connect(tbl *Table, n int) ([]*Player, []*testConn) {
	players := make([]*Player, n)
	conns := make([]*testConn, n)
	for i := 0; i < n; i++ {
		conns[i] = &testConn{}
		players[i] = tbl.Connect(conns[i])
	}

	return players, conns
}

// startHand connects and readies n players
func startHand(t *testing.T, tbl *Table, n int) ([]*Player, []*testConn) {
	t.Helper()

	players, conns := connect(tbl, n)
	for _, p := range players {
		require.NoError(t, tbl.Action(p, &playable.PayloadIn{Type: string(ActionReadyUp)}))
	}

	require.Equal(t, StateZerothCard, tbl.State())
	return players, conns
}

func currentPlayer(tbl *Table) *Player {
	for _, p := range tbl.players {
		if p.state == PlayerStateCurrentTurn {
			return p
		}
	}

	return nil
}

func act(t *testing.T, tbl *Table, p *Player, action Action, raise ...int) {
	t.Helper()

	require.NoError(t, tbl.Action(p, payload(action, raise...)))
}

// playPassively checks or calls until the hand is over
func playPassively(t *testing.T, tbl *Table) {
	t.Helper()

	for i := 0; i < 100 && tbl.State().InBettingRound(); i++ {
		p := currentPlayer(tbl)
		require.NotNil(t, p)

		if p.owes(tbl.ToBet()) > 0 {
			act(t, tbl, p, ActionCall)
		} else {
			act(t, tbl, p, ActionCheck)
		}

		assertInvariants(t, tbl)
	}

	require.True(t, tbl.State().IsSettled())
}

func assertInvariants(t *testing.T, tbl *Table) {
	t.Helper()

	committed := 0
	current := 0
	for _, p := range append(append([]*Player{}, tbl.players...), tbl.departed...) {
		committed += p.committed
		if p.state == PlayerStateCurrentTurn {
			current++
		}
	}

	assert.Equal(t, tbl.pot, committed, "every committed chip is in the pot")
	assert.LessOrEqual(t, current, 1, "at most one player is on the clock")

	for _, p := range tbl.players {
		assert.GreaterOrEqual(t, p.winChance, 0)
		assert.LessOrEqual(t, p.winChance, 100)
	}

	names := make(map[string]bool)
	check := func(name string) {
		assert.False(t, names[name], "%s is held or revealed twice", name)
		names[name] = true
	}

	for _, p := range tbl.players {
		if p.hand.IsDealt() {
			check(p.hand[0].Name)
			check(p.hand[1].Name)
		}
	}

	for _, c := range tbl.board {
		check(c.Name)
	}
}

func totalBank(players []*Player) int {
	total := 0
	for _, p := range players {
		total += p.bank
	}

	return total
}

func tickSeconds(n int) time.Duration {
	return time.Second * time.Duration(n)
}

func payload(action Action, raise ...int) *playable.PayloadIn {
	p := &playable.PayloadIn{Type: string(action)}
	if len(raise) == 1 {
		p.Raise = raise[0]
	}

	return p
}
