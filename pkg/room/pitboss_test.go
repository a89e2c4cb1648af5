package room

import (
	"context"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lolpoker-server/pkg/catalog/catalogtest"
	"lolpoker-server/pkg/table"
	"math/rand"
	"testing"
)

func newTestPitBoss(t *testing.T, ids ...string) (*PitBoss, *testPublisher) {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	publisher := &testPublisher{}
	p, err := NewPitBoss(logger, catalogtest.New(10), table.DefaultOptions(), ids, rand.New(rand.NewSource(1)), publisher) // nolint:gosec
	require.NoError(t, err)
	p.StartShift()

	return p, publisher
}

func TestNewPitBoss(t *testing.T) {
	_, err := NewPitBoss(logrus.New(), catalogtest.New(10), table.DefaultOptions(), []string{"a", "a"}, rand.New(rand.NewSource(1)), &testPublisher{}) // nolint:gosec
	assert.EqualError(t, err, "duplicate table: a")
}

func TestPitBoss(t *testing.T) {
	a := assert.New(t)
	p, publisher := newTestPitBoss(t, "b", "a")

	_, found := p.Dealer("c")
	a.False(found)

	d, found := p.Dealer("a")
	a.True(found)
	a.Equal("a", d.ID())

	c := NewClient(nil)
	a.Equal(ErrTableNotFound, p.ClientConnected("c", c))
	a.NoError(p.ClientConnected("a", c))

	summaries, err := p.Summaries(context.Background())
	a.NoError(err)
	if a.Len(summaries, 2) {
		a.Equal("b", summaries[0].ID)
		a.Equal(0, summaries[0].Seated)
		a.Equal("a", summaries[1].ID)
		a.Equal(1, summaries[1].Seated)
	}

	p.ClientDisconnected(c)
	p.ClientDisconnected(NewClient(nil))

	summaries, err = p.Summaries(context.Background())
	a.NoError(err)
	a.Equal(0, summaries[1].Seated)

	p.EndShift()
	a.True(publisher.closed)

	_, err = p.Summaries(context.Background())
	a.Equal(table.ErrTableIsClosed, err)
}
