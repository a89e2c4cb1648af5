package deck

import (
	"lolpoker-server/internal/rng"
	"lolpoker-server/pkg/catalog"
)

// PickOrder returns a random permutation of the lanes
// The first two lanes are dealt as hole cards, the last three are revealed on the board
func PickOrder(g rng.Generator) []catalog.Lane {
	lanes := catalog.Lanes()
	rng.Shuffle(g, len(lanes), func(i, j int) {
		lanes[i], lanes[j] = lanes[j], lanes[i]
	})

	return lanes
}

// Build returns one shuffled deck per lane, in pick order
func Build(c *catalog.Catalog, pickOrder []catalog.Lane, g rng.Generator) []*Deck {
	decks := make([]*Deck, len(pickOrder))
	for i, lane := range pickOrder {
		decks[i] = New(lane, c.Lane(lane), g)
	}

	return decks
}
