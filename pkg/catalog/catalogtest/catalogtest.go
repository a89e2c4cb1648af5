// Package catalogtest builds deterministic catalogs for tests
package catalogtest

import (
	"fmt"
	"lolpoker-server/pkg/catalog"
)

// New returns a catalog with perLane cards in every lane and full synergy coverage
// Neighbouring lanes share half of their names, so name collisions between lanes
// happen the way they do with real data
func New(perLane int) *catalog.Catalog {
	lanes := make(map[catalog.Lane][]*catalog.Card)
	all := make([]*catalog.Card, 0, perLane*5)
	ids := make(map[*catalog.Card]int)

	for laneIndex, lane := range catalog.Lanes() {
		cards := make([]*catalog.Card, perLane)
		for j := 0; j < perLane; j++ {
			id := laneIndex*(perLane/2) + j
			card := &catalog.Card{
				Name:    fmt.Sprintf("card-%d", id),
				Lane:    lane,
				Points:  (id*7 + laneIndex*3) % 5,
				Synergy: make(map[catalog.Lane]map[string]int),
			}

			cards[j] = card
			all = append(all, card)
			ids[card] = id*5 + laneIndex
		}

		lanes[lane] = cards
	}

	for _, a := range all {
		for _, b := range all {
			if a.Lane == b.Lane {
				continue
			}

			byName, ok := a.Synergy[b.Lane]
			if !ok {
				byName = make(map[string]int)
				a.Synergy[b.Lane] = byName
			}

			byName[b.Name] = pairValue(ids[a], ids[b])
		}
	}

	return catalog.New(lanes)
}

func pairValue(a, b int) int {
	if a > b {
		a, b = b, a
	}

	return (a*31 + b*17) % 5
}
