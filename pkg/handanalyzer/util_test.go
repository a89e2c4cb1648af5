package handanalyzer

import "lolpoker-server/pkg/catalog"

func newCard(name string, lane catalog.Lane, points int) *catalog.Card {
	return &catalog.Card{
		Name:    name,
		Lane:    lane,
		Points:  points,
		Synergy: make(map[catalog.Lane]map[string]int),
	}
}

func setSynergy(a, b *catalog.Card, value int) {
	for _, pair := range [][2]*catalog.Card{{a, b}, {b, a}} {
		byName, ok := pair[0].Synergy[pair[1].Lane]
		if !ok {
			byName = make(map[string]int)
			pair[0].Synergy[pair[1].Lane] = byName
		}

		byName[pair[1].Name] = value
	}
}

var fixedOrder = []catalog.Lane{catalog.Top, catalog.Middle, catalog.Jungle, catalog.Bottom, catalog.Utility}

// tinyCatalog returns two cards per lane
// A and C are the strong hole cards, J*, B* and U* are board cards
func tinyCatalog() (*catalog.Catalog, map[string]*catalog.Card) {
	cards := map[string]*catalog.Card{
		"A":  newCard("A", catalog.Top, 4),
		"B":  newCard("B", catalog.Top, 0),
		"C":  newCard("C", catalog.Middle, 4),
		"D":  newCard("D", catalog.Middle, 0),
		"J1": newCard("J1", catalog.Jungle, 1),
		"J2": newCard("J2", catalog.Jungle, 1),
		"B1": newCard("B1", catalog.Bottom, 1),
		"B2": newCard("B2", catalog.Bottom, 1),
		"U1": newCard("U1", catalog.Utility, 1),
		"U2": newCard("U2", catalog.Utility, 1),
	}

	lanes := make(map[catalog.Lane][]*catalog.Card)
	for _, name := range []string{"A", "B", "C", "D", "J1", "J2", "B1", "B2", "U1", "U2"} {
		card := cards[name]
		lanes[card.Lane] = append(lanes[card.Lane], card)
	}

	return catalog.New(lanes), cards
}
