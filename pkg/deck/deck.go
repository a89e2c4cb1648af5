package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"lolpoker-server/internal/rng"
	"lolpoker-server/pkg/catalog"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck is a shuffled copy of a single lane's cards
// Cards are drawn from the end of the slice
type Deck struct {
	Lane  catalog.Lane    `json:"lane"`
	Cards []*catalog.Card `json:"cards"`
}

// New returns a shuffled copy of cards
// The source slice is never modified
func New(lane catalog.Lane, cards []*catalog.Card, g rng.Generator) *Deck {
	cp := make([]*catalog.Card, len(cards))
	copy(cp, cards)

	d := &Deck{
		Lane:  lane,
		Cards: cp,
	}

	d.Shuffle(g)
	return d
}

// Shuffle will shuffle the remaining cards
func (d *Deck) Shuffle(g rng.Generator) {
	rng.Shuffle(g, len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*catalog.Card, error) {
	n := len(d.Cards)
	if n == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// Return puts a card back at the bottom of the deck, making it the last card drawn
func (d *Deck) Return(card *catalog.Card) {
	d.Cards = append([]*catalog.Card{card}, d.Cards...)
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.Name))
		_, _ = hash.Write([]byte{0})
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}
