package handanalyzer

import "lolpoker-server/pkg/catalog"

// Estimator calculates how often a hand beats the possible opposing hands
type Estimator struct {
	catalog   *catalog.Catalog
	pickOrder []catalog.Lane
}

// NewEstimator returns an estimator for a single deal
// The first two lanes of pickOrder are hole lanes, the remaining lanes are revealed in order
func NewEstimator(c *catalog.Catalog, pickOrder []catalog.Lane) *Estimator {
	return &Estimator{
		catalog:   c,
		pickOrder: pickOrder,
	}
}

// WinChance returns the percentage (0-100) of opposing hands that hand scores at least as well as
// With fewer than three board cards, every legal card of the next board lane is tried
// seated are the hole cards of everybody at the table, which can't appear on the board
func (e *Estimator) WinChance(hand Hand, board []*catalog.Card, seated []Hand) int {
	if !hand.IsDealt() || len(e.pickOrder) < 2 {
		return 0
	}

	next := len(board) + 2
	if len(board) >= 3 || next >= len(e.pickOrder) {
		return percent(e.enumerate(hand, board))
	}

	trial := make([]*catalog.Card, len(board)+1)
	copy(trial, board)

	var dominated, total int
	for _, c := range e.catalog.Lane(e.pickOrder[next]) {
		if !IsLegalDraw(c, board, seated) {
			continue
		}

		trial[len(board)] = c
		d, n := e.enumerate(hand, trial)
		dominated += d
		total += n
	}

	return percent(dominated, total)
}

// enumerate compares hand against every legal opposing pair for a complete board
func (e *Estimator) enumerate(hand Hand, board []*catalog.Card) (dominated int, total int) {
	own := Score(hand, board)

	excluded := make(map[string]bool, len(board)+2)
	excluded[hand[0].Name] = true
	excluded[hand[1].Name] = true
	for _, c := range board {
		excluded[c.Name] = true
	}

	rights := e.catalog.Lane(e.pickOrder[1])
	for _, left := range e.catalog.Lane(e.pickOrder[0]) {
		if excluded[left.Name] {
			continue
		}

		for _, right := range rights {
			if excluded[right.Name] || right.Name == left.Name {
				continue
			}

			if own >= Score(Hand{left, right}, board) {
				dominated++
			}

			total++
		}
	}

	return dominated, total
}

// IsLegalDraw returns true if the card isn't already held or revealed
func IsLegalDraw(c *catalog.Card, board []*catalog.Card, seated []Hand) bool {
	for _, h := range seated {
		if h.Contains(c.Name) {
			return false
		}
	}

	for _, b := range board {
		if b.Name == c.Name {
			return false
		}
	}

	return true
}

func percent(dominated, total int) int {
	if total == 0 {
		return 0
	}

	return dominated * 100 / total
}
