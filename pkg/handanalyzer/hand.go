package handanalyzer

import "lolpoker-server/pkg/catalog"

// maxCardScore is the highest value a single point or synergy entry can have
const maxCardScore = 4

// Hand is a pair of hole cards
type Hand [2]*catalog.Card

// Left returns the card dealt from the first lane
func (h Hand) Left() *catalog.Card {
	return h[0]
}

// Right returns the card dealt from the second lane
func (h Hand) Right() *catalog.Card {
	return h[1]
}

// IsDealt returns true if both cards are present
func (h Hand) IsDealt() bool {
	return h[0] != nil && h[1] != nil
}

// Synergy returns the bonus for the hole cards themselves
func (h Hand) Synergy() int {
	return h[0].SynergyWith(h[1])
}

// Contains returns true if either hole card has the name
func (h Hand) Contains(name string) bool {
	return (h[0] != nil && h[0].Name == name) || (h[1] != nil && h[1].Name == name)
}

// Score returns the value of the hand given the board
// The result only depends on the arguments
func Score(h Hand, board []*catalog.Card) int {
	if !h.IsDealt() {
		return 0
	}

	score := h[0].Points + h[1].Points + h.Synergy()
	for _, c := range board {
		score += h[0].SynergyWith(c) + h[1].SynergyWith(c)
	}

	return score
}

// Breakdown returns the per-street points for each hole card
// The first entry is the card's own points, followed by its synergy with each board card
func Breakdown(h Hand, board []*catalog.Card) (left []int, right []int) {
	left = make([]int, 0, len(board)+1)
	right = make([]int, 0, len(board)+1)

	left = append(left, h[0].Points)
	right = append(right, h[1].Points)
	for _, c := range board {
		left = append(left, h[0].SynergyWith(c))
		right = append(right, h[1].SynergyWith(c))
	}

	return left, right
}

// MaxScore returns the best possible score with boardSize cards revealed
func MaxScore(boardSize int) int {
	return 3*maxCardScore + 2*maxCardScore*boardSize
}
