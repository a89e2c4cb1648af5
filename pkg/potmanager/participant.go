package potmanager

// Participant provides an interface for retrieving and adjusting a participants balance
type Participant interface {
	ID() int64
	// AmountInPlay is how much the participant committed to the hand
	AmountInPlay() int
	SetAmountInPlay(amount int)
	AdjustBalance(amount int)
	IsFolded() bool
	HandStrength() int
	SetWinner(won bool)
}

// participantInPot tracks a participant while the pots are being awarded
type participantInPot struct {
	Participant
	// tableIndex is where the player is seated at the table
	tableIndex   int
	amountInPlay int
	winnings     int
}

// canWin returns true if the participant is still contesting the pot
func (p *participantInPot) canWin() bool {
	return !p.IsFolded()
}
