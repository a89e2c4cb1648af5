package potmanager

type testParticipant struct {
	id           int64
	balance      int
	amountInPlay int
	folded       bool
	strength     int
	winner       bool
}

func (t *testParticipant) ID() int64 {
	return t.id
}

func (t *testParticipant) AmountInPlay() int {
	return t.amountInPlay
}

func (t *testParticipant) SetAmountInPlay(amount int) {
	t.amountInPlay = amount
}

func (t *testParticipant) AdjustBalance(amount int) {
	t.balance += amount
}

func (t *testParticipant) IsFolded() bool {
	return t.folded
}

func (t *testParticipant) HandStrength() int {
	return t.strength
}

func (t *testParticipant) SetWinner(won bool) {
	t.winner = won
}

func newTestParticipant(id int64, balance int) *testParticipant {
	return &testParticipant{
		id:      id,
		balance: balance,
	}
}

// setupParticipants creates one participant per amount, each with a balance of 100
func setupParticipants(amounts ...int) ([]Participant, []*testParticipant) {
	participants := make([]Participant, len(amounts))
	tps := make([]*testParticipant, len(amounts))
	for i, amount := range amounts {
		tp := newTestParticipant(int64(i+1), 100)
		tp.amountInPlay = amount
		tps[i] = tp
		participants[i] = tp
	}

	return participants, tps
}

func balances(tps []*testParticipant) []int {
	result := make([]int, len(tps))
	for i, tp := range tps {
		result[i] = tp.balance
	}

	return result
}
