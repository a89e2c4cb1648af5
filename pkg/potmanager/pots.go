package potmanager

import "encoding/json"

// Pot is a single layer of the total pot
type Pot struct {
	// Level is the committed amount that closes this layer
	Level        int
	Amount       int
	Contributors []Participant
	Winners      []Participant
}

type potJSON struct {
	Level        int     `json:"level"`
	Amount       int     `json:"amount"`
	Contributors []int64 `json:"contributors"`
	Winners      []int64 `json:"winners"`
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	return json.Marshal(potJSON{
		Level:        p.Level,
		Amount:       p.Amount,
		Contributors: ids(p.Contributors),
		Winners:      ids(p.Winners),
	})
}

// IsContested returns true if somebody could win the pot
func (p *Pot) IsContested() bool {
	return len(p.Winners) > 0
}

func ids(participants []Participant) []int64 {
	result := make([]int64, len(participants))
	for i, p := range participants {
		result[i] = p.ID()
	}

	return result
}

// Pots is a collection of pots
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}
