package potmanager

import (
	"sort"
)

// Settle awards every pot layer and adjusts the participants' balances
// participants must be provided in seat order, which decides who receives an odd chip
// Each participant's balance is reduced by its amount in play and increased by its winnings,
// then the amount in play is reset
func Settle(participants []Participant) Pots {
	pips := make([]*participantInPot, len(participants))
	for i, p := range participants {
		p.SetWinner(false)
		pips[i] = &participantInPot{
			Participant:  p,
			tableIndex:   i,
			amountInPlay: p.AmountInPlay(),
		}
	}

	pots := make(Pots, 0)
	prevLevel := 0
	for _, level := range levels(pips) {
		pot := &Pot{Level: level}
		wm := NewWinManager()
		for _, pip := range pips {
			if pip.amountInPlay < level {
				continue
			}

			pot.Contributors = append(pot.Contributors, pip.Participant)
			if pip.canWin() {
				wm.AddParticipant(pip, pip.HandStrength())
			}
		}

		pot.Amount = (level - prevLevel) * len(pot.Contributors)
		prevLevel = level
		pots = append(pots, pot)

		tiers := wm.GetSortedTiers()
		if len(tiers) == 0 {
			// everybody who reached this level folded
			continue
		}

		winners := tiers[0]
		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for i, w := range winners {
			pip := w.(*participantInPot)
			pip.winnings += share
			if i < remainder {
				pip.winnings++
			}

			pot.Winners = append(pot.Winners, pip.Participant)
		}
	}

	for _, pip := range pips {
		pip.AdjustBalance(pip.winnings - pip.amountInPlay)
		pip.SetAmountInPlay(0)
		if pip.winnings > 0 {
			pip.SetWinner(true)
		}
	}

	return pots
}

// levels returns the distinct positive amounts in play, ascending
func levels(pips []*participantInPot) []int {
	seen := make(map[int]bool)
	amounts := make([]int, 0, len(pips))
	for _, pip := range pips {
		if pip.amountInPlay <= 0 || seen[pip.amountInPlay] {
			continue
		}

		seen[pip.amountInPlay] = true
		amounts = append(amounts, pip.amountInPlay)
	}

	sort.Ints(amounts)
	return amounts
}
