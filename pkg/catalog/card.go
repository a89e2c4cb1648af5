package catalog

// Card is a single drafted card
// Cards are loaded once from the catalog and never mutated
type Card struct {
	Name    string                  `json:"name"`
	Lane    Lane                    `json:"lane"`
	Points  int                     `json:"points"`
	Synergy map[Lane]map[string]int `json:"synergy"`
}

// SynergyWith returns the bonus for pairing c with other
// A missing entry is worth nothing
func (c *Card) SynergyWith(other *Card) int {
	if c == nil || other == nil {
		return 0
	}

	return c.Synergy[other.Lane][other.Name]
}

func (c *Card) hasSynergyWith(other *Card) bool {
	byName, ok := c.Synergy[other.Lane]
	if !ok {
		return false
	}

	_, ok = byName[other.Name]
	return ok
}

func (c *Card) String() string {
	return c.Name + "/" + string(c.Lane)
}
