package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
)

// ErrEmptyCatalog is returned when a catalog has no cards at all
var ErrEmptyCatalog = errors.New("catalog has no cards")

// Catalog is the read-only set of cards, grouped by lane
type Catalog struct {
	lanes map[Lane][]*Card
}

// New returns a catalog from cards grouped by lane
func New(lanes map[Lane][]*Card) *Catalog {
	c := &Catalog{lanes: make(map[Lane][]*Card, len(lanes))}
	for lane, cards := range lanes {
		cp := make([]*Card, len(cards))
		copy(cp, cards)
		c.lanes[lane] = cp
	}

	return c
}

// Load decodes a catalog from JSON
func Load(r io.Reader) (*Catalog, error) {
	var raw map[string][]*Card
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("could not decode catalog: %w", err)
	}

	lanes := make(map[Lane][]*Card, len(raw))
	for key, cards := range raw {
		lane, err := LaneFromString(key)
		if err != nil {
			return nil, err
		}

		for _, card := range cards {
			if card.Lane == "" {
				card.Lane = lane
			}
		}

		lanes[lane] = cards
	}

	return &Catalog{lanes: lanes}, nil
}

// LoadFile decodes a catalog from a JSON file
func LoadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Load(file)
}

// Lane returns the cards in the lane
// The returned slice must not be modified
func (c *Catalog) Lane(lane Lane) []*Card {
	return c.lanes[lane]
}

// Size returns the total number of cards
func (c *Catalog) Size() int {
	n := 0
	for _, cards := range c.lanes {
		n += len(cards)
	}

	return n
}

// Validate ensures that the catalog can be used to play
// Every lane needs cards, names must be unique within a lane, and every pair of
// cards in different lanes needs a synergy entry in both directions
func (c *Catalog) Validate() error {
	if c.Size() == 0 {
		return ErrEmptyCatalog
	}

	var result *multierror.Error
	for _, lane := range Lanes() {
		cards := c.lanes[lane]
		if len(cards) == 0 {
			result = multierror.Append(result, fmt.Errorf("lane %s has no cards", lane))
			continue
		}

		seen := make(map[string]bool, len(cards))
		for _, card := range cards {
			if card.Lane != lane {
				result = multierror.Append(result, fmt.Errorf("card %s is listed under %s", card, lane))
			}

			if seen[card.Name] {
				result = multierror.Append(result, fmt.Errorf("card %s is listed twice", card))
			}

			seen[card.Name] = true
		}
	}

	result = multierror.Append(result, c.missingSynergies()...)
	return result.ErrorOrNil()
}

func (c *Catalog) missingSynergies() []error {
	var errs []error
	lanes := Lanes()
	for i, laneA := range lanes {
		for _, laneB := range lanes[i+1:] {
			for _, a := range c.lanes[laneA] {
				for _, b := range c.lanes[laneB] {
					if a.Name == b.Name {
						continue
					}

					if !a.hasSynergyWith(b) || !b.hasSynergyWith(a) {
						errs = append(errs, fmt.Errorf("missing synergy between %s and %s", a, b))
					}
				}
			}
		}
	}

	return errs
}
