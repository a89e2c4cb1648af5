package catalog

import (
	"fmt"
	"strings"
)

// Lane is one of the five card categories
type Lane string

// Lane constants
const (
	Top     Lane = "TOP"
	Middle  Lane = "MIDDLE"
	Jungle  Lane = "JUNGLE"
	Bottom  Lane = "BOTTOM"
	Utility Lane = "UTILITY"
)

// Lanes returns every lane in catalog order
func Lanes() []Lane {
	return []Lane{Top, Middle, Jungle, Bottom, Utility}
}

// LaneFromString returns the lane for the given identifier
func LaneFromString(s string) (Lane, error) {
	lane := Lane(strings.ToUpper(s))
	for _, l := range Lanes() {
		if l == lane {
			return lane, nil
		}
	}

	return "", fmt.Errorf("unknown lane: %s", s)
}

func (l Lane) String() string {
	return string(l)
}
