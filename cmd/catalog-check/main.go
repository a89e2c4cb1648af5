package main

import (
	"flag"
	"github.com/hashicorp/go-multierror"
	"github.com/pterm/pterm"
	"lolpoker-server/pkg/catalog"
	"os"
	"strconv"
)

var path = flag.String("catalog", "catalog.json", "the catalog file to check")

func main() {
	flag.Parse()

	c, err := catalog.LoadFile(*path)
	if err != nil {
		pterm.Error.Printfln("could not load %s: %v", *path, err)
		os.Exit(1)
	}

	data := pterm.TableData{{"Lane", "Cards", "Min points", "Max points"}}
	for _, lane := range catalog.Lanes() {
		cards := c.Lane(lane)
		lo, hi := pointRange(cards)
		data = append(data, []string{lane.String(), strconv.Itoa(len(cards)), strconv.Itoa(lo), strconv.Itoa(hi)})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if err := c.Validate(); err != nil {
		if merr, ok := err.(*multierror.Error); ok {
			for _, e := range merr.Errors {
				pterm.Warning.Println(e)
			}

			pterm.Error.Printfln("%d problems found", len(merr.Errors))
		} else {
			pterm.Error.Println(err)
		}

		os.Exit(1)
	}

	pterm.Success.Printfln("%s has %d cards and is ready to play", *path, c.Size())
}

func pointRange(cards []*catalog.Card) (int, int) {
	if len(cards) == 0 {
		return 0, 0
	}

	lo, hi := cards[0].Points, cards[0].Points
	for _, card := range cards[1:] {
		if card.Points < lo {
			lo = card.Points
		}

		if card.Points > hi {
			hi = card.Points
		}
	}

	return lo, hi
}
