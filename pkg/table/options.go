package table

import (
	"errors"
	"time"
)

// Options configures the stakes and pacing of a table
type Options struct {
	MaxSeats     int           `yaml:"maxSeats"`
	BigBlind     int           `yaml:"bigBlind"`
	SmallBlind   int           `yaml:"smallBlind"`
	StartingBank int           `yaml:"startingBank"`
	MinBankroll  int           `yaml:"minBankroll"`
	BaseStake    int           `yaml:"baseStake"`
	MinStake     int           `yaml:"minStake"`
	TurnSeconds  int           `yaml:"turnSeconds"`
	TickInterval time.Duration `yaml:"tickInterval"`
	RestartDelay time.Duration `yaml:"restartDelay"`
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		MaxSeats:     6,
		BigBlind:     10,
		SmallBlind:   5,
		StartingBank: 1000,
		MinBankroll:  10,
		BaseStake:    1000,
		MinStake:     10,
		TurnSeconds:  30,
		TickInterval: time.Second,
		RestartDelay: time.Millisecond * 7500,
	}
}

func validateOptions(opts Options) error {
	if opts.MaxSeats < 2 {
		return errors.New("max seats must be at least 2")
	}

	if opts.SmallBlind < 0 || opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be at least the small blind")
	}

	if opts.StartingBank <= opts.BigBlind {
		return errors.New("starting bank must be greater than the big blind")
	}

	if opts.MinStake <= 0 || opts.BaseStake < opts.MinStake {
		return errors.New("base stake must be at least the min stake")
	}

	if opts.TurnSeconds <= 0 || opts.TickInterval <= 0 {
		return errors.New("turn seconds and tick interval must be positive")
	}

	if opts.RestartDelay < 0 {
		return errors.New("restart delay cannot be negative")
	}

	return nil
}
