package table

import "errors"

// errors returned by Action()
// the table never reports these to the client, the dealer logs them
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownPlayer = errors.New("player is not at this table")
	ErrWrongState    = errors.New("action is not allowed in the current state")
	ErrNotYourTurn   = errors.New("it is not your turn")
	ErrMustCall      = errors.New("cannot check while a bet is owed")
	ErrNothingToCall = errors.New("nothing to call")
	ErrInvalidRaise  = errors.New("invalid raise")
	ErrInvalidName   = errors.New("invalid name")
	ErrNoLegalCard   = errors.New("deck has no legal card left")
	ErrTableIsClosed = errors.New("table is closed")
)
