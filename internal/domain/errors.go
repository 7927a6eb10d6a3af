package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSelection is the class of user-input errors. They are recovered
// by rejecting the input and re-prompting.
var ErrInvalidSelection = errors.New("invalid selection")

var (
	ErrInvalidRank         = fmt.Errorf("%w: rank must be one of Ace, 2-10, Jack, Queen, King", ErrInvalidSelection)
	ErrInvalidSuit         = fmt.Errorf("%w: suit must be one of Spades, Hearts, Clubs, Diamonds", ErrInvalidSelection)
	ErrInvalidCard         = fmt.Errorf("%w: unknown card", ErrInvalidSelection)
	ErrInvalidPosition     = fmt.Errorf("%w: position must be a number between 1 and 52", ErrInvalidSelection)
	ErrSelectionIncomplete = fmt.Errorf("%w: choose both a rank and a suit", ErrInvalidSelection)
)

var (
	ErrCardNotInStack    = errors.New("invalid card selection: card not found in stack")
	ErrInvalidStack      = errors.New("stack must hold each of the 52 cards exactly once")
	ErrInvalidTransition = errors.New("action not allowed on this page")
	ErrStackNotFound     = errors.New("stack not found")
	ErrSessionNotFound   = errors.New("session not found")
)
