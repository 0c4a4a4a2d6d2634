package indigo

import "errors"

// ErrQuit is returned when the human asks to leave the match
// The match is abandoned without any final accounting
var ErrQuit = errors.New("player quit the match")

// ErrEmptyHand happens when a player is asked to play with no cards in hand
var ErrEmptyHand = errors.New("cannot play from an empty hand")

// ErrDeckShort happens when the deck cannot give a full deal to both players
var ErrDeckShort = errors.New("not enough cards left in the deck for a full deal")

// ErrInvalidChoice happens when a strategy selects a card outside of the hand
var ErrInvalidChoice = errors.New("chosen card is not in the player's hand")

// ErrMatchOver is an error when a step is attempted on a finished match
var ErrMatchOver = errors.New("match is over")

// ErrMissingStrategy is returned by NewMatch if either player has no strategy
var ErrMissingStrategy = errors.New("both players need a play strategy")
