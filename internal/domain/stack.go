package domain

import "fmt"

// DeckSize is the number of cards in a stack.
const DeckSize = 52

// Stack is a fixed ordering of all 52 cards, addressed by 1-based position.
// It is immutable once built.
type Stack struct {
	ID    string
	Name  string
	cards []Card
	index map[Card]int
}

// NewStack validates that cards hold each of the 52 cards exactly once and
// precomputes the card to position lookup.
func NewStack(id, name string, cards []Card) (Stack, error) {
	if len(cards) != DeckSize {
		return Stack{}, fmt.Errorf("%w: got %d cards", ErrInvalidStack, len(cards))
	}
	index := make(map[Card]int, DeckSize)
	for i, c := range cards {
		if !c.Valid() {
			return Stack{}, fmt.Errorf("%w: invalid card at position %d", ErrInvalidStack, i+1)
		}
		if prev, dup := index[c]; dup {
			return Stack{}, fmt.Errorf("%w: %s at positions %d and %d", ErrInvalidStack, c, prev, i+1)
		}
		index[c] = i + 1
	}
	return Stack{
		ID:    id,
		Name:  name,
		cards: append([]Card(nil), cards...),
		index: index,
	}, nil
}

// PositionOf returns the 1-based position of c.
func (s Stack) PositionOf(c Card) (int, error) {
	pos, ok := s.index[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q in stack %q", ErrCardNotInStack, c.String(), s.ID)
	}
	return pos, nil
}

// CardAt returns the card at 1-based position pos.
func (s Stack) CardAt(pos int) (Card, error) {
	if pos < 1 || pos > len(s.cards) {
		return Card{}, ErrInvalidPosition
	}
	return s.cards[pos-1], nil
}

// Cards returns a copy of the ordering.
func (s Stack) Cards() []Card {
	return append([]Card(nil), s.cards...)
}
