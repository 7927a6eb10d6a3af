package domain

import (
	"strconv"
	"strings"
)

// Rank is a card rank. The zero value means no rank has been chosen.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = [...]string{"", "Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King"}

// Ranks returns the 13 ranks in display order.
func Ranks() []Rank {
	out := make([]Rank, 0, int(King))
	for r := Ace; r <= King; r++ {
		out = append(out, r)
	}
	return out
}

func (r Rank) Valid() bool { return r >= Ace && r <= King }

func (r Rank) String() string {
	if !r.Valid() {
		return ""
	}
	return rankNames[r]
}

// Code is the short form used in stack files: A, 2..10, J, Q, K.
func (r Rank) Code() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r.Valid() {
		return strconv.Itoa(int(r))
	}
	return ""
}

// ParseRank accepts a rank name or code, case-insensitively ("Ace", "a",
// "10", "T", "queen").
func ParseRank(s string) (Rank, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "ace":
		return Ace, nil
	case "t", "ten":
		return Ten, nil
	case "j", "jack":
		return Jack, nil
	case "q", "queen":
		return Queen, nil
	case "k", "king":
		return King, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(Two) || n > int(Ten) {
		return 0, ErrInvalidRank
	}
	return Rank(n), nil
}

// Suit is a card suit. The zero value means no suit has been chosen.
type Suit int

const (
	Spades Suit = iota + 1
	Hearts
	Clubs
	Diamonds
)

var suitNames = [...]string{"", "Spades", "Hearts", "Clubs", "Diamonds"}

// Suits returns the 4 suits in display order.
func Suits() []Suit {
	return []Suit{Spades, Hearts, Clubs, Diamonds}
}

func (s Suit) Valid() bool { return s >= Spades && s <= Diamonds }

func (s Suit) String() string {
	if !s.Valid() {
		return ""
	}
	return suitNames[s]
}

func (s Suit) Code() string {
	if !s.Valid() {
		return ""
	}
	return suitNames[s][:1]
}

// ParseSuit accepts a suit name (singular or plural) or its initial.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "spade", "spades":
		return Spades, nil
	case "h", "heart", "hearts":
		return Hearts, nil
	case "c", "club", "clubs":
		return Clubs, nil
	case "d", "diamond", "diamonds":
		return Diamonds, nil
	}
	return 0, ErrInvalidSuit
}

// Card is an immutable rank and suit pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard composes a card, rejecting unset or out-of-range parts.
func NewCard(r Rank, s Suit) (Card, error) {
	if !r.Valid() {
		return Card{}, ErrInvalidRank
	}
	if !s.Valid() {
		return Card{}, ErrInvalidSuit
	}
	return Card{Rank: r, Suit: s}, nil
}

func (c Card) IsZero() bool { return c == Card{} }

func (c Card) Valid() bool { return c.Rank.Valid() && c.Suit.Valid() }

// String returns the display form, e.g. "Ace of Spades".
func (c Card) String() string {
	if !c.Valid() {
		return ""
	}
	return c.Rank.String() + " of " + c.Suit.String()
}

// Code returns the short form, e.g. "AS" or "10H".
func (c Card) Code() string {
	if !c.Valid() {
		return ""
	}
	return c.Rank.Code() + c.Suit.Code()
}

// ParseCard accepts "Ace of Spades" or a code such as "AS", "10h", "Td".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if rank, suit, ok := strings.Cut(s, " of "); ok {
		return parseCardParts(rank, suit)
	}
	if len(s) < 2 {
		return Card{}, ErrInvalidCard
	}
	return parseCardParts(s[:len(s)-1], s[len(s)-1:])
}

func parseCardParts(rank, suit string) (Card, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, ErrInvalidCard
	}
	st, err := ParseSuit(suit)
	if err != nil {
		return Card{}, ErrInvalidCard
	}
	return Card{Rank: r, Suit: st}, nil
}
