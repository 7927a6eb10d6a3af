package domain_test

import (
	"testing"

	"github.com/randomtoy/cardstats-go/internal/domain"
)

// sequenceRNG returns Intn values from a pre-set sequence and a fixed normal
// draw.
type sequenceRNG struct {
	values []int
	idx    int
	norm   float64
}

func (r *sequenceRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func (r *sequenceRNG) NormFloat64() float64 { return r.norm }

// newDeckOrder builds spades A-K, diamonds A-K, clubs K-A, hearts K-A.
func newDeckOrder(t *testing.T) domain.Stack {
	t.Helper()
	var cards []domain.Card
	for _, s := range []domain.Suit{domain.Spades, domain.Diamonds} {
		for r := domain.Ace; r <= domain.King; r++ {
			cards = append(cards, domain.Card{Rank: r, Suit: s})
		}
	}
	for _, s := range []domain.Suit{domain.Clubs, domain.Hearts} {
		for r := domain.King; r >= domain.Ace; r-- {
			cards = append(cards, domain.Card{Rank: r, Suit: s})
		}
	}
	st, err := domain.NewStack("new_deck", "New Deck Order", cards)
	if err != nil {
		t.Fatalf("NewStack: %v", err)
	}
	return st
}
