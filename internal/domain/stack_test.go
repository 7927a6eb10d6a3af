package domain_test

import (
	"errors"
	"testing"

	"github.com/randomtoy/cardstats-go/internal/domain"
)

func TestNewStack_PositionLookup(t *testing.T) {
	st := newDeckOrder(t)

	pos, err := st.PositionOf(domain.Card{Rank: domain.Ace, Suit: domain.Spades})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos != 1 {
		t.Errorf("expected Ace of Spades at 1, got %d", pos)
	}

	for p := 1; p <= domain.DeckSize; p++ {
		c, err := st.CardAt(p)
		if err != nil {
			t.Fatalf("CardAt(%d): %v", p, err)
		}
		got, err := st.PositionOf(c)
		if err != nil || got != p {
			t.Errorf("PositionOf(CardAt(%d)) = %d, %v", p, got, err)
		}
	}
}

func TestNewStack_Rejects(t *testing.T) {
	cards := newDeckOrder(t).Cards()

	if _, err := domain.NewStack("short", "", cards[:51]); !errors.Is(err, domain.ErrInvalidStack) {
		t.Errorf("short stack: expected ErrInvalidStack, got %v", err)
	}

	dup := append([]domain.Card(nil), cards...)
	dup[51] = dup[0]
	if _, err := domain.NewStack("dup", "", dup); !errors.Is(err, domain.ErrInvalidStack) {
		t.Errorf("duplicate card: expected ErrInvalidStack, got %v", err)
	}

	bad := append([]domain.Card(nil), cards...)
	bad[10] = domain.Card{}
	if _, err := domain.NewStack("bad", "", bad); !errors.Is(err, domain.ErrInvalidStack) {
		t.Errorf("invalid card: expected ErrInvalidStack, got %v", err)
	}
}

func TestStack_CardNotFound(t *testing.T) {
	var empty domain.Stack
	_, err := empty.PositionOf(domain.Card{Rank: domain.Ace, Suit: domain.Spades})
	if !errors.Is(err, domain.ErrCardNotInStack) {
		t.Errorf("expected ErrCardNotInStack, got %v", err)
	}

	if _, err := newDeckOrder(t).CardAt(53); !errors.Is(err, domain.ErrInvalidPosition) {
		t.Errorf("expected ErrInvalidPosition, got %v", err)
	}
}
