package app

import (
	"time"

	"github.com/randomtoy/cardstats-go/internal/domain"
)

// Option is one choice in a rank or suit picker.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Controls says which inputs the render surface should enable.
type Controls struct {
	PickCard bool
	Digits   bool
	Confirm  bool
	Restart  bool
}

// PageView is a declarative description of the current page for the render
// surface.
type PageView struct {
	SessionID string
	Stack     StackInfo
	Page      domain.Page

	Ranks []Option
	Suits []Option

	// PendingCard is the rank and suit chosen so far; Card is set once
	// confirmed.
	PendingCard domain.Card
	Card        domain.Card

	Entry    string
	Position int

	Controls Controls
	Notice   string
	Analysis *domain.Analysis

	UpdatedAt time.Time
}

// StackInfo identifies a stack without exposing its order.
type StackInfo struct {
	ID   string
	Name string
}

func newPageView(sess domain.Session, stack domain.Stack, notice string) PageView {
	sel := sess.Selection
	v := PageView{
		SessionID:   sess.ID,
		Stack:       StackInfo{ID: stack.ID, Name: stack.Name},
		Page:        sel.Page,
		PendingCard: domain.Card{Rank: sel.Rank, Suit: sel.Suit},
		Card:        sel.Card,
		Entry:       sel.Entry,
		Position:    sel.Position,
		Notice:      notice,
		UpdatedAt:   sess.UpdatedAt,
		Controls: Controls{
			PickCard: sel.Page == domain.PageSelectCard,
			Digits:   sel.Page == domain.PageSelectPosition,
			Confirm:  sel.CanConfirm(),
			Restart:  sel.Page == domain.PageResults,
		},
	}

	if sel.Page == domain.PageSelectCard {
		for _, r := range domain.Ranks() {
			v.Ranks = append(v.Ranks, Option{Value: r.Code(), Label: r.String(), Selected: r == sel.Rank})
		}
		for _, s := range domain.Suits() {
			v.Suits = append(v.Suits, Option{Value: s.Code(), Label: s.String(), Selected: s == sel.Suit})
		}
	}
	return v
}
