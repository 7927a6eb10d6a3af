package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Page identifies a step of the selection flow.
type Page string

const (
	PageSelectCard     Page = "select_card"
	PageSelectPosition Page = "select_position"
	PageLoading        Page = "loading"
	PageResults        Page = "results"
)

// EventType identifies a user action.
type EventType string

const (
	EventSelectRank    EventType = "select_rank"
	EventSelectSuit    EventType = "select_suit"
	EventSelectCard    EventType = "select_card"
	EventAppendDigit   EventType = "append_digit"
	EventDeleteDigit   EventType = "delete_digit"
	EventClearPosition EventType = "clear_position"
	EventSetPosition   EventType = "set_position"
	EventConfirm       EventType = "confirm"
	EventLoaded        EventType = "loaded"
	EventRestart       EventType = "restart"
)

// ParseEventType returns the event type named by s.
func ParseEventType(s string) (EventType, bool) {
	switch t := EventType(strings.ToLower(strings.TrimSpace(s))); t {
	case EventSelectRank, EventSelectSuit, EventSelectCard,
		EventAppendDigit, EventDeleteDigit, EventClearPosition, EventSetPosition,
		EventConfirm, EventLoaded, EventRestart:
		return t, true
	}
	return "", false
}

// Event is a user action. Value carries the raw input, validated by
// Transition.
type Event struct {
	Type  EventType
	Value string
}

// Selection is the in-progress state of one session.
type Selection struct {
	Page Page

	// Rank and Suit are the pending choice on the card page.
	Rank Rank
	Suit Suit
	Card Card

	// Entry is the position typed so far; Position is set on confirm.
	Entry    string
	Position int
}

// NewSelection returns the initial, empty selection.
func NewSelection() Selection {
	return Selection{Page: PageSelectCard}
}

// CanConfirm reports whether a confirm event would advance the page.
func (s Selection) CanConfirm() bool {
	switch s.Page {
	case PageSelectCard:
		return s.Rank.Valid() && s.Suit.Valid()
	case PageSelectPosition:
		_, err := parsePosition(s.Entry)
		return err == nil
	}
	return false
}

// Transition applies ev to s. Input errors wrap ErrInvalidSelection and come
// with the selection to keep (entry buffers reset where applicable). Events
// the current page does not accept return ErrInvalidTransition and s
// unchanged.
func Transition(s Selection, ev Event) (Selection, error) {
	if s.Page == "" {
		s.Page = PageSelectCard
	}
	switch s.Page {
	case PageSelectCard:
		return onSelectCard(s, ev)
	case PageSelectPosition:
		return onSelectPosition(s, ev)
	case PageLoading:
		if ev.Type == EventLoaded {
			s.Page = PageResults
			return s, nil
		}
	case PageResults:
		if ev.Type == EventRestart {
			return NewSelection(), nil
		}
	}
	return s, invalidTransition(s.Page, ev.Type)
}

func onSelectCard(s Selection, ev Event) (Selection, error) {
	switch ev.Type {
	case EventSelectRank:
		r, err := ParseRank(ev.Value)
		if err != nil {
			return s, err
		}
		s.Rank = r
	case EventSelectSuit:
		st, err := ParseSuit(ev.Value)
		if err != nil {
			return s, err
		}
		s.Suit = st
	case EventSelectCard:
		c, err := ParseCard(ev.Value)
		if err != nil {
			return s, err
		}
		s.Rank, s.Suit = c.Rank, c.Suit
	case EventConfirm:
		if !s.Rank.Valid() || !s.Suit.Valid() {
			return s, ErrSelectionIncomplete
		}
		c, err := NewCard(s.Rank, s.Suit)
		if err != nil {
			return s, err
		}
		s.Card = c
		s.Page = PageSelectPosition
	default:
		return s, invalidTransition(s.Page, ev.Type)
	}
	return s, nil
}

func onSelectPosition(s Selection, ev Event) (Selection, error) {
	switch ev.Type {
	case EventAppendDigit:
		d := strings.TrimSpace(ev.Value)
		if len(d) != 1 || d[0] < '0' || d[0] > '9' {
			s.Entry = ""
			return s, fmt.Errorf("%w: %q is not a digit", ErrInvalidPosition, ev.Value)
		}
		if _, err := parsePosition(s.Entry + d); err != nil {
			s.Entry = ""
			return s, err
		}
		s.Entry += d
	case EventDeleteDigit:
		if n := len(s.Entry); n > 0 {
			s.Entry = s.Entry[:n-1]
		}
	case EventClearPosition:
		s.Entry = ""
	case EventSetPosition:
		p, err := parsePosition(ev.Value)
		if err != nil {
			s.Entry = ""
			return s, err
		}
		s.Entry = strconv.Itoa(p)
	case EventConfirm:
		p, err := parsePosition(s.Entry)
		if err != nil {
			s.Entry = ""
			return s, err
		}
		s.Position = p
		s.Page = PageLoading
	default:
		return s, invalidTransition(s.Page, ev.Type)
	}
	return s, nil
}

func parsePosition(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	p, err := strconv.Atoi(raw)
	if err != nil || !ValidPosition(p) {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidPosition, raw)
	}
	return p, nil
}

func invalidTransition(p Page, t EventType) error {
	return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, t, p)
}
