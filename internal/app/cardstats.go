package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/randomtoy/cardstats-go/internal/domain"
	"github.com/randomtoy/cardstats-go/internal/ports"
)

// Options tunes the service. The zero value settles the loading page
// immediately and requires an explicit stack for every session.
type Options struct {
	DefaultStack string
	LoadingDelay time.Duration
}

// CardStatsService drives sessions through the selection flow and renders
// each page.
type CardStatsService struct {
	stacks   ports.StackStore
	sessions ports.SessionStore
	rng      domain.RNG
	opts     Options
	logger   *slog.Logger
}

func NewCardStatsService(stacks ports.StackStore, sessions ports.SessionStore, rng domain.RNG, opts Options, logger *slog.Logger) *CardStatsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardStatsService{
		stacks:   stacks,
		sessions: sessions,
		rng:      rng,
		opts:     opts,
		logger:   logger,
	}
}

// Stacks lists the available card orderings.
func (s *CardStatsService) Stacks(ctx context.Context) ([]domain.Stack, error) {
	stacks, err := s.stacks.ListStacks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stacks: %w", err)
	}
	return stacks, nil
}

// StartSession opens a session on stackID, or on the default stack when
// stackID is empty.
func (s *CardStatsService) StartSession(ctx context.Context, stackID string) (PageView, error) {
	if stackID == "" {
		stackID = s.opts.DefaultStack
	}
	stack, err := s.stacks.GetStack(ctx, stackID)
	if err != nil {
		return PageView{}, fmt.Errorf("get stack: %w", err)
	}

	sess, err := s.sessions.Create(ctx, stack.ID)
	if err != nil {
		return PageView{}, fmt.Errorf("create session: %w", err)
	}
	s.logger.DebugContext(ctx, "session started", "session_id", sess.ID, "stack", stack.ID)

	return s.render(sess, stack, "")
}

// View renders the session's current page. On the results page the
// analysis is drawn afresh each time.
func (s *CardStatsService) View(ctx context.Context, id string) (PageView, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return PageView{}, fmt.Errorf("get session: %w", err)
	}
	return s.renderSession(ctx, sess, "")
}

// Dispatch applies ev to the session. Rejected input is reported through
// PageView.Notice with a nil error; the page is re-rendered for re-entry.
func (s *CardStatsService) Dispatch(ctx context.Context, id string, ev domain.Event) (PageView, error) {
	var rejected error
	sess, err := s.sessions.Update(ctx, id, func(sess *domain.Session) error {
		next, err := domain.Transition(sess.Selection, ev)
		if err != nil && !errors.Is(err, domain.ErrInvalidSelection) {
			return err
		}
		rejected = err
		sess.Selection = next
		return nil
	})
	if err != nil {
		return PageView{}, fmt.Errorf("dispatch %s: %w", ev.Type, err)
	}

	notice := ""
	if rejected != nil {
		s.logger.DebugContext(ctx, "input rejected", "session_id", id, "event", ev.Type, "error", rejected)
		notice = noticeFor(rejected)
	}
	return s.renderSession(ctx, sess, notice)
}

// Settle finishes the loading page: it waits the configured delay, then
// moves the session to results. Sessions on any other page are rendered
// unchanged.
func (s *CardStatsService) Settle(ctx context.Context, id string) (PageView, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return PageView{}, fmt.Errorf("get session: %w", err)
	}
	if sess.Selection.Page != domain.PageLoading {
		return s.renderSession(ctx, sess, "")
	}

	if s.opts.LoadingDelay > 0 {
		timer := time.NewTimer(s.opts.LoadingDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return PageView{}, ctx.Err()
		case <-timer.C:
		}
	}

	sess, err = s.sessions.Update(ctx, id, func(sess *domain.Session) error {
		// Another request may have settled it during the wait.
		if sess.Selection.Page != domain.PageLoading {
			return nil
		}
		next, err := domain.Transition(sess.Selection, domain.Event{Type: domain.EventLoaded})
		if err != nil {
			return err
		}
		sess.Selection = next
		return nil
	})
	if err != nil {
		return PageView{}, fmt.Errorf("settle: %w", err)
	}
	return s.renderSession(ctx, sess, "")
}

// EndSession discards the session.
func (s *CardStatsService) EndSession(ctx context.Context, id string) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.logger.DebugContext(ctx, "session ended", "session_id", id)
	return nil
}

func (s *CardStatsService) renderSession(ctx context.Context, sess domain.Session, notice string) (PageView, error) {
	stack, err := s.stacks.GetStack(ctx, sess.StackID)
	if err != nil {
		return PageView{}, fmt.Errorf("get stack: %w", err)
	}
	view, err := s.render(sess, stack, notice)
	if errors.Is(err, domain.ErrCardNotInStack) {
		s.logger.ErrorContext(ctx, "selected card missing from stack",
			"session_id", sess.ID, "stack", stack.ID, "card", sess.Selection.Card.Code(), "error", err)
	}
	return view, err
}

func (s *CardStatsService) render(sess domain.Session, stack domain.Stack, notice string) (PageView, error) {
	view := newPageView(sess, stack, notice)
	if sess.Selection.Page != domain.PageResults {
		return view, nil
	}

	a, err := domain.Analyze(stack, sess.Selection.Card, sess.Selection.Position, s.rng)
	if err != nil {
		return PageView{}, fmt.Errorf("analyze: %w", err)
	}
	view.Analysis = &a
	return view, nil
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidPosition):
		return "Invalid position! The deck consists of 52 cards. Please enter a number between 1 and 52."
	case errors.Is(err, domain.ErrSelectionIncomplete):
		return "Please choose both a rank and a suit."
	case errors.Is(err, domain.ErrInvalidRank):
		return "Please choose a rank: Ace, 2-10, Jack, Queen or King."
	case errors.Is(err, domain.ErrInvalidSuit):
		return "Please choose a suit: Spades, Hearts, Clubs or Diamonds."
	default:
		return "Invalid card selection!"
	}
}
