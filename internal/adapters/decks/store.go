package decks

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/randomtoy/cardstats-go/internal/domain"
)

//go:embed data/*.json
var deckFS embed.FS

// registry maps built-in stack IDs to their JSON filenames inside data/.
var registry = map[string]string{
	"new_deck":  "data/new_deck.json",
	"mnemonica": "data/mnemonica.json",
	"aronson":   "data/aronson.json",
}

// stackFile is the on-disk shape of a stack.
type stackFile struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Cards []string `json:"cards"`
}

// EmbeddedStore loads stacks from embedded JSON files plus any extra files
// given at construction.
type EmbeddedStore struct {
	extraFiles []string

	once   sync.Once
	stacks map[string]domain.Stack
	err    error
}

func NewEmbeddedStore(extraFiles ...string) *EmbeddedStore {
	return &EmbeddedStore{extraFiles: extraFiles}
}

func (s *EmbeddedStore) init() {
	s.stacks = make(map[string]domain.Stack, len(registry)+len(s.extraFiles))
	for id, filename := range registry {
		raw, err := deckFS.ReadFile(filename)
		if err != nil {
			s.err = fmt.Errorf("read embedded stack %s: %w", id, err)
			return
		}
		st, err := parseStack(raw)
		if err != nil {
			s.err = fmt.Errorf("parse embedded stack %s: %w", id, err)
			return
		}
		s.stacks[st.ID] = st
	}
	for _, path := range s.extraFiles {
		raw, err := os.ReadFile(path)
		if err != nil {
			s.err = fmt.Errorf("read stack file: %w", err)
			return
		}
		st, err := parseStack(raw)
		if err != nil {
			s.err = fmt.Errorf("parse stack file %s: %w", path, err)
			return
		}
		if _, dup := s.stacks[st.ID]; dup {
			s.err = fmt.Errorf("stack file %s: duplicate stack id %q", path, st.ID)
			return
		}
		s.stacks[st.ID] = st
	}
}

func parseStack(raw []byte) (domain.Stack, error) {
	var f stackFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return domain.Stack{}, err
	}
	if f.ID == "" {
		return domain.Stack{}, fmt.Errorf("missing stack id")
	}
	cards := make([]domain.Card, len(f.Cards))
	for i, code := range f.Cards {
		c, err := domain.ParseCard(code)
		if err != nil {
			return domain.Stack{}, fmt.Errorf("position %d: %w", i+1, err)
		}
		cards[i] = c
	}
	name := f.Name
	if name == "" {
		name = f.ID
	}
	return domain.NewStack(f.ID, name, cards)
}

// Load forces parsing and reports the first error, so a bad stack file can
// fail startup instead of the first request.
func (s *EmbeddedStore) Load() error {
	s.once.Do(s.init)
	return s.err
}

func (s *EmbeddedStore) GetStack(_ context.Context, stackID string) (domain.Stack, error) {
	if err := s.Load(); err != nil {
		return domain.Stack{}, err
	}
	st, ok := s.stacks[stackID]
	if !ok {
		return domain.Stack{}, domain.ErrStackNotFound
	}
	return st, nil
}

func (s *EmbeddedStore) ListStacks(_ context.Context) ([]domain.Stack, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	out := make([]domain.Stack, 0, len(s.stacks))
	for _, st := range s.stacks {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
