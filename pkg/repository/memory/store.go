package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/model"
	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/types"
)

// keepResults bounds how many past results stay retrievable by token.
// Beyond that, the oldest entry is evicted. The tool is single-session
// scale; this is not a cache with any guarantee.
const keepResults = 8

// Store keeps extraction results in process memory, keyed by an opaque
// token handed back with the upload response. The most recent result
// doubles as the default for token-less report downloads. A second upload
// racing the first can still evict results before they are downloaded;
// that is an accepted limitation at this scale.
type Store struct {
	mu      sync.Mutex
	byToken map[string]*model.ExtractionResult
	order   []string
	latest  string
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		byToken: make(map[string]*model.ExtractionResult),
	}
}

// Put stores result unconditionally and returns its download token.
func (s *Store) Put(result *model.ExtractionResult) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byToken[token] = result
	s.order = append(s.order, token)
	s.latest = token

	for len(s.order) > keepResults {
		delete(s.byToken, s.order[0])
		s.order = s.order[1:]
	}

	return token
}

// Get returns the result stored under token.
func (s *Store) Get(token string) (*model.ExtractionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, ok := s.byToken[token]
	if !ok {
		return nil, goerr.Wrap(types.ErrNoResultYet, "unknown or expired report token")
	}
	return result, nil
}

// Latest returns the most recently stored result.
func (s *Store) Latest() (*model.ExtractionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest == "" {
		return nil, goerr.Wrap(types.ErrNoResultYet, "no upload has completed")
	}
	return s.byToken[s.latest], nil
}
