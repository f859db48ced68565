package memory

import (
	"context"
	"sync"

	"github.com/bnema/appversion/internal/ports"
)

// Store keeps values in process memory. Flush is a no-op apart from being
// counted.
type Store struct {
	mu      sync.RWMutex
	values  map[string]string
	writes  int
	flushes int

	SetErr   error
	FlushErr error
}

var _ ports.KeyValueStore = (*Store)(nil)

func NewStore(seed map[string]string) *Store {
	values := make(map[string]string, len(seed))
	for key, value := range seed {
		values[key] = value
	}

	return &Store{values: values}
}

func (s *Store) GetString(ctx context.Context, key string) (*string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, nil
	}

	return &value, nil
}

func (s *Store) SetString(ctx context.Context, key string, value *string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SetErr != nil {
		return s.SetErr
	}

	s.writes++
	if value == nil {
		delete(s.values, key)
		return nil
	}
	s.values[key] = *value

	return nil
}

func (s *Store) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FlushErr != nil {
		return s.FlushErr
	}
	s.flushes++

	return nil
}

// Values returns a copy of everything stored.
func (s *Store) Values() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make(map[string]string, len(s.values))
	for key, value := range s.values {
		values[key] = value
	}

	return values
}

func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.writes
}

func (s *Store) Flushes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.flushes
}
