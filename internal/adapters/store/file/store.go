package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/appversion/internal/ports"
	"go.uber.org/zap"
)

const (
	storeFileMode   = 0o600
	storeDirMode    = 0o700
	storeConfigDir  = ".appversion"
	storeConfigFile = "state.toml"
	tempFilePattern = ".state-*.tmp"
)

// Store is a KeyValueStore backed by a single TOML or YAML file. Writes are
// buffered until Flush, which merges them into the file on disk and replaces
// it atomically.
type Store struct {
	path   string
	codec  codec
	mu     *sync.RWMutex
	logger *zap.Logger
	now    func() time.Time

	values  map[string]string
	pending map[string]*string
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.KeyValueStore = (*Store)(nil)

type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// DefaultPath is $HOME/.appversion/state.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, storeConfigDir, storeConfigFile), nil
}

// Open loads the state file at path. A missing file is an empty store.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.New("state path is empty")
	}

	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	fileCodec, err := codecForPath(path)
	if err != nil {
		return nil, err
	}

	s := &Store{
		path:    path,
		codec:   fileCodec,
		mu:      lockForPath(path),
		logger:  zap.NewNop(),
		now:     time.Now,
		pending: map[string]*string{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return nil, err
	}
	s.values = file.Values

	s.logger.Debug("opened state file", zap.String("path", s.path), zap.String("format", s.codec.name))
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) GetString(ctx context.Context, key string) (*string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if value, ok := s.pending[key]; ok {
		if value == nil {
			return nil, nil
		}
		copied := *value
		return &copied, nil
	}

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
	if key == "" {
		return errors.New("state key is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if value == nil {
		s.pending[key] = nil
		return nil
	}

	copied := *value
	s.pending[key] = &copied
	return nil
}

// Flush re-reads the file, applies pending writes and replaces the file.
// It does nothing when there are no pending writes.
func (s *Store) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	for key, value := range s.pending {
		if value == nil {
			delete(file.Values, key)
			continue
		}
		file.Values[key] = *value
	}
	file.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.writeSchema(file); err != nil {
		return err
	}

	s.logger.Debug("flushed state file", zap.String("path", s.path), zap.Int("changes", len(s.pending)))
	s.values = file.Values
	s.pending = map[string]*string{}

	return nil
}

func (s *Store) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read state file: %w", err)
	}

	var file fileSchema
	if err := s.codec.unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode state file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (s *Store) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.path), storeDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := s.codec.marshal(file)
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tempFile.Chmod(storeFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve state path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
