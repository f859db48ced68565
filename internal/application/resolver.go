package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/appversion/internal/domain"
	"github.com/bnema/appversion/internal/ports"
	"go.uber.org/zap"
)

var (
	errNilBundle = errors.New("bundle metadata is nil")
	errNilStore  = errors.New("key value store is nil")
)

// Resolver classifies the current launch as a fresh install, an update or
// an unchanged run. It resolves at most once; every accessor reports
// domain.ErrNotResolved until Resolve has succeeded.
type Resolver struct {
	bundle         ports.BundleMetadata
	store          ports.KeyValueStore
	keys           ports.StoreKeys
	legacyBuildKey string
	policy         domain.ComparisonPolicy
	logger         *zap.Logger

	mu      sync.Mutex
	state   domain.ResolutionState
	current domain.VersionDescriptor
	last    domain.VersionDescriptor

	// pending holds a classification whose persist failed. A retry only
	// persists again, since the store may already show the new record.
	pending *resolution
}

type resolution struct {
	state   domain.ResolutionState
	current domain.VersionDescriptor
	last    domain.VersionDescriptor
}

type Option func(*Resolver)

func WithKeys(keys ports.StoreKeys) Option {
	return func(r *Resolver) {
		r.keys = keys
	}
}

// WithLegacyKeys makes the resolver fall back to the legacy build key when
// the current build key holds nothing.
func WithLegacyKeys(enabled bool) Option {
	return func(r *Resolver) {
		if enabled {
			r.legacyBuildKey = ports.LegacyStoreKeys.Build
			return
		}
		r.legacyBuildKey = ""
	}
}

func WithComparison(policy domain.ComparisonPolicy) Option {
	return func(r *Resolver) {
		r.policy = policy
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewResolver(bundle ports.BundleMetadata, store ports.KeyValueStore, opts ...Option) *Resolver {
	resolver, err := NewResolverChecked(bundle, store, opts...)
	if err != nil {
		panic(err)
	}

	return resolver
}

func NewResolverChecked(bundle ports.BundleMetadata, store ports.KeyValueStore, opts ...Option) (*Resolver, error) {
	if bundle == nil {
		return nil, errNilBundle
	}
	if store == nil {
		return nil, errNilStore
	}

	r := &Resolver{
		bundle: bundle,
		store:  store,
		keys:   ports.DefaultStoreKeys,
		policy: domain.CompareLabel,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.keys.Validate(); err != nil {
		return nil, err
	}
	if _, err := domain.ParseComparisonPolicy(string(r.policy)); err != nil {
		return nil, err
	}
	if r.legacyBuildKey == r.keys.Build || r.legacyBuildKey == r.keys.Version {
		r.legacyBuildKey = ""
	}

	return r, nil
}

// Resolve reads the current and last known descriptors, classifies them and
// persists the current descriptor for fresh installs and updates. A failed
// resolve leaves the resolver undetermined so the caller may retry.
func (r *Resolver) Resolve(ctx context.Context) (domain.ResolutionState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != domain.NotDetermined {
		return r.state, nil
	}

	if err := ctx.Err(); err != nil {
		return domain.NotDetermined, err
	}

	res := r.pending
	if res == nil {
		var err error
		res, err = r.classify(ctx)
		if err != nil {
			return domain.NotDetermined, err
		}
	}

	if domain.NeedsPersist(res.state) {
		if err := r.persist(ctx, res.current); err != nil {
			r.pending = res
			return domain.NotDetermined, err
		}
	}

	r.pending = nil
	r.current = res.current
	r.last = res.last
	r.state = res.state

	r.logger.Info("resolved version state",
		zap.Stringer("state", res.state),
		zap.Stringer("current", res.current),
		zap.Stringer("last", res.last),
	)

	return res.state, nil
}

func (r *Resolver) State() domain.ResolutionState {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state
}

func (r *Resolver) CurrentVersion() (domain.VersionDescriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == domain.NotDetermined {
		return domain.VersionDescriptor{}, domain.ErrNotResolved
	}

	return r.current.Clone(), nil
}

// LastVersion returns the previously recorded descriptor. ok is false when
// no prior record existed.
func (r *Resolver) LastVersion() (descriptor domain.VersionDescriptor, ok bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == domain.NotDetermined {
		return domain.VersionDescriptor{}, false, domain.ErrNotResolved
	}
	if !r.last.HasAppVersion() {
		return domain.VersionDescriptor{}, false, nil
	}

	return r.last.Clone(), true, nil
}

func (r *Resolver) IsFreshInstall() (bool, error) {
	return r.stateIs(domain.Installed)
}

func (r *Resolver) WasUpdated() (bool, error) {
	return r.stateIs(domain.Updated)
}

func (r *Resolver) stateIs(want domain.ResolutionState) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == domain.NotDetermined {
		return false, domain.ErrNotResolved
	}

	return r.state == want, nil
}

// Reset removes the stored record so the next process resolves as a fresh
// install. The state already resolved by this resolver is kept.
func (r *Resolver) Reset(ctx context.Context) error {
	keys := []string{r.keys.Version, r.keys.Build}
	if r.legacyBuildKey != "" {
		keys = append(keys, r.legacyBuildKey)
	}

	for _, key := range keys {
		if err := r.store.SetString(ctx, key, nil); err != nil {
			return fmt.Errorf("clear %q: %w", key, err)
		}
	}

	if err := r.store.Flush(ctx); err != nil {
		return fmt.Errorf("flush store: %w", err)
	}

	r.logger.Info("cleared last known version record")
	return nil
}

func (r *Resolver) classify(ctx context.Context) (*resolution, error) {
	current, err := r.readCurrent(ctx)
	if err != nil {
		return nil, err
	}

	last, err := r.readLast(ctx)
	if err != nil {
		return nil, err
	}

	return &resolution{
		state:   domain.Classify(last, current, r.policy),
		current: current,
		last:    last,
	}, nil
}

func (r *Resolver) readCurrent(ctx context.Context) (domain.VersionDescriptor, error) {
	version, err := r.bundle.ShortVersion(ctx)
	if err != nil {
		return domain.VersionDescriptor{}, fmt.Errorf("read current app version: %w", err)
	}

	build, err := r.bundle.BuildNumber(ctx)
	if err != nil {
		return domain.VersionDescriptor{}, fmt.Errorf("read current build number: %w", err)
	}

	return domain.NewVersionDescriptor(version, build), nil
}

func (r *Resolver) readLast(ctx context.Context) (domain.VersionDescriptor, error) {
	version, err := r.store.GetString(ctx, r.keys.Version)
	if err != nil {
		return domain.VersionDescriptor{}, fmt.Errorf("read last app version: %w", err)
	}

	build, err := r.store.GetString(ctx, r.keys.Build)
	if err != nil {
		return domain.VersionDescriptor{}, fmt.Errorf("read last build number: %w", err)
	}

	if build == nil && r.legacyBuildKey != "" {
		build, err = r.store.GetString(ctx, r.legacyBuildKey)
		if err != nil {
			return domain.VersionDescriptor{}, fmt.Errorf("read legacy build number: %w", err)
		}
		if build != nil {
			r.logger.Debug("read build number from legacy key", zap.String("key", r.legacyBuildKey))
		}
	}

	return domain.NewVersionDescriptor(version, build), nil
}

// persist writes current under both keys and always clears the legacy build
// key, so a stale legacy value cannot resurface once the build key is gone.
func (r *Resolver) persist(ctx context.Context, current domain.VersionDescriptor) error {
	if err := r.store.SetString(ctx, r.keys.Version, current.AppVersion); err != nil {
		return fmt.Errorf("store current app version: %w", err)
	}
	if err := r.store.SetString(ctx, r.keys.Build, current.BuildNumber); err != nil {
		return fmt.Errorf("store current build number: %w", err)
	}
	if r.legacyBuildKey != "" {
		if err := r.store.SetString(ctx, r.legacyBuildKey, nil); err != nil {
			return fmt.Errorf("clear legacy build number: %w", err)
		}
	}

	if err := r.store.Flush(ctx); err != nil {
		return fmt.Errorf("flush store: %w", err)
	}

	return nil
}
