package bundle

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/appversion/internal/ports"
)

// Chain asks each source in order and reports the first present value.
// Each field is looked up on its own, so one source can supply the version
// and a later one the build number.
type Chain struct {
	sources []ports.BundleMetadata
}

var _ ports.BundleMetadata = (*Chain)(nil)

var errNoSources = errors.New("bundle chain has no sources")

func NewChain(sources ...ports.BundleMetadata) (*Chain, error) {
	filtered := make([]ports.BundleMetadata, 0, len(sources))
	for _, source := range sources {
		if source != nil {
			filtered = append(filtered, source)
		}
	}
	if len(filtered) == 0 {
		return nil, errNoSources
	}

	return &Chain{sources: filtered}, nil
}

func (c *Chain) ShortVersion(ctx context.Context) (*string, error) {
	return c.first(ctx, "short version", ports.BundleMetadata.ShortVersion)
}

func (c *Chain) BuildNumber(ctx context.Context) (*string, error) {
	return c.first(ctx, "build number", ports.BundleMetadata.BuildNumber)
}

func (c *Chain) first(ctx context.Context, field string, get func(ports.BundleMetadata, context.Context) (*string, error)) (*string, error) {
	var errs []error
	for i, source := range c.sources {
		value, err := get(source, ctx)
		if err != nil {
			if shouldStop(err) {
				return nil, err
			}
			errs = append(errs, fmt.Errorf("bundle source %d %s: %w", i, field, err))
			continue
		}
		if value != nil {
			return value, nil
		}
	}

	return nil, errors.Join(errs...)
}

func shouldStop(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
