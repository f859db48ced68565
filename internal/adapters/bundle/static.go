package bundle

import (
	"context"

	"github.com/bnema/appversion/internal/ports"
)

// Static reports fixed values. A nil field is reported as absent.
type Static struct {
	Version *string
	Build   *string
}

var _ ports.BundleMetadata = Static{}

func (s Static) ShortVersion(ctx context.Context) (*string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.Version, nil
}

func (s Static) BuildNumber(ctx context.Context) (*string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.Build, nil
}
