package ports

import "context"

// BundleMetadata reads the running application's version identifiers. A
// value that is not available is returned as nil, not as an error.
type BundleMetadata interface {
	ShortVersion(ctx context.Context) (*string, error)
	BuildNumber(ctx context.Context) (*string, error)
}
