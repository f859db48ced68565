package ports

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// KeyValueStore holds the last known version record. GetString returns nil
// for a missing key. SetString with a nil value removes the key. Writes only
// become durable after Flush.
type KeyValueStore interface {
	GetString(ctx context.Context, key string) (*string, error)
	SetString(ctx context.Context, key string, value *string) error
	Flush(ctx context.Context) error
}

const (
	versionKey     = "rg.appVersion.lastInstalledAppVersion"
	buildKey       = "rg.appVersion.lastInstalledBuildNumber"
	legacyBuildKey = "rg.appVersion.lastInstalledAppversion"
)

type StoreKeys struct {
	Version string
	Build   string
}

// DefaultStoreKeys keeps the historical version key and stores the build
// number under a key that differs by more than letter case.
var DefaultStoreKeys = StoreKeys{Version: versionKey, Build: buildKey}

// LegacyStoreKeys are the keys older releases wrote. The build key only
// differs from the version key by the case of one letter, so it is read for
// migration and never written.
var LegacyStoreKeys = StoreKeys{Version: versionKey, Build: legacyBuildKey}

var ErrStoreKeysCollide = errors.New("store keys collide")

func (k StoreKeys) Validate() error {
	if strings.TrimSpace(k.Version) == "" {
		return errors.New("version store key is empty")
	}
	if strings.TrimSpace(k.Build) == "" {
		return errors.New("build store key is empty")
	}
	if strings.EqualFold(k.Version, k.Build) {
		return fmt.Errorf("%w: %q and %q", ErrStoreKeysCollide, k.Version, k.Build)
	}

	return nil
}
