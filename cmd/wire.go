package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/appversion/internal/adapters/bundle"
	"github.com/bnema/appversion/internal/adapters/render/versionstate"
	filestore "github.com/bnema/appversion/internal/adapters/store/file"
	"github.com/bnema/appversion/internal/adapters/store/memory"
	"github.com/bnema/appversion/internal/application"
	"github.com/bnema/appversion/internal/domain"
	"github.com/bnema/appversion/internal/ports"
	"go.uber.org/zap"
)

type app struct {
	resolver *application.Resolver
	renderer func(application.Snapshot, versionstate.RenderOptions) (string, error)
	logger   *zap.Logger
}

func wireApp(ctx context.Context, cfg settings, logger *zap.Logger) (*app, error) {
	store, err := wireStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("wire state store: %w", err)
	}

	source, err := wireBundle(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire bundle metadata: %w", err)
	}

	policy, err := domain.ParseComparisonPolicy(cfg.Compare)
	if err != nil {
		return nil, err
	}

	resolver, err := application.NewResolverChecked(source, store,
		application.WithLegacyKeys(cfg.LegacyKeys),
		application.WithComparison(policy),
		application.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("wire resolver: %w", err)
	}

	return &app{
		resolver: resolver,
		renderer: versionstate.Render,
		logger:   logger,
	}, nil
}

func wireStore(ctx context.Context, cfg settings, logger *zap.Logger) (ports.KeyValueStore, error) {
	if cfg.Ephemeral {
		logger.Debug("using in-memory state store")
		return memory.NewStore(nil), nil
	}

	return filestore.Open(ctx, cfg.StorePath, filestore.WithLogger(logger))
}

// wireBundle orders sources so explicit overrides win over the manifest and
// the manifest wins over link-time build info.
func wireBundle(cfg settings) (ports.BundleMetadata, error) {
	sources := make([]ports.BundleMetadata, 0, 3)
	if cfg.AppVersion != nil || cfg.AppBuild != nil {
		sources = append(sources, bundle.Static{Version: cfg.AppVersion, Build: cfg.AppBuild})
	}

	if cfg.ManifestPath != "" {
		manifest, err := bundle.LoadManifest(cfg.ManifestPath)
		if err != nil {
			return nil, err
		}
		sources = append(sources, manifest)
	}

	sources = append(sources, bundle.NewBuildInfo())
	return bundle.NewChain(sources...)
}
