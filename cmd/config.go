package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	filestore "github.com/bnema/appversion/internal/adapters/store/file"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".appversion"
	envPrefix  = "APPVERSION"

	storePathKey      = "store.path"
	storeEphemeralKey = "store.ephemeral"
	manifestPathKey   = "manifest.path"
	compareKey        = "compare"
	legacyKeysKey     = "keys.legacy"
	logLevelKey       = "log.level"
	appVersionKey     = "app.version"
	appBuildKey       = "app.build"

	defaultLogLevel = "warn"
	verboseLogLevel = "debug"
)

type settings struct {
	StorePath    string
	Ephemeral    bool
	ManifestPath string
	Compare      string
	LegacyKeys   bool
	LogLevel     string
	AppVersion   *string
	AppBuild     *string
}

var flagBindings = map[string]string{
	storePathKey:      "store",
	storeEphemeralKey: "ephemeral",
	manifestPathKey:   "manifest",
	compareKey:        "compare",
	legacyKeysKey:     "legacy-keys",
	appVersionKey:     "app-version",
	appBuildKey:       "build-number",
}

func bindFlags(cfg *viper.Viper, cmd *cobra.Command) error {
	for key, flagName := range flagBindings {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			return fmt.Errorf("bind flag %q: not defined", flagName)
		}
		if err := cfg.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %q: %w", flagName, err)
		}
	}

	return nil
}

func loadSettings(cfg *viper.Viper, configFile string, verbose bool) (settings, error) {
	defaultStorePath, err := filestore.DefaultPath()
	if err != nil {
		return settings{}, err
	}

	if configFile != "" {
		cfg.SetConfigFile(configFile)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(filepath.Dir(defaultStorePath))
	}

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(storePathKey, defaultStorePath)
	cfg.SetDefault(compareKey, "label")
	cfg.SetDefault(legacyKeysKey, true)
	cfg.SetDefault(logLevelKey, defaultLogLevel)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		notFound := errors.As(err, &configNotFound) || errors.Is(err, os.ErrNotExist)
		switch {
		case notFound && configFile != "":
			return settings{}, fmt.Errorf("config file %q not found: %w", configFile, err)
		case !notFound:
			return settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := settings{
		StorePath:    cfg.GetString(storePathKey),
		Ephemeral:    cfg.GetBool(storeEphemeralKey),
		ManifestPath: cfg.GetString(manifestPathKey),
		Compare:      cfg.GetString(compareKey),
		LegacyKeys:   cfg.GetBool(legacyKeysKey),
		LogLevel:     cfg.GetString(logLevelKey),
		AppVersion:   optionalString(cfg, appVersionKey),
		AppBuild:     optionalString(cfg, appBuildKey),
	}
	if verbose {
		loaded.LogLevel = verboseLogLevel
	}
	if loaded.StorePath == "" && !loaded.Ephemeral {
		return settings{}, errors.New("store path is empty")
	}

	return loaded, nil
}

func optionalString(cfg *viper.Viper, key string) *string {
	if !cfg.IsSet(key) {
		return nil
	}

	value := cfg.GetString(key)
	return &value
}
