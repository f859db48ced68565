package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errNotWired = errors.New("application not wired")

type rootOptions struct {
	configFile string
	verbose    bool
	app        *app
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cfg := viper.New()

	rootCmd := &cobra.Command{
		Use:           "appversion",
		Short:         "Detect fresh installs and updates between launches",
		Long:          "appversion compares the running version and build against the last recorded pair and reports whether this launch is a fresh install, an update, or unchanged.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default $HOME/.appversion/config.toml)")
	flags.String("store", "", "state file path (.toml or .yaml)")
	flags.Bool("ephemeral", false, "keep state in memory only")
	flags.String("manifest", "", "manifest file with short_version and build_number")
	flags.String("app-version", "", "override the current app version")
	flags.String("build-number", "", "override the current build number")
	flags.String("compare", "label", "comparison policy: label or fields")
	flags.Bool("legacy-keys", true, "read the build number from the legacy key when the current key is missing")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if cmd.Annotations[skipWireAnnotation] == "true" {
			return nil
		}

		if err := bindFlags(cfg, cmd); err != nil {
			return err
		}

		loaded, err := loadSettings(cfg, opts.configFile, opts.verbose)
		if err != nil {
			return err
		}

		logger, err := newLogger(cmd.ErrOrStderr(), loaded.LogLevel)
		if err != nil {
			return err
		}

		wired, err := wireApp(cmd.Context(), loaded, logger)
		if err != nil {
			return err
		}

		opts.app = wired
		return nil
	}

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		if opts.app != nil {
			_ = opts.app.logger.Sync()
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newStatusCmd(opts),
		newCheckCmd(opts),
		newResetCmd(opts),
	)

	return rootCmd
}

func (o *rootOptions) wired() (*app, error) {
	if o.app == nil {
		return nil, errNotWired
	}

	return o.app, nil
}
