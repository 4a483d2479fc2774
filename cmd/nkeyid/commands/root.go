package commands

import (
	"github.com/spf13/cobra"

	"nkeyid/internal/app"
)

var (
	configPath string
	logLevel   string
	appCtx     *app.App
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nkeyid",
		Short:         "Create, inspect and use checksummed Ed25519 identities",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			cfg.LogOut = cmd.ErrOrStderr()
			appCtx, err = app.New(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.nkeyid/config.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides config)")

	root.AddCommand(
		genCmd(),
		pubCmd(),
		inspectCmd(),
		signCmd(),
		verifyCmd(),
		roundTripCmd(),
		mnemonicCmd(),
		recoverCmd(),
		sealCmd(),
		openCmd(),
	)
	return root
}
