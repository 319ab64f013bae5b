package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"winget-installer/internal/app"
	"winget-installer/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:           "winget-installer",
		Short:         app.AppName,
		Long:          app.AppDescription,
		Version:       app.AppVersion,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(v)
		},
	}

	if err := config.RegisterFlags(cmd, v); err != nil {
		// flag names are fixed; binding only fails on a nil flag set
		panic(err)
	}
	return cmd
}

func run(v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	log, err := cfg.Logger()
	if err != nil {
		return err
	}

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("main", err, nil)
		return fmt.Errorf("application initialization failed: %w", err)
	}

	return application.Run()
}
