package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

func (a *app) configCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the vecmath configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Long: `Write the configuration currently in effect (defaults, the existing file and
any --format, --kind, --database or --verbose overrides) to the --config path.`,
		Example: `  vecmath config init --kind int64 --format simplified`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(a.cfgFile); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", a.cfgFile)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}
			if err := a.cfg.Save(a.cfgFile); err != nil {
				return err
			}
			a.log.Info("config written", "path", a.cfgFile)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.cfgFile)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(initCmd)
	return configCmd
}
