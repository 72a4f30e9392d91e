package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dydiddl/ASCR/internal/cliout"
	"github.com/Dydiddl/ASCR/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ascr configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the home directory and a commented default config",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := getHome()
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}
		if h.ConfigExists() {
			return fmt.Errorf("config already exists: %s", h.ConfigPath())
		}
		if err := config.WriteDefault(h.ConfigPath()); err != nil {
			return err
		}
		printf("설정 생성: %s\n", h.ConfigPath())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		return cliout.Output(cfg)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save, keeping a timestamped backup",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := getHome()
		if err != nil {
			return err
		}
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		if err := cm.Set(args[0], args[1]); err != nil {
			return err
		}

		path := cfgFile
		if path == "" {
			path = h.ConfigPath()
		}
		if err := cm.Save(path); err != nil {
			return err
		}
		printf("%s = %s → %s\n", args[0], args[1], path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd, configSetCmd)
}
