package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scatterbrain-dev/scatterbrain/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the fully resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(cfg)
		}
		fmt.Printf("server:    %s:%d\n", cfg.Server.Host, cfg.Server.Port)
		fmt.Printf("telemetry: enabled=%v\n", cfg.Telemetry.Enabled)
		fmt.Printf("log:       level=%s format=%s\n", cfg.Log.Level, cfg.Log.Format)
		fmt.Printf("cli:       server=%s plan=%d\n", cfg.CLI.Server, cfg.CLI.Plan)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
