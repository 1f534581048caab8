/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/pricklybird/pricklybird/pkg/config"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a server config file with a generated API key",
	Long: `Create a pricklybird server configuration file with a freshly
generated API key.

Examples:
  pricklybird init
  pricklybird init --config=./pricklybird.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		force, _ := cmd.Flags().GetBool("force")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(configPath) && !force {
			cmd.Printf("Config already exists at %s (use --force to overwrite)\n", configPath)
			return
		}

		cfg, err := config.BootstrapConfig(configPath)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		cmd.Printf("Config written to %s\n", configPath)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("config", "", "Path to the config file")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
