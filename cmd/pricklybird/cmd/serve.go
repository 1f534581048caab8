package cmd

import (
	"github.com/pricklybird/pricklybird/pkg/api"
	"github.com/pricklybird/pricklybird/pkg/config"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the encode/decode REST API server",
	Long: `Start the pricklybird REST API server.

Settings come from the config file (see 'pricklybird init'); flags override
it. An empty API key disables authentication.

Examples:
  pricklybird serve --port=8080
  pricklybird serve --config=./pricklybird.yaml --api-key=mysecretkey`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		cfg := config.DefaultConfig()
		if config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				cmd.Printf("Error loading config: %v\n", err)
				return
			}
			cfg = loaded
		}

		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			cfg.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("api-key") {
			cfg.Security.APIKey, _ = cmd.Flags().GetString("api-key")
		}
		if cfg.Security.APIKey == "auto" {
			cmd.Println("Error: config still holds the 'auto' placeholder; run 'pricklybird init' or pass --api-key")
			return
		}

		serverConfig := api.ServerConfig{
			Port:   cfg.Port,
			Bind:   cfg.Bind,
			APIKey: cfg.Security.APIKey,
		}

		if err := api.StartServer(serverConfig); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key protecting /api/v1 (empty disables auth)")
	serveCmd.Flags().String("config", "", "Path to the config file")
}
