package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display current trendhub CLI configuration and backend endpoints",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Trendhub Configuration:")
		fmt.Println("")
		fmt.Printf("Backends:\n")
		fmt.Printf("  Trend API:  %s\n", viper.GetString("api.trend_url"))
		fmt.Printf("  Search API: %s\n", viper.GetString("api.search_url"))
		fmt.Printf("  Report API: %s\n", viper.GetString("api.report_url"))
		fmt.Println("")

		key := viper.GetString("api.key")
		if key != "" {
			if len(key) > 8 {
				fmt.Printf("API Key: %s...\n", key[:8])
			} else {
				fmt.Printf("API Key: %s\n", key)
			}
		} else {
			fmt.Printf("API Key: not set (trend calls go out unauthenticated)\n")
		}

		fmt.Printf("Environment: %s\n", viper.GetString("environment"))
	},
}

func init() {
	ConfigCmd.AddCommand(showCmd)
}
