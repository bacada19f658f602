package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cliconfig "trendhub/internal/cli/config"
	"trendhub/internal/cli/report"
	"trendhub/internal/cli/search"
	"trendhub/internal/cli/trend"
)

var rootCmd = &cobra.Command{
	Use:   "trendhub",
	Short: "Trendhub command line client",
	Long:  "Query trending keywords, search news articles, and read data reports from the terminal",
}

func initConfig() {
	viper.SetConfigName(".trendhub")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetDefault("environment", "development")
	viper.SetDefault("api.trend_url", "http://localhost:8080/api")
	viper.SetDefault("api.search_url", "http://localhost:8081/api")
	viper.SetDefault("api.report_url", "http://localhost:8082/api")
	viper.SetDefault("api.key", "")

	viper.SetEnvPrefix("TRENDHUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; defaults and env cover it.
	_ = viper.ReadInConfig()
}

func main() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(trend.TrendCmd)
	rootCmd.AddCommand(search.SearchCmd)
	rootCmd.AddCommand(report.ReportCmd)
	rootCmd.AddCommand(cliconfig.ConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
