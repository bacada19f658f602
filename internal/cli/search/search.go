package search

import "github.com/spf13/cobra"

var SearchCmd = &cobra.Command{
	Use:   "search",
	Short: "News article search commands",
	Long:  "Search news articles and fetch autocomplete suggestions",
}
