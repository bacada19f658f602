package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"trendhub/internal/api"
	"trendhub/pkg/utils"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Show autocomplete suggestions",
	Long:  "Fetch the autocomplete suggestions the search box would show for a query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		// Suggestion payloads come in several shapes; reuse the client's
		// normalization instead of decoding by hand.
		client := api.NewClient(api.Config{
			SearchBaseURL: viper.GetString("api.search_url"),
		})

		ctx, cancel := utils.WithTimeout(context.Background())
		defer cancel()

		suggestions := client.SearchSuggestions(ctx, query)
		if len(suggestions) == 0 {
			fmt.Printf("No suggestions for %q.\n", query)
			return nil
		}

		fmt.Printf("\nSuggestions for %q:\n\n", query)
		for i, s := range suggestions {
			if s.Count != nil {
				fmt.Printf("%d. %s (%.0f)\n", i+1, s.Keyword, *s.Count)
			} else {
				fmt.Printf("%d. %s\n", i+1, s.Keyword)
			}
		}
		fmt.Println()

		return nil
	},
}

func init() {
	SearchCmd.AddCommand(suggestCmd)
}
