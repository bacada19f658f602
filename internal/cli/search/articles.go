package search

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"trendhub/pkg/models"
	"trendhub/pkg/utils"
)

var articlesCmd = &cobra.Command{
	Use:   "articles <query>",
	Short: "Search news articles",
	Long:  "Run a full article search against the search API",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("size")

		params := url.Values{}
		params.Set("query", query)
		params.Set("page", fmt.Sprintf("%d", page))
		params.Set("size", fmt.Sprintf("%d", size))

		serverURL := strings.TrimRight(viper.GetString("api.search_url"), "/") +
			"/articles/search?" + params.Encode()

		resp, err := http.Get(serverURL)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("search failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}

		var result models.SearchResultResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("failed to decode results: %w", err)
		}

		if len(result.Items) == 0 {
			fmt.Printf("No results for %q.\n", query)
			return nil
		}

		fmt.Printf("\nFound %d results (page %d):\n\n", result.Total, page)
		for i, item := range result.Items {
			fmt.Printf("%d. %s\n", i+1, item.Title)
			if item.Press != "" {
				fmt.Printf("   %s", item.Press)
				if item.PubDate != "" {
					fmt.Printf(" · %s", utils.FormatPubDate(item.PubDate))
				}
				fmt.Println()
			}
			if item.Link != "" {
				fmt.Printf("   %s\n", item.Link)
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	articlesCmd.Flags().Int("page", 1, "Result page")
	articlesCmd.Flags().Int("size", 10, "Results per page")
	SearchCmd.AddCommand(articlesCmd)
}
