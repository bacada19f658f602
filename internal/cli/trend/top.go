package trend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"trendhub/internal/core"
	"trendhub/pkg/models"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the current trending keywords",
	Long:  "Fetch and display the live keyword ranking from the trend API",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		serverURL := strings.TrimRight(viper.GetString("api.trend_url"), "/") + "/trend/top"

		req, err := http.NewRequest(http.MethodGet, serverURL, nil)
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}
		if key := viper.GetString("api.key"); key != "" {
			req.Header.Set("X-API-Key", key)
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return fmt.Errorf("trend fetch failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("trend fetch failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}

		var records []models.RankingRecord
		if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
			return fmt.Errorf("failed to decode ranking: %w", err)
		}

		items := core.Reconcile(records, models.CategoryAll)
		if len(items) == 0 {
			fmt.Println("No trending keywords right now.")
			return nil
		}

		fmt.Printf("\nTrending keywords:\n\n")
		for i, item := range items {
			if limit > 0 && i >= limit {
				break
			}
			arrow := "→"
			switch item.Status {
			case models.StatusUp:
				arrow = "↑"
			case models.StatusDown:
				arrow = "↓"
			}
			fmt.Printf("%2d. %s %s (%.1f)\n", item.Rank, item.Keyword, arrow, item.Score)
			if len(item.Articles) > 0 {
				fmt.Printf("    %s\n", item.Articles[0].Title)
			}
		}
		fmt.Println()

		return nil
	},
}

func init() {
	topCmd.Flags().Int("limit", 10, "Number of keywords to show")
	TrendCmd.AddCommand(topCmd)
}
