package report

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"trendhub/pkg/models"
)

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Show the data-report keyword ranking",
	Long:  "Fetch and display the keyword frequency ranking from the report API",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		serverURL := strings.TrimRight(viper.GetString("api.report_url"), "/") + "/data-report/ranking"

		resp, err := http.Get(serverURL)
		if err != nil {
			return fmt.Errorf("ranking fetch failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("ranking fetch failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}

		var rankings []models.ReportRanking
		if err := json.NewDecoder(resp.Body).Decode(&rankings); err != nil {
			return fmt.Errorf("failed to decode ranking: %w", err)
		}

		if len(rankings) == 0 {
			fmt.Println("No ranked keywords right now.")
			return nil
		}

		fmt.Printf("\nTop keywords:\n\n")
		for i, row := range rankings {
			if limit > 0 && i >= limit {
				break
			}
			freq, _ := row.FreqSum.Float64()
			fmt.Printf("%2d. %s (freq %.0f, score %.1f)\n", i+1, row.NormalizedText, freq, row.ScoreSum)
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rankingCmd.Flags().Int("limit", 10, "Number of keywords to show")
	ReportCmd.AddCommand(rankingCmd)
}
