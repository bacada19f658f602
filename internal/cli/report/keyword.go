package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"trendhub/internal/api"
	reportdata "trendhub/internal/report"
	"trendhub/pkg/models"
	"trendhub/pkg/utils"
)

var keywordCmd = &cobra.Command{
	Use:   "keyword <text>",
	Short: "Show the full report for one keyword",
	Long:  "Resolve a keyword and display its time series, related keywords, and articles",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		// The detail needs three facet fetches merged with partial-failure
		// tolerance, so this command goes through the loader instead of
		// raw requests.
		client := api.NewClient(api.Config{
			ReportBaseURL: viper.GetString("api.report_url"),
		})
		loader := reportdata.NewLoader(client)

		ctx, cancel := utils.WithTimeout(context.Background())
		defer cancel()

		data, err := loader.BuildFromSearch(ctx, text)
		if err != nil {
			if errors.Is(err, models.ErrKeywordNotFound) {
				fmt.Printf("No keyword found for %q.\n", text)
				return nil
			}
			return fmt.Errorf("report fetch failed: %w", err)
		}

		fmt.Printf("\n%s", data.Keyword)
		if data.Change != 0 {
			fmt.Printf("  (%+d%%)", data.Change)
		}
		fmt.Println()

		if len(data.TimeSeries) > 0 {
			fmt.Printf("\nTime series (%d buckets, oldest first):\n", len(data.TimeSeries))
			for _, point := range data.TimeSeries {
				fmt.Printf("  %s  freq %.0f  score %.1f\n", point.BucketTime, point.FreqSum, point.ScoreSum)
			}
		}

		if len(data.RelatedKeywords) > 0 {
			fmt.Printf("\nRelated keywords: %s\n", strings.Join(data.RelatedKeywords, ", "))
		}

		if len(data.Articles) > 0 {
			fmt.Printf("\nRelated articles:\n")
			for i, article := range data.Articles {
				fmt.Printf("%d. %s", i+1, article.Title)
				if article.Source != "" {
					fmt.Printf(" (%s)", article.Source)
				}
				fmt.Println()
				if article.URL != "" {
					fmt.Printf("   %s\n", article.URL)
				}
			}
		}
		fmt.Println()

		return nil
	},
}

func init() {
	ReportCmd.AddCommand(keywordCmd)
}
