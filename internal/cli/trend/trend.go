package trend

import "github.com/spf13/cobra"

var TrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Trending keyword commands",
	Long:  "View the live trending keyword ranking",
}
