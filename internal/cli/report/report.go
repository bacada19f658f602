package report

import "github.com/spf13/cobra"

var ReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Data report commands",
	Long:  "View keyword frequency rankings and per-keyword reports",
}
