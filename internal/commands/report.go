package commands

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spacevenue/internal/currency"
	"spacevenue/internal/db"
)

var reportCmd = &cobra.Command{
	Use:   "report [daily|monthly]",
	Short: "Show a revenue report",
	Long: `Show revenue for the current day or month: station session revenue,
item sales, and the cash register net. Defaults to daily.`,
	Args: cobra.MaximumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		period := db.PeriodDaily
		if len(args) == 1 {
			period = db.Period(args[0])
		}

		report, err := db.BuildReport(period)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println(report.Title)
		fmt.Println(strings.Repeat("=", 40))
		fmt.Printf("Session Revenue: %s\n", currency.Format(report.SessionsTotal, arabic))
		fmt.Printf("Item Sales: %s\n", currency.Format(report.SalesTotal, arabic))
		fmt.Printf("Cash Net: %s\n", currency.Format(report.CashNet, arabic))
		fmt.Println(strings.Repeat("=", 40))
		fmt.Printf("Total Revenue: %s\n", currency.Format(report.TotalRevenue(), arabic))

		detail, _ := cmd.Flags().GetBool("detail")
		if !detail {
			return
		}

		sessions, err := db.SessionsForPeriod(period)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(sessions) == 0 {
			fmt.Println("\nNo completed sessions in this period.")
			return
		}

		fmt.Printf("\n%-16s %-20s %-10s %-14s %s\n", "STATION", "START", "DURATION", "COST", "CUSTOMER")
		fmt.Println(strings.Repeat("-", 76))
		for _, s := range sessions {
			fmt.Printf("%-16s %-20s %-10s %-14s %s\n",
				s.StationName,
				s.StartTS,
				currency.FormatClock(s.DurationSeconds),
				currency.Format(s.Cost, arabic),
				s.CustomerName)
		}
	}),
}

func init() {
	reportCmd.Flags().Bool("detail", false, "List each completed session in the period")
}

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the all-time summary as CSV",
	Long:  "Write a CSV with all-time totals for sessions, item sales, and net cash.",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		rows, err := db.ExportSummary()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		file, err := os.Create(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer file.Close()

		writer := csv.NewWriter(file)
		if err := writer.Write([]string{"Section", "Amount (EGP)"}); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		for _, row := range rows {
			if err := writer.Write([]string{row.Section, currency.FormatAmount(row.Amount)}); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		log.Info("summary exported", zap.String("path", args[0]))
		fmt.Printf("Report exported to %s\n", args[0])
	}),
}
