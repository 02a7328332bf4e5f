package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spacevenue/internal/currency"
	"spacevenue/internal/db"
)

var cashCmd = &cobra.Command{
	Use:   "cash",
	Short: "Cash register deposits and withdrawals",
}

var cashAddCmd = &cobra.Command{
	Use:   "add <deposit|withdrawal> <amount> [notes...]",
	Short: "Record a cash transaction",
	Args:  cobra.MinimumNArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Printf("Error: invalid amount '%s'\n", args[1])
			return
		}
		notes := strings.Join(args[2:], " ")

		tx, err := db.RecordCashTransaction(args[0], amount, notes)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		log.Info("cash transaction recorded",
			zap.String("kind", tx.Kind),
			zap.Float64("amount", tx.Amount))
		fmt.Printf("Recorded %s of %s\n", tx.Kind, currency.Format(tx.Amount, arabic))
	}),
}

var cashListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List cash transactions, newest first",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		search, _ := cmd.Flags().GetString("search")

		rows, err := db.ListCashTransactions(search)
		if err != nil {
			fmt.Printf("Error fetching transactions: %v\n", err)
			return
		}

		if len(rows) == 0 {
			fmt.Println("No cash transactions found.")
			return
		}

		fmt.Printf("%-12s %-14s %-20s %s\n", "TYPE", "AMOUNT", "TIME", "NOTES")
		fmt.Println(strings.Repeat("-", 70))
		for _, tx := range rows {
			fmt.Printf("%-12s %-14s %-20s %s\n", tx.Kind, currency.Format(tx.Amount, arabic), tx.Timestamp, truncate(tx.Notes, 30))
		}
	}),
}

func init() {
	cashListCmd.Flags().String("search", "", "Filter by kind, notes, or timestamp substring")

	cashCmd.AddCommand(cashAddCmd)
	cashCmd.AddCommand(cashListCmd)
}
