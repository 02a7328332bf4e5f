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

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage sellable items",
	Long:  "Create, edit, delete, list, and sell the venue's custom items.",
}

var itemAddCmd = &cobra.Command{
	Use:   "add <name> <price>",
	Short: "Add a new item",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Printf("Error: invalid price '%s'\n", args[1])
			return
		}

		item, err := db.CreateItem(args[0], price)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		log.Info("item created", zap.Uint("id", item.ID), zap.String("name", item.Name))
		fmt.Printf("Added item #%d: %s (%s)\n", item.ID, item.Name, currency.Format(item.Price, arabic))
	}),
}

var itemEditCmd = &cobra.Command{
	Use:   "edit <item-id> <name> <price>",
	Short: "Edit an existing item",
	Args:  cobra.ExactArgs(3),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid item ID '%s'\n", args[0])
			return
		}
		price, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			fmt.Printf("Error: invalid price '%s'\n", args[2])
			return
		}

		item, err := db.UpdateItem(uint(id), args[1], price)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Updated item #%d: %s (%s)\n", item.ID, item.Name, currency.Format(item.Price, arabic))
	}),
}

var itemRmCmd = &cobra.Command{
	Use:   "rm <item-id>",
	Short: "Delete an item",
	Long:  "Delete an item. Previously recorded sales of it are kept untouched.",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid item ID '%s'\n", args[0])
			return
		}

		if err := db.DeleteItem(uint(id)); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		log.Info("item deleted", zap.Uint64("id", id))
		fmt.Printf("Deleted item #%d\n", id)
	}),
}

var itemListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List items",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		search, _ := cmd.Flags().GetString("search")

		items, err := db.ListItems(search)
		if err != nil {
			fmt.Printf("Error fetching items: %v\n", err)
			return
		}

		if len(items) == 0 {
			fmt.Println("No items found. Use 'spacevenue item add \"Name\" 25.00' to create one.")
			return
		}

		fmt.Printf("%-4s %-30s %s\n", "ID", "ITEM", "PRICE")
		fmt.Println(strings.Repeat("-", 50))
		for _, item := range items {
			fmt.Printf("%-4d %-30s %s\n", item.ID, truncate(item.Name, 28), currency.Format(item.Price, arabic))
		}
	}),
}

var itemSellCmd = &cobra.Command{
	Use:   "sell <item-id> <quantity>",
	Short: "Record a sale of an item",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid item ID '%s'\n", args[0])
			return
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Printf("Error: invalid quantity '%s'\n", args[1])
			return
		}

		sale, err := db.RecordSale(uint(id), qty)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		log.Info("sale recorded",
			zap.Uint("item_id", sale.ItemID),
			zap.Int("quantity", sale.Quantity),
			zap.Float64("total", sale.Total))
		fmt.Printf("Sale recorded: %d x item #%d = %s\n", sale.Quantity, sale.ItemID, currency.Format(sale.Total, arabic))
	}),
}

func init() {
	itemListCmd.Flags().String("search", "", "Filter items by name substring")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemEditCmd)
	itemCmd.AddCommand(itemRmCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemSellCmd)
}
