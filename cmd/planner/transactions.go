package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/internal/application/usecase/transaction"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

func transactionsCmd(s *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "Log and list transactions",
	}

	cmd.AddCommand(addTransactionCmd(s))
	cmd.AddCommand(listTransactionsCmd(s))
	return cmd
}

func addTransactionCmd(s *cliState) *cobra.Command {
	var (
		date        string
		description string
		receipt     string
	)

	cmd := &cobra.Command{
		Use:   "add <expense|income> <amount> <category>",
		Short: "Log a transaction",
		Long: `Logs an expense or an income. Expenses need a budget for their category in the
month of the transaction.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			txType := entity.TransactionType(args[0])
			if !txType.IsValid() {
				return fmt.Errorf("invalid transaction type %q, expected expense or income", args[0])
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			var when time.Time
			if date != "" {
				when, err = time.ParseInLocation("2006-01-02", date, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
				}
			}

			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				output, err := a.createTx.Execute(ctx, transaction.CreateTransactionInput{
					OwnerID:     a.owner,
					Type:        txType,
					Amount:      amount,
					Category:    args[2],
					Date:        when,
					Description: description,
					ReceiptRef:  receipt,
				})
				if err != nil {
					return err
				}

				tx := output.Transaction
				printSuccess(out, "Logged %s of %s in %s on %s",
					tx.Type, money(tx.Amount), tx.Category, tx.Date.Format("2006-01-02"))
				for _, b := range output.Budgets {
					if b.Category == tx.Category && b.Spent.GreaterThan(b.Limit) {
						printWarning(out, "%s is over budget: %s of %s spent", b.Category, money(b.Spent), money(b.Limit))
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "description")
	cmd.Flags().StringVar(&receipt, "receipt", "", "receipt reference")
	return cmd
}

func listTransactionsCmd(s *cliState) *cobra.Command {
	var (
		month    string
		category string
		txType   string
		search   string
		page     int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := transaction.ListTransactionsInput{
				Month:    month,
				Category: category,
				Search:   search,
				Page:     page,
				Limit:    limit,
			}
			if txType != "" {
				t := entity.TransactionType(txType)
				if !t.IsValid() {
					return fmt.Errorf("invalid transaction type %q, expected expense or income", txType)
				}
				input.Type = &t
			}

			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				input.OwnerID = a.owner
				output, err := a.listTx.Execute(ctx, input)
				if err != nil {
					return err
				}

				if len(output.Transactions) == 0 {
					printMuted(out, "No transactions found.")
					return nil
				}

				rows := make([][]string, 0, len(output.Transactions))
				for _, tx := range output.Transactions {
					rows = append(rows, []string{
						tx.Date.Format("2006-01-02"),
						string(tx.Type),
						money(tx.Amount),
						tx.CategoryLabel,
						tx.Description,
					})
				}
				renderTable(out, []string{"Date", "Type", "Amount", "Category", "Description"}, rows)

				p := output.Pagination
				fmt.Fprintf(out, "Page %d of %d (%d transactions). Income %s, expenses %s, net %s\n",
					p.Page, p.TotalPages, p.Total,
					money(output.Totals.IncomeTotal), money(output.Totals.ExpenseTotal), money(output.Totals.NetTotal))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM")
	cmd.Flags().StringVar(&category, "category", "", "category, including its subcategories")
	cmd.Flags().StringVar(&txType, "type", "", "expense or income")
	cmd.Flags().StringVar(&search, "search", "", "text to look for in descriptions")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "transactions per page")
	return cmd
}
