package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/internal/application/usecase/budget"
)

func incomeCmd(s *cliState) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "income [amount]",
		Short: "Show or set the monthly income",
		Long: `Without an argument, prints the monthly income. With an amount, replaces it,
logs it as an income transaction and recomputes percentage budgets and savings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				if len(args) == 0 {
					list, err := a.listBudgets.Execute(ctx, budget.ListBudgetsInput{OwnerID: a.owner})
					if err != nil {
						return err
					}
					if list.MonthlyIncome == nil {
						printMuted(out, "No monthly income set. Use 'planner income <amount>' to set one.")
						return nil
					}
					fmt.Fprintf(out, "Monthly income: %s\n", money(*list.MonthlyIncome))
					return nil
				}

				amount, err := parseAmount(args[0])
				if err != nil {
					return err
				}
				output, err := a.setIncome.Execute(ctx, budget.SetMonthlyIncomeInput{
					OwnerID:        a.owner,
					Amount:         amount,
					SourceCategory: source,
				})
				if err != nil {
					return err
				}
				printSuccess(out, "Monthly income set to %s", money(output.MonthlyIncome))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "income category the amount is logged under")
	return cmd
}

func budgetCmd(s *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "budget",
		Aliases: []string{"budgets"},
		Short:   "List and set monthly budgets",
	}

	cmd.AddCommand(listBudgetsCmd(s))
	cmd.AddCommand(setBudgetCmd(s))
	return cmd
}

func listBudgetsCmd(s *cliState) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the budgets of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				list, err := a.listBudgets.Execute(ctx, budget.ListBudgetsInput{OwnerID: a.owner, Month: month})
				if err != nil {
					return err
				}

				printTitle(out, "Budgets for "+list.Month)
				if len(list.Budgets) == 0 {
					printMuted(out, "No budgets yet. Use 'planner budget set <category>' to create one.")
					return nil
				}

				rows := make([][]string, 0, len(list.Budgets))
				for _, b := range list.Budgets {
					rows = append(rows, []string{
						b.CategoryLabel,
						money(b.Limit),
						optionalPercent(b.DisplayPercentage),
						money(b.Spent),
						money(b.Remaining),
					})
				}
				renderTable(out, []string{"Category", "Limit", "Share", "Spent", "Remaining"}, rows)

				if list.MonthlyIncome != nil {
					fmt.Fprintf(out, "Income %s, allocated %s, leftover %s\n",
						money(*list.MonthlyIncome), money(list.TotalAllocated), money(list.Leftover))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default: current month)")
	return cmd
}

func setBudgetCmd(s *cliState) *cobra.Command {
	var (
		limit string
		pct   float64
		month string
	)

	cmd := &cobra.Command{
		Use:   "set <category>",
		Short: "Create or replace the budget of a category",
		Long: `Sets a fixed limit with --limit or a share of the monthly income with --percent.
A budget for the same category and month is replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hasPct := cmd.Flags().Changed("percent")
			if (limit == "") == !hasPct {
				return fmt.Errorf("exactly one of --limit or --percent is required")
			}

			input := budget.SaveBudgetInput{Category: args[0], Month: month}
			if hasPct {
				input.Percentage = &pct
			} else {
				amount, err := parseAmount(limit)
				if err != nil {
					return err
				}
				input.Limit = &amount
			}

			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				input.OwnerID = a.owner
				output, err := a.saveBudget.Execute(ctx, input)
				if err != nil {
					return err
				}

				verb := "Created"
				if output.Replaced {
					verb = "Replaced"
				}
				printSuccess(out, "%s budget for %s: %s", verb, output.Budget.Category, money(output.Budget.Limit))
				if w := output.NeedsWarning; w != nil {
					printWarning(out, "Needs take %s of income, above the recommended %s (%s)",
						percent(w.TotalPercentage), percent(w.Threshold), strings.Join(w.Categories, ", "))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&limit, "limit", "", "fixed monthly limit")
	cmd.Flags().Float64Var(&pct, "percent", 0, "share of the monthly income")
	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default: current month)")
	return cmd
}

func recalcCmd(s *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "recalc",
		Short: "Recompute spent amounts, percentage limits and savings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				output, err := a.recalculate.Execute(ctx, budget.RecalculateBudgetsInput{OwnerID: a.owner})
				if err != nil {
					return err
				}
				if output.Changed {
					printSuccess(out, "Budgets recalculated")
				} else {
					printMuted(out, "Budgets already up to date")
				}
				return nil
			})
		},
	}
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", value)
	}
	return amount, nil
}
