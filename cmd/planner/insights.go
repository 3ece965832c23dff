package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/internal/application/usecase/insight"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

func insightsCmd(s *cliState) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Month reports over transactions and budgets",
	}
	cmd.PersistentFlags().StringVar(&month, "month", "", "month as YYYY-MM (default: current month)")

	cmd.AddCommand(&cobra.Command{
		Use:   "comparison",
		Short: "Compare income and expenses with the previous month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				output, err := a.comparison.Execute(ctx, insight.GetMonthComparisonInput{OwnerID: a.owner, Month: month})
				if err != nil {
					return err
				}

				c := output.Comparison
				renderTable(out, []string{"", c.Previous.DisplayName, c.Current.DisplayName, "Change"}, [][]string{
					{"Income", money(c.Previous.TotalIncome), money(c.Current.TotalIncome), changeText(money(c.IncomeDelta), c.IncomeChangePercent)},
					{"Expenses", money(c.Previous.TotalExpenses), money(c.Current.TotalExpenses), changeText(money(c.ExpensesDelta), c.ExpenseChangePercent)},
					{"Net", money(c.Previous.NetBalance), money(c.Current.NetBalance), ""},
				})
				return nil
			})
		},
	})

	var rollUp bool
	breakdown := &cobra.Command{
		Use:   "breakdown",
		Short: "Expenses per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				output, err := a.breakdown.Execute(ctx, insight.GetCategoryBreakdownInput{OwnerID: a.owner, Month: month, RollUp: rollUp})
				if err != nil {
					return err
				}

				printTitle(out, "Expenses for "+output.DisplayName+": "+money(output.TotalExpenses))
				if len(output.Categories) == 0 {
					printMuted(out, "No expenses this month.")
					return nil
				}
				rows := make([][]string, 0, len(output.Categories))
				for _, item := range output.Categories {
					rows = append(rows, []string{item.CategoryLabel, money(item.Amount), percent(item.Percentage), fmt.Sprint(item.TransactionCount)})
				}
				renderTable(out, []string{"Category", "Amount", "Share", "Transactions"}, rows)
				return nil
			})
		},
	}
	breakdown.Flags().BoolVar(&rollUp, "roll-up", false, "aggregate subcategories into their top-level category")
	cmd.AddCommand(breakdown)

	cmd.AddCommand(&cobra.Command{
		Use:   "budget-vs-actual",
		Short: "Compare each budget with what was spent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				output, err := a.budgetVsActual.Execute(ctx, insight.GetBudgetVsActualInput{OwnerID: a.owner, Month: month})
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(output.Items))
				for _, item := range output.Items {
					rows = append(rows, []string{
						item.CategoryLabel, money(item.Limit), money(item.Spent), money(item.Remaining),
						percent(item.PercentUsed), statusText(item.Status),
					})
				}
				renderTable(out, []string{"Category", "Limit", "Spent", "Remaining", "Used", "Status"}, rows)
				fmt.Fprintf(out, "Total %s of %s spent, %d over budget\n", money(output.TotalSpent), money(output.TotalLimit), output.OverBudget)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "allocation",
		Short: "How much of the income the budgets take",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				output, err := a.allocation.Execute(ctx, insight.GetAllocationSummaryInput{OwnerID: a.owner, Month: month})
				if err != nil {
					return err
				}

				sum := output.Summary
				printTitle(out, "Allocation for "+sum.Month)
				fmt.Fprintf(out, "Income %s, allocated %s (%s), leftover %s\n",
					money(sum.MonthlyIncome), money(sum.TotalAllocated), percent(sum.TotalAllocatedPercentage), money(sum.Leftover))
				if sum.OverAllocated {
					printWarning(out, "Budgets exceed the monthly income")
				}
				if w := output.NeedsWarning; w != nil {
					printWarning(out, "Needs take %s of income, above the recommended %s", percent(w.TotalPercentage), percent(w.Threshold))
				}
				return nil
			})
		},
	})

	return cmd
}

func changeText(delta string, pct *float64) string {
	if pct == nil {
		return delta
	}
	return fmt.Sprintf("%s (%+.1f%%)", delta, *pct)
}

func statusText(status valueobject.BudgetStatus) string {
	switch status {
	case valueobject.BudgetStatusOver:
		return errorStyle.Render("over budget")
	case valueobject.BudgetStatusWarning:
		return warningStyle.Render("warning")
	default:
		return successStyle.Render("on track")
	}
}
