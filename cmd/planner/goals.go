package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/internal/application/usecase/goal"
)

func goalsCmd(s *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals"},
		Short:   "Manage saving goals funded from the savings budget",
	}

	cmd.AddCommand(listGoalsCmd(s))
	cmd.AddCommand(addGoalCmd(s))
	cmd.AddCommand(contributeCmd(s))
	cmd.AddCommand(deleteGoalCmd(s))
	return cmd
}

func listGoalsCmd(s *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saving goals and their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				output, err := a.listGoals.Execute(ctx, goal.ListGoalsInput{OwnerID: a.owner})
				if err != nil {
					return err
				}

				if len(output.Goals) == 0 {
					printMuted(out, "No saving goals yet. Use 'planner goal add <name> <target>' to create one.")
					return nil
				}

				rows := make([][]string, 0, len(output.Goals))
				for _, g := range output.Goals {
					months := "-"
					if g.MonthsToTarget != nil {
						months = fmt.Sprint(*g.MonthsToTarget)
					}
					if g.IsCompleted {
						months = "done"
					}
					rows = append(rows, []string{
						g.ID,
						g.Name,
						money(g.SavedAmount) + " / " + money(g.TargetAmount),
						percent(g.ProgressPercent),
						optionalPercent(g.PercentageAllocation),
						money(g.MonthlyContribution),
						months,
					})
				}
				renderTable(out, []string{"ID", "Goal", "Saved", "Progress", "Allocation", "Monthly", "Months left"}, rows)
				fmt.Fprintf(out, "Savings budget %s, %s allocated, %s free\n",
					money(output.SavingsLimit), percent(output.TotalAllocation), percent(output.RemainingAllocation))
				return nil
			})
		},
	}
}

func addGoalCmd(s *cliState) *cobra.Command {
	var (
		allocation  float64
		targetDate  string
		saved       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <target-amount>",
		Short: "Create a saving goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			input := goal.SaveGoalInput{Name: args[0], TargetAmount: target, Description: description}
			if cmd.Flags().Changed("allocation") {
				input.PercentageAllocation = &allocation
			}
			if saved != "" {
				amount, err := parseAmount(saved)
				if err != nil {
					return err
				}
				input.SavedAmount = &amount
			}
			if targetDate != "" {
				date, err := time.ParseInLocation("2006-01-02", targetDate, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid target date %q, expected YYYY-MM-DD", targetDate)
				}
				input.TargetDate = &date
			}

			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				input.OwnerID = a.owner
				output, err := a.saveGoal.Execute(ctx, input)
				if err != nil {
					return err
				}
				printSuccess(out, "Created goal %s (%s), %s per month", output.Goal.Name, output.Goal.ID, money(output.Goal.MonthlyContribution))
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&allocation, "allocation", 0, "share of the savings budget, in percent")
	cmd.Flags().StringVar(&targetDate, "target-date", "", "target date as YYYY-MM-DD")
	cmd.Flags().StringVar(&saved, "saved", "", "amount already saved")
	cmd.Flags().StringVarP(&description, "description", "d", "", "description")
	return cmd
}

func contributeCmd(s *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "contribute <id> <amount>",
		Short: "Add money to a saving goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				output, err := a.contribute.Execute(ctx, goal.ContributeToGoalInput{OwnerID: a.owner, ID: args[0], Amount: amount})
				if err != nil {
					return err
				}
				g := output.Goal
				printSuccess(out, "%s: %s of %s saved (%s)", g.Name, money(g.SavedAmount), money(g.TargetAmount), percent(g.ProgressPercent))
				if g.IsCompleted {
					printSuccess(out, "Goal reached!")
				}
				return nil
			})
		},
	}
}

func deleteGoalCmd(s *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saving goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.deleteGoal.Execute(ctx, goal.DeleteGoalInput{OwnerID: a.owner, ID: args[0]}); err != nil {
					return err
				}
				printSuccess(out, "Deleted goal %s", args[0])
				return nil
			})
		},
	}
}
