package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/internal/application/usecase/data"
)

func resetCmd(s *cliState) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all data and restore the default categories",
		Long: `Reset removes the income, every transaction, budget and saving goal and
restores the default category tree. This cannot be undone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if !force {
				fmt.Fprint(out, "This deletes all budget data. Are you sure you want to continue? [y/N]: ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					printMuted(out, "Reset cancelled.")
					return nil
				}
			}

			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.resetData.Execute(ctx, data.ResetDataInput{OwnerID: a.owner}); err != nil {
					return err
				}
				printSuccess(out, "All data reset.")
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
