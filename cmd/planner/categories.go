package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/internal/application/usecase/category"
)

func categoriesCmd(s *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories"},
		Short:   "Manage the category tree",
	}

	cmd.AddCommand(listCategoriesCmd(s))
	cmd.AddCommand(addCategoryCmd(s))
	cmd.AddCommand(renameCategoryCmd(s))
	cmd.AddCommand(deleteCategoryCmd(s))
	return cmd
}

func listCategoriesCmd(s *cliState) *cobra.Command {
	var selectable, incomeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the category tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				output, err := a.listCategories.Execute(ctx, category.ListCategoriesInput{
					OwnerID:        a.owner,
					SelectableOnly: selectable,
					IncomeOnly:     incomeOnly,
				})
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(output.Categories))
				for _, c := range output.Categories {
					var flags []string
					if c.IsIncomeSource {
						flags = append(flags, "income")
					}
					if !c.IsDeletable {
						flags = append(flags, "locked")
					}
					rows = append(rows, []string{
						c.ID,
						strings.Repeat("  ", c.Depth) + c.Label,
						strings.Join(flags, ", "),
					})
				}
				renderTable(out, []string{"ID", "Category", "Flags"}, rows)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&selectable, "selectable", false, "only categories expenses and budgets may target")
	cmd.Flags().BoolVar(&incomeOnly, "income", false, "only categories income may be logged against")
	cmd.MarkFlagsMutuallyExclusive("selectable", "income")
	return cmd
}

func addCategoryCmd(s *cliState) *cobra.Command {
	var (
		parent string
		icon   string
		income bool
	)

	cmd := &cobra.Command{
		Use:   "add <label>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				input := category.SaveCategoryInput{
					OwnerID:        a.owner,
					Label:          args[0],
					Icon:           icon,
					IsIncomeSource: income,
				}
				if parent != "" {
					input.ParentID = &parent
				}

				output, err := a.saveCategory.Execute(ctx, input)
				if err != nil {
					return err
				}
				printSuccess(out, "Created category %s (%s)", output.Category.Label, output.Category.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "parent category id")
	cmd.Flags().StringVar(&icon, "icon", "", "icon name")
	cmd.Flags().BoolVar(&income, "income", false, "mark as an income source")
	return cmd
}

func renameCategoryCmd(s *cliState) *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:   "rename <id> <label>",
		Short: "Rename or move a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				// Updates replace every field, so start from the current values
				input := category.SaveCategoryInput{OwnerID: a.owner, ID: args[0], Label: args[1]}
				list, err := a.listCategories.Execute(ctx, category.ListCategoriesInput{OwnerID: a.owner})
				if err != nil {
					return err
				}
				for _, c := range list.Categories {
					if c.ID == args[0] {
						input.ParentID = c.ParentID
						input.IsIncomeSource = c.IsIncomeSource
						input.Icon = string(c.Icon)
					}
				}
				if cmd.Flags().Changed("parent") {
					input.ParentID = &parent
				}

				output, err := a.saveCategory.Execute(ctx, input)
				if err != nil {
					return err
				}
				printSuccess(out, "Updated category %s", output.Category.Label)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "new parent category id, empty for the root")
	return cmd
}

func deleteCategoryCmd(s *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category without subcategories, budgets or transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return s.withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.deleteCategory.Execute(ctx, category.DeleteCategoryInput{OwnerID: a.owner, ID: args[0]}); err != nil {
					return err
				}
				printSuccess(out, "Deleted category %s", args[0])
				return nil
			})
		},
	}
}
