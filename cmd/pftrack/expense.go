package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/raghusami/personal-finance-tracker/internal/client"
	"github.com/raghusami/personal-finance-tracker/internal/client/formview"
	"github.com/raghusami/personal-finance-tracker/internal/client/listview"
	"github.com/raghusami/personal-finance-tracker/internal/client/schema"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Manage expenses",
	}
	cmd.AddCommand(expenseListCmd())
	cmd.AddCommand(expenseCreateCmd())
	cmd.AddCommand(expenseDeleteCmd())
	return cmd
}

func expenseListCmd() *cobra.Command {
	var (
		search   string
		category string
		page     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses with search, category filter, and pagination",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newAPIClient()

			list := listview.New(listview.Config[client.Expense]{
				SearchFields: []listview.Field[client.Expense]{
					func(e client.Expense) string { return e.Description },
					func(e client.Expense) string { return e.Subcategory },
				},
			})
			list.AddFilter("category", func(e client.Expense) string { return e.Category })

			if err := list.Load(cmd.Context(), c.Expenses().List); err != nil {
				return fmt.Errorf("failed to fetch expenses: %w", err)
			}
			list.SetSearch(search)
			if category != "" {
				list.SetFilter("category", category)
			}
			list.SetPage(page)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDate\tCategory\tSubcategory\tDescription\tAmount")
			for _, e := range list.Page() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f %s\n",
					e.ID, e.Date, e.Category, e.Subcategory, e.Description, e.Amount, e.Currency)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("Page %d of %d (%d matching)\n",
				list.CurrentPage(), list.TotalPages(), len(list.Filtered()))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search description and subcategory")
	cmd.Flags().StringVar(&category, "category", "", "filter by exact category")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func expenseCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an expense from a JSON draft file",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newAPIClient()
			form := formview.New[client.Expense]("Expense", schema.Expense{}, c.Expenses(), sink())

			draft := form.Draft()
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read draft: %w", err)
				}
				if err := json.Unmarshal(data, &draft); err != nil {
					return fmt.Errorf("failed to parse draft: %w", err)
				}
			}
			form.SetDraft(draft)

			saved, ok := form.Submit(cmd.Context())
			if !ok {
				for field, message := range form.Errors() {
					fmt.Fprintf(os.Stderr, "%s: %s\n", field, message)
				}
				return fmt.Errorf("expense not created")
			}
			fmt.Printf("Created expense %s\n", saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file with the expense draft")
	return cmd
}

func expenseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("Delete Expense", "Are you sure you want to delete this expense?") {
				fmt.Println("Cancelled")
				return nil
			}
			c := newAPIClient()
			if err := c.Expenses().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Expense deleted")
			return nil
		},
	}
}
