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

func incomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Manage income records",
	}
	cmd.AddCommand(incomeListCmd())
	cmd.AddCommand(incomeCreateCmd())
	cmd.AddCommand(incomeDeleteCmd())
	return cmd
}

func incomeListCmd() *cobra.Command {
	var (
		search string
		source string
		page   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List income records with search, source filter, and pagination",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newAPIClient()

			list := listview.New(listview.Config[client.Income]{
				SearchFields: []listview.Field[client.Income]{
					func(i client.Income) string { return i.IncomeSource },
					func(i client.Income) string { return i.Notes },
				},
			})
			list.AddFilter("source", func(i client.Income) string { return i.IncomeSource })

			if err := list.Load(cmd.Context(), c.Incomes().List); err != nil {
				return fmt.Errorf("failed to fetch income records: %w", err)
			}
			list.SetSearch(search)
			if source != "" {
				list.SetFilter("source", source)
			}
			list.SetPage(page)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDate\tSource\tType\tAmount")
			for _, record := range list.Page() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f %s\n",
					record.ID, record.IncomeDate, record.IncomeSource,
					record.IncomeType, record.Amount, record.Currency)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("Page %d of %d (%d matching)\n",
				list.CurrentPage(), list.TotalPages(), len(list.Filtered()))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search source and notes")
	cmd.Flags().StringVar(&source, "source", "", "filter by exact income source")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func incomeCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an income record from a JSON draft file",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newAPIClient()
			form := formview.New[client.Income]("Income", schema.Income{}, c.Incomes(), sink())

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
				return fmt.Errorf("income record not created")
			}
			fmt.Printf("Created income record %s\n", saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file with the income draft")
	return cmd
}

func incomeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an income record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("Delete Income", "Are you sure you want to delete this income record?") {
				fmt.Println("Cancelled")
				return nil
			}
			c := newAPIClient()
			if err := c.Incomes().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Income record deleted")
			return nil
		},
	}
}
