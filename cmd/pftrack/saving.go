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
	"github.com/raghusami/personal-finance-tracker/internal/client/recurring"
	"github.com/raghusami/personal-finance-tracker/internal/client/schema"
)

func savingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saving",
		Short: "Manage savings and their monthly payments",
	}
	cmd.AddCommand(savingListCmd())
	cmd.AddCommand(savingCreateCmd())
	cmd.AddCommand(savingDeleteCmd())
	cmd.AddCommand(savingGeneratePaymentsCmd())
	return cmd
}

func savingListCmd() *cobra.Command {
	var (
		search     string
		savingType string
		page       int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List savings with search, type filter, and pagination",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newAPIClient()

			list := listview.New(listview.Config[client.Saving]{
				SearchFields: []listview.Field[client.Saving]{
					func(s client.Saving) string { return s.Title },
					func(s client.Saving) string { return s.GoalName },
					func(s client.Saving) string { return s.Category },
				},
			})
			list.AddFilter("savingType", func(s client.Saving) string { return s.SavingType })

			if err := list.Load(cmd.Context(), c.Savings().List); err != nil {
				return fmt.Errorf("failed to fetch savings: %w", err)
			}
			list.SetSearch(search)
			if savingType != "" {
				list.SetFilter("savingType", savingType)
			}
			list.SetPage(page)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDate\tTitle\tType\tMonths\tAmount")
			for _, s := range list.Page() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.2f %s\n",
					s.ID, s.Date, s.Title, s.SavingType, s.NumberOfMonths, s.Amount, s.Currency)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("Page %d of %d (%d matching)\n",
				list.CurrentPage(), list.TotalPages(), len(list.Filtered()))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search title, goal name, and category")
	cmd.Flags().StringVar(&savingType, "type", "", "filter by saving type (Recurring or One-time)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func savingCreateCmd() *cobra.Command {
	var (
		file             string
		generatePayments bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a saving from a JSON draft file",
		Long: `Create a saving from a JSON draft file. With --generate-payments, a
Recurring saving's monthly payments are created right after the saving,
one per month starting at the saving's date.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newAPIClient()
			form := formview.New[client.Saving]("Saving", schema.Saving{}, c.Savings(), sink())

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
				return fmt.Errorf("saving not created")
			}
			fmt.Printf("Created saving %s\n", saved.ID)

			if generatePayments && saved.SavingType == client.SavingTypeRecurring {
				generator := recurring.NewGenerator(c.SavingPayments(), sink())
				result, err := generator.Run(cmd.Context(), saved)
				if err != nil {
					return fmt.Errorf("created %d of %d payments: %w",
						result.Created, result.Requested, err)
				}
				fmt.Printf("Generated %d payments\n", result.Created)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file with the saving draft")
	cmd.Flags().BoolVar(&generatePayments, "generate-payments", false, "generate monthly payments for a Recurring saving")
	return cmd
}

func savingDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saving and all its payments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("Delete Saving", "Delete this saving and all its payments?") {
				fmt.Println("Cancelled")
				return nil
			}
			c := newAPIClient()
			if err := c.DeleteSavingCascade(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Saving and its payments deleted")
			return nil
		},
	}
}

func savingGeneratePaymentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-payments <id>",
		Short: "Generate the monthly payments for a Recurring saving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newAPIClient()
			saving, err := c.Savings().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if saving.SavingType != client.SavingTypeRecurring {
				return fmt.Errorf("saving %s is not Recurring", saving.ID)
			}

			generator := recurring.NewGenerator(c.SavingPayments(), sink())
			result, err := generator.Run(cmd.Context(), saving)
			if err != nil {
				return fmt.Errorf("created %d of %d payments: %w",
					result.Created, result.Requested, err)
			}
			fmt.Printf("Generated %d payments\n", result.Created)
			return nil
		},
	}
}
