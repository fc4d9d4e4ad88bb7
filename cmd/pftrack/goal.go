package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/raghusami/personal-finance-tracker/internal/client"
	"github.com/raghusami/personal-finance-tracker/internal/client/listview"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage financial goals",
	}
	cmd.AddCommand(goalListCmd())
	return cmd
}

func goalListCmd() *cobra.Command {
	var (
		search string
		status string
		page   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals with search, status filter, and pagination",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newAPIClient()

			list := listview.New(listview.Config[client.Goal]{
				SearchFields: []listview.Field[client.Goal]{
					func(g client.Goal) string { return g.Name },
					func(g client.Goal) string { return g.Notes },
				},
			})
			list.AddFilter("status", func(g client.Goal) string { return g.Status })

			if err := list.Load(cmd.Context(), c.Goals().List); err != nil {
				return fmt.Errorf("failed to fetch goals: %w", err)
			}
			list.SetSearch(search)
			if status != "" {
				list.SetFilter("status", status)
			}
			list.SetPage(page)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tName\tStatus\tTarget\tCurrent\tTarget Date")
			for _, g := range list.Page() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\t%s\n",
					g.ID, g.Name, g.Status, g.TargetAmount, g.CurrentAmount, g.TargetDate)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("Page %d of %d (%d matching)\n",
				list.CurrentPage(), list.TotalPages(), len(list.Filtered()))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search name and notes")
	cmd.Flags().StringVar(&status, "status", "", "filter by exact status")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}
