package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raghusami/personal-finance-tracker/internal/client/categorytree"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the expense category tree",
		Long: `Print the bootstrap expense category tree the expense screens offer.
The tree lives only in memory; edits made in a session are not persisted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := categorytree.NewSeeded()
			if err != nil {
				return err
			}
			for _, node := range tree.Nodes() {
				fmt.Println(node.Category)
				for _, sub := range node.Subcategories {
					fmt.Printf("  - %s\n", sub)
				}
			}
			return nil
		},
	}
}
