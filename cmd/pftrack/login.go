package main

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Log in and print an access token",
		Long: `Authenticate against the API and print the access token. Export it as
PFTRACK_TOKEN (or pass --token) for subsequent commands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("Password: ")
			password, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			c := newAPIClient()
			session, err := c.Login(cmd.Context(), args[0], string(password))
			if err != nil {
				return err
			}

			fmt.Printf("Logged in as %s\n", session.User.Username)
			fmt.Printf("export PFTRACK_TOKEN=%s\n", session.AccessToken)
			return nil
		},
	}
}
