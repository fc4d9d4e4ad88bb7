// Package main is the pftrack CLI: a terminal client for the Personal
// Finance Tracker API built on the same list/form controllers the web
// client used.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/raghusami/personal-finance-tracker/internal/client"
	"github.com/raghusami/personal-finance-tracker/internal/client/notify"
)

var (
	baseURL string
	token   string

	rootCmd = &cobra.Command{
		Use:   "pftrack",
		Short: "Personal finance tracker CLI",
		Long: `pftrack is a terminal client for the Personal Finance Tracker API:
record income, expenses, savings, and investments, browse them with
search, filters, and pagination, and generate recurring saving payments.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (default: $PFTRACK_BASE_URL or http://localhost:5000)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "access token (default: $PFTRACK_TOKEN)")

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(incomeCmd())
	rootCmd.AddCommand(expenseCmd())
	rootCmd.AddCommand(savingCmd())
	rootCmd.AddCommand(goalCmd())
	rootCmd.AddCommand(categoriesCmd())
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newAPIClient builds the API client from flags and environment.
func newAPIClient() *client.Client {
	url := baseURL
	if url == "" {
		url = os.Getenv("PFTRACK_BASE_URL")
	}
	if url == "" {
		url = "http://localhost:5000"
	}
	c := client.New(url)

	t := token
	if t == "" {
		t = os.Getenv("PFTRACK_TOKEN")
	}
	if t != "" {
		c.SetToken(t)
	}
	return c
}

// sink returns the CLI notification sink.
func sink() notify.Sink {
	return notify.SlogSink{}
}

// confirm asks a yes/no question on the terminal and reports the answer.
// Anything but "y"/"yes" counts as no.
func confirm(title, message string) bool {
	fmt.Printf("%s\n%s [y/N]: ", title, message)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
