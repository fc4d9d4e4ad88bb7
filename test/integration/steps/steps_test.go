package steps

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/raghusami/personal-finance-tracker/config"
	"github.com/raghusami/personal-finance-tracker/internal/client"
	"github.com/raghusami/personal-finance-tracker/internal/client/notify"
	"github.com/raghusami/personal-finance-tracker/internal/client/recurring"
	"github.com/raghusami/personal-finance-tracker/internal/infra/dependency"
	"github.com/raghusami/personal-finance-tracker/internal/integration/persistence/model"
	"github.com/raghusami/personal-finance-tracker/test/integration/mock"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

var (
	serverInit sync.Once
	server     *httptest.Server
	db         *mock.Db
)

func startServer() {
	serverInit.Do(func() {
		gin.SetMode(gin.TestMode)

		db = mock.NewDb("app", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"email_queue":           &model.EmailQueueModel{},
			"income_records":        &model.IncomeModel{},
			"expenses":              &model.ExpenseModel{},
			"savings":               &model.SavingModel{},
			"saving_payments":       &model.SavingPaymentModel{},
			"investments":           &model.InvestmentModel{},
			"budget_periods":        &model.BudgetPeriodModel{},
			"goals":                 &model.GoalModel{},
		})

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = "integration-test-secret"
		cfg.Email.WorkerEnabled = false

		injector := dependency.NewInjector(cfg, db.DbConn, mock.NewRedis())
		server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})
}

// world holds per-scenario state. Scenarios run sequentially, so a single
// package-level instance is enough.
type world struct {
	api     *client.Client
	session *client.Session
	userIDs map[string]string
	lastErr error

	lastIncome  client.Income
	lastExpense client.Expense
	lastSaving  client.Saving
}

var tc *world

func InitializeScenario(sc *godog.ScenarioContext) {
	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		startServer()
		if err := db.ClearDB(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}
		tc = &world{api: client.New(server.URL), userIDs: make(map[string]string)}
		return ctx, nil
	})

	sc.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, aRegisteredUser)
	sc.Step(`^a different user "([^"]*)" with password "([^"]*)" signs in$`, aDifferentUserSignsIn)
	sc.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, iLogInAs)
	sc.Step(`^I try to log in as "([^"]*)" with password "([^"]*)"$`, iTryToLogInAs)
	sc.Step(`^I receive an access token and a refresh token$`, iReceiveTokens)
	sc.Step(`^the request fails with status (\d+)$`, theRequestFailsWithStatus)

	sc.Step(`^fetching my profile returns username "([^"]*)"$`, fetchingMyProfileReturnsUsername)
	sc.Step(`^I update my preferred currency to "([^"]*)" with an income goal of ([0-9.]+)$`, iUpdateMyProfile)
	sc.Step(`^fetching my profile returns preferred currency "([^"]*)" and income goal ([0-9.]+)$`, fetchingMyProfileReturnsCurrencyAndGoal)
	sc.Step(`^fetching the profile of "([^"]*)" fails with status (\d+)$`, fetchingTheProfileOfFailsWithStatus)

	sc.Step(`^I create an income of ([0-9.]+) from "([^"]*)" dated "([^"]*)"$`, iCreateAnIncome)
	sc.Step(`^listing incomes returns (\d+) records?$`, listingIncomesReturns)
	sc.Step(`^the incomes are ordered from newest to oldest$`, incomesOrderedNewestFirst)
	sc.Step(`^I change the income source to "([^"]*)"$`, iChangeTheIncomeSource)
	sc.Step(`^fetching the income by id returns source "([^"]*)"$`, fetchingIncomeReturnsSource)

	sc.Step(`^I create an expense of ([0-9.]+) in category "([^"]*)" dated "([^"]*)"$`, iCreateAnExpense)
	sc.Step(`^fetching the expense by id returns amount ([0-9.]+)$`, fetchingExpenseReturnsAmount)
	sc.Step(`^I change the expense amount to ([0-9.]+)$`, iChangeTheExpenseAmount)
	sc.Step(`^I delete the expense$`, iDeleteTheExpense)
	sc.Step(`^listing expenses returns (\d+) records?$`, listingExpensesReturns)
	sc.Step(`^fetching the expense by id fails with status (\d+)$`, fetchingExpenseFailsWithStatus)
	sc.Step(`^deleting the expense again fails with status (\d+)$`, deletingExpenseAgainFailsWithStatus)

	sc.Step(`^I create a "([^"]*)" saving of ([0-9.]+) dated "([^"]*)" for (\d+) months?$`, iCreateASaving)
	sc.Step(`^I generate the scheduled payments$`, iGenerateTheScheduledPayments)
	sc.Step(`^listing saving payments returns (\d+) records?$`, listingSavingPaymentsReturns)
	sc.Step(`^the payment dates are "([^"]*)", "([^"]*)" and "([^"]*)"$`, thePaymentDatesAre)
	sc.Step(`^every payment has status "([^"]*)" and method "([^"]*)"$`, everyPaymentHas)
	sc.Step(`^I delete the saving together with its payments$`, iDeleteTheSavingCascade)
	sc.Step(`^listing savings returns (\d+) records?$`, listingSavingsReturns)
}

// usernameFor derives a unique username from the email local part.
func usernameFor(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func register(email, password string) (*client.Session, error) {
	return tc.api.Register(context.Background(), client.RegisterInput{
		Firstname: "Test",
		Lastname:  "User",
		Email:     email,
		Username:  usernameFor(email),
		Password:  password,
	})
}

func aRegisteredUser(email, password string) error {
	session, err := register(email, password)
	if err != nil {
		return err
	}
	tc.session = session
	tc.userIDs[email] = session.User.ID
	return nil
}

func aDifferentUserSignsIn(email, password string) error {
	return aRegisteredUser(email, password)
}

func iLogInAs(email, password string) error {
	session, err := tc.api.Login(context.Background(), email, password)
	if err != nil {
		return err
	}
	tc.session = session
	return nil
}

func iTryToLogInAs(email, password string) error {
	_, tc.lastErr = tc.api.Login(context.Background(), email, password)
	return nil
}

func iReceiveTokens() error {
	if tc.session == nil {
		return fmt.Errorf("no session established")
	}
	if tc.session.AccessToken == "" {
		return fmt.Errorf("access token is empty")
	}
	if tc.session.RefreshToken == "" {
		return fmt.Errorf("refresh token is empty")
	}
	return nil
}

func theRequestFailsWithStatus(status int) error {
	return failsWithStatus(tc.lastErr, status)
}

func failsWithStatus(err error, status int) error {
	if err == nil {
		return fmt.Errorf("expected a failure with status %d, request succeeded", status)
	}
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("expected an API error, got %v", err)
	}
	if apiErr.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (%s)", status, apiErr.StatusCode, apiErr.Message)
	}
	return nil
}

func fetchingMyProfileReturnsUsername(username string) error {
	user, err := tc.api.Users().Get(context.Background(), tc.session.User.ID)
	if err != nil {
		return err
	}
	if user.Username != username {
		return fmt.Errorf("expected username %q, got %q", username, user.Username)
	}
	return nil
}

func iUpdateMyProfile(currency string, incomeGoal float64) error {
	updated, err := tc.api.Users().Update(context.Background(), tc.session.User.ID, client.UserUpdate{
		Firstname:         tc.session.User.Firstname,
		Lastname:          tc.session.User.Lastname,
		MobileNumber:      tc.session.User.MobileNumber,
		PreferredCurrency: currency,
		IncomeGoal:        &incomeGoal,
	})
	if err != nil {
		return err
	}
	if updated.PreferredCurrency != currency {
		return fmt.Errorf("expected currency %q in the update response, got %q", currency, updated.PreferredCurrency)
	}
	return nil
}

func fetchingMyProfileReturnsCurrencyAndGoal(currency string, incomeGoal float64) error {
	user, err := tc.api.Users().Get(context.Background(), tc.session.User.ID)
	if err != nil {
		return err
	}
	if user.PreferredCurrency != currency {
		return fmt.Errorf("expected currency %q, got %q", currency, user.PreferredCurrency)
	}
	if user.IncomeGoal == nil || *user.IncomeGoal != incomeGoal {
		return fmt.Errorf("expected income goal %v, got %v", incomeGoal, user.IncomeGoal)
	}
	return nil
}

func fetchingTheProfileOfFailsWithStatus(email string, status int) error {
	id, ok := tc.userIDs[email]
	if !ok {
		return fmt.Errorf("no registered user for %q", email)
	}
	_, err := tc.api.Users().Get(context.Background(), id)
	return failsWithStatus(err, status)
}

func iCreateAnIncome(amount float64, source, date string) error {
	created, err := tc.api.Incomes().Create(context.Background(), client.Income{
		IncomeDate:   date,
		IncomeSource: source,
		IncomeType:   "Salary",
		Amount:       amount,
		Currency:     "INR",
	})
	if err != nil {
		return err
	}
	if created.ID == "" {
		return fmt.Errorf("created income has no id")
	}
	tc.lastIncome = created
	return nil
}

func listingIncomesReturns(count int) error {
	incomes, err := tc.api.Incomes().List(context.Background())
	if err != nil {
		return err
	}
	if len(incomes) != count {
		return fmt.Errorf("expected %d incomes, got %d", count, len(incomes))
	}
	return nil
}

func incomesOrderedNewestFirst() error {
	incomes, err := tc.api.Incomes().List(context.Background())
	if err != nil {
		return err
	}
	for i := 1; i < len(incomes); i++ {
		if incomes[i-1].IncomeDate < incomes[i].IncomeDate {
			return fmt.Errorf("incomes out of order: %s before %s", incomes[i-1].IncomeDate, incomes[i].IncomeDate)
		}
	}
	return nil
}

func iChangeTheIncomeSource(source string) error {
	updated := tc.lastIncome
	updated.IncomeSource = source
	result, err := tc.api.Incomes().Update(context.Background(), tc.lastIncome.ID, updated)
	if err != nil {
		return err
	}
	tc.lastIncome = result
	return nil
}

func fetchingIncomeReturnsSource(source string) error {
	income, err := tc.api.Incomes().Get(context.Background(), tc.lastIncome.ID)
	if err != nil {
		return err
	}
	if income.IncomeSource != source {
		return fmt.Errorf("expected source %q, got %q", source, income.IncomeSource)
	}
	return nil
}

func iCreateAnExpense(amount float64, category, date string) error {
	created, err := tc.api.Expenses().Create(context.Background(), client.Expense{
		Date:        date,
		Category:    category,
		Description: "integration test expense",
		Amount:      amount,
		Currency:    "INR",
	})
	if err != nil {
		return err
	}
	if created.ID == "" {
		return fmt.Errorf("created expense has no id")
	}
	tc.lastExpense = created
	return nil
}

func fetchingExpenseReturnsAmount(amount float64) error {
	expense, err := tc.api.Expenses().Get(context.Background(), tc.lastExpense.ID)
	if err != nil {
		return err
	}
	if expense.Amount != amount {
		return fmt.Errorf("expected amount %v, got %v", amount, expense.Amount)
	}
	return nil
}

func iChangeTheExpenseAmount(amount float64) error {
	updated := tc.lastExpense
	updated.Amount = amount
	result, err := tc.api.Expenses().Update(context.Background(), tc.lastExpense.ID, updated)
	if err != nil {
		return err
	}
	tc.lastExpense = result
	return nil
}

func iDeleteTheExpense() error {
	return tc.api.Expenses().Delete(context.Background(), tc.lastExpense.ID)
}

func listingExpensesReturns(count int) error {
	expenses, err := tc.api.Expenses().List(context.Background())
	if err != nil {
		return err
	}
	if len(expenses) != count {
		return fmt.Errorf("expected %d expenses, got %d", count, len(expenses))
	}
	return nil
}

func fetchingExpenseFailsWithStatus(status int) error {
	_, err := tc.api.Expenses().Get(context.Background(), tc.lastExpense.ID)
	return failsWithStatus(err, status)
}

func deletingExpenseAgainFailsWithStatus(status int) error {
	err := tc.api.Expenses().Delete(context.Background(), tc.lastExpense.ID)
	return failsWithStatus(err, status)
}

func iCreateASaving(savingType string, amount float64, date string, months int) error {
	created, err := tc.api.Savings().Create(context.Background(), client.Saving{
		Date:           date,
		Title:          "Emergency fund",
		Amount:         amount,
		Currency:       "INR",
		SavingType:     savingType,
		Category:       "Deposit",
		Account:        "Main account",
		NumberOfMonths: months,
	})
	if err != nil {
		return err
	}
	if created.ID == "" {
		return fmt.Errorf("created saving has no id")
	}
	tc.lastSaving = created
	return nil
}

func iGenerateTheScheduledPayments() error {
	gen := recurring.NewGenerator(tc.api.SavingPayments(), notify.Discard())
	result, err := gen.Run(context.Background(), tc.lastSaving)
	if err != nil {
		return err
	}
	if result.Created != result.Requested {
		return fmt.Errorf("generated %d of %d payments", result.Created, result.Requested)
	}
	return nil
}

func listingSavingPaymentsReturns(count int) error {
	payments, err := tc.api.SavingPayments().List(context.Background())
	if err != nil {
		return err
	}
	if len(payments) != count {
		return fmt.Errorf("expected %d saving payments, got %d", count, len(payments))
	}
	return nil
}

func thePaymentDatesAre(first, second, third string) error {
	payments, err := tc.api.SavingPayments().List(context.Background())
	if err != nil {
		return err
	}
	want := map[string]bool{first: false, second: false, third: false}
	if len(payments) != len(want) {
		return fmt.Errorf("expected %d payments, got %d", len(want), len(payments))
	}
	for _, p := range payments {
		seen, ok := want[p.Date]
		if !ok {
			return fmt.Errorf("unexpected payment date %q", p.Date)
		}
		if seen {
			return fmt.Errorf("duplicate payment date %q", p.Date)
		}
		want[p.Date] = true
	}
	return nil
}

func everyPaymentHas(status, method string) error {
	payments, err := tc.api.SavingPayments().List(context.Background())
	if err != nil {
		return err
	}
	if len(payments) == 0 {
		return fmt.Errorf("no saving payments found")
	}
	for _, p := range payments {
		if p.Status != status {
			return fmt.Errorf("payment %s has status %q, want %q", p.ID, p.Status, status)
		}
		if p.PaymentMethod != method {
			return fmt.Errorf("payment %s has method %q, want %q", p.ID, p.PaymentMethod, method)
		}
	}
	return nil
}

func iDeleteTheSavingCascade() error {
	return tc.api.DeleteSavingCascade(context.Background(), tc.lastSaving.ID)
}

func listingSavingsReturns(count int) error {
	savings, err := tc.api.Savings().List(context.Background())
	if err != nil {
		return err
	}
	if len(savings) != count {
		return fmt.Errorf("expected %d savings, got %d", count, len(savings))
	}
	return nil
}
