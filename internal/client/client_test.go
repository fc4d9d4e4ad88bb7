package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_IncomeEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Errorf("expected bearer token, got %q", got)
		}

		switch r.URL.Path {
		case "/api/v1/IncomeRecords/IncomeGetAll":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"responseData": []map[string]any{
					{"id": "inc-1", "incomeSource": "Salary", "amount": 5000.0},
					{"id": "inc-2", "incomeSource": "Dividends", "amount": 120.5},
				},
			})
		case "/api/v1/IncomeRecords/IncomeCreate":
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			var body Income
			_ = json.NewDecoder(r.Body).Decode(&body)
			body.ID = "inc-3"
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"responseData": body})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("token-1")

	t.Run("list unwraps responseData", func(t *testing.T) {
		incomes, err := c.Incomes().List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(incomes) != 2 {
			t.Fatalf("expected 2 records, got %d", len(incomes))
		}
		if incomes[0].ID != "inc-1" || incomes[0].IncomeSource != "Salary" {
			t.Errorf("unexpected first record: %+v", incomes[0])
		}
	})

	t.Run("create unwraps the single-record envelope", func(t *testing.T) {
		created, err := c.Incomes().Create(context.Background(), Income{
			IncomeDate:   "2025-06-01",
			IncomeSource: "Salary",
			Amount:       5000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "inc-3" {
			t.Errorf("expected the server-assigned id, got %q", created.ID)
		}
	})
}

func TestClient_PlainResources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/v1/expenses" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode([]Expense{
				{ID: "exp-1", Category: "Food", Amount: 42},
			})
		case r.URL.Path == "/api/v1/expenses/exp-1" && r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "Expense not found",
				"code":  "REC-010001",
			})
		}
	}))
	defer server.Close()

	c := New(server.URL)

	t.Run("list decodes a bare array", func(t *testing.T) {
		expenses, err := c.Expenses().List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenses) != 1 || expenses[0].ID != "exp-1" {
			t.Errorf("unexpected result: %+v", expenses)
		}
	})

	t.Run("delete accepts 204", func(t *testing.T) {
		if err := c.Expenses().Delete(context.Background(), "exp-1"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("error bodies decode into APIError", func(t *testing.T) {
		_, err := c.Expenses().Get(context.Background(), "missing")
		if err == nil {
			t.Fatal("expected an error")
		}
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected an *APIError, got %T", err)
		}
		if apiErr.StatusCode != http.StatusNotFound || apiErr.Code != "REC-010001" {
			t.Errorf("unexpected error: %+v", apiErr)
		}
	})
}

func TestClient_DeleteSavingCascade(t *testing.T) {
	t.Run("payments are deleted before the saving", func(t *testing.T) {
		var deleted []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/api/v1/saving-payments" && r.Method == http.MethodGet:
				_ = json.NewEncoder(w).Encode([]SavingPayment{
					{ID: "pay-1", SavingID: "sav-1"},
					{ID: "pay-2", SavingID: "other"},
					{ID: "pay-3", SavingID: "sav-1"},
				})
			case r.Method == http.MethodDelete:
				deleted = append(deleted, r.URL.Path)
				w.WriteHeader(http.StatusNoContent)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		c := New(server.URL)
		if err := c.DeleteSavingCascade(context.Background(), "sav-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{
			"/api/v1/saving-payments/pay-1",
			"/api/v1/saving-payments/pay-3",
			"/api/v1/savings/sav-1",
		}
		if len(deleted) != len(want) {
			t.Fatalf("expected %d deletes, got %v", len(want), deleted)
		}
		for i := range want {
			if deleted[i] != want[i] {
				t.Errorf("delete %d: expected %s, got %s", i, want[i], deleted[i])
			}
		}
	})

	t.Run("a failed payment delete stops before the saving", func(t *testing.T) {
		var deleted []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/api/v1/saving-payments" && r.Method == http.MethodGet:
				_ = json.NewEncoder(w).Encode([]SavingPayment{
					{ID: "pay-1", SavingID: "sav-1"},
					{ID: "pay-2", SavingID: "sav-1"},
				})
			case r.URL.Path == "/api/v1/saving-payments/pay-1":
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
			case r.Method == http.MethodDelete:
				deleted = append(deleted, r.URL.Path)
				w.WriteHeader(http.StatusNoContent)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		c := New(server.URL)
		if err := c.DeleteSavingCascade(context.Background(), "sav-1"); err == nil {
			t.Fatal("expected an error")
		}
		for _, path := range deleted {
			if path == "/api/v1/savings/sav-1" {
				t.Error("the saving must not be deleted after a payment delete failure")
			}
		}
	})
}

func TestClient_UserProfile(t *testing.T) {
	var updateBody UserUpdate
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Errorf("expected bearer token, got %q", got)
		}
		if r.URL.Path != "/api/v1/users/usr-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(User{
				ID:                "usr-1",
				Firstname:         "Meera",
				Username:          "meera",
				PreferredCurrency: "INR",
			})
		case http.MethodPut:
			_ = json.NewDecoder(r.Body).Decode(&updateBody)
			goal := 50000.0
			_ = json.NewEncoder(w).Encode(User{
				ID:                "usr-1",
				Firstname:         updateBody.Firstname,
				Username:          "meera",
				PreferredCurrency: updateBody.PreferredCurrency,
				IncomeGoal:        &goal,
			})
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("token-1")

	t.Run("get returns the profile", func(t *testing.T) {
		user, err := c.Users().Get(context.Background(), "usr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "meera" || user.PreferredCurrency != "INR" {
			t.Errorf("unexpected profile: %+v", user)
		}
	})

	t.Run("update sends the profile fields and returns the result", func(t *testing.T) {
		goal := 50000.0
		user, err := c.Users().Update(context.Background(), "usr-1", UserUpdate{
			Firstname:         "Meera",
			PreferredCurrency: "EUR",
			IncomeGoal:        &goal,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updateBody.PreferredCurrency != "EUR" {
			t.Errorf("expected currency EUR on the wire, got %q", updateBody.PreferredCurrency)
		}
		if user.IncomeGoal == nil || *user.IncomeGoal != goal {
			t.Errorf("unexpected income goal: %+v", user.IncomeGoal)
		}
	})
}

func TestClient_RepeatedDelete(t *testing.T) {
	deletes := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/expenses/exp-1" || r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		deletes++
		if deletes == 1 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "Expense not found",
			"code":  "REC-010001",
		})
	}))
	defer server.Close()

	c := New(server.URL)

	if err := c.Expenses().Delete(context.Background(), "exp-1"); err != nil {
		t.Fatalf("first delete: unexpected error: %v", err)
	}

	err := c.Expenses().Delete(context.Background(), "exp-1")
	if err == nil {
		t.Fatal("second delete: expected an error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("second delete: expected an *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", apiErr.StatusCode)
	}
}
