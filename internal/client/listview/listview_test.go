package listview

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type record struct {
	Description string
	Category    string
}

func newTestController(records []record) *Controller[record] {
	c := New(Config[record]{
		SearchFields: []Field[record]{
			func(r record) string { return r.Description },
		},
	})
	c.AddFilter("category", func(r record) string { return r.Category })

	err := c.Load(context.Background(), func(context.Context) ([]record, error) {
		return records, nil
	})
	if err != nil {
		panic(err)
	}
	return c
}

func makeRecords(n int) []record {
	records := make([]record, n)
	for i := range records {
		records[i] = record{
			Description: fmt.Sprintf("expense %d", i),
			Category:    "Food",
		}
	}
	return records
}

func TestController_Pagination(t *testing.T) {
	c := newTestController(makeRecords(12))

	t.Run("12 records make 3 pages of 5, 5, 2", func(t *testing.T) {
		if got := c.TotalPages(); got != 3 {
			t.Fatalf("expected 3 pages, got %d", got)
		}

		sizes := []int{5, 5, 2}
		var reconstructed []record
		for page := 1; page <= 3; page++ {
			c.SetPage(page)
			slice := c.Page()
			if len(slice) != sizes[page-1] {
				t.Errorf("page %d: expected %d records, got %d", page, sizes[page-1], len(slice))
			}
			reconstructed = append(reconstructed, slice...)
		}

		filtered := c.Filtered()
		if len(reconstructed) != len(filtered) {
			t.Fatalf("concatenated pages have %d records, filtered set has %d",
				len(reconstructed), len(filtered))
		}
		for i := range filtered {
			if reconstructed[i] != filtered[i] {
				t.Errorf("record %d differs between pages and filtered set", i)
			}
		}
	})

	t.Run("SetPage clamps out-of-range values", func(t *testing.T) {
		c.SetPage(99)
		if got := c.CurrentPage(); got != 3 {
			t.Errorf("expected clamp to page 3, got %d", got)
		}
		c.SetPage(0)
		if got := c.CurrentPage(); got != 1 {
			t.Errorf("expected clamp to page 1, got %d", got)
		}
	})

	t.Run("empty filtered set still has one page", func(t *testing.T) {
		c.SetSearch("matches nothing")
		if got := c.TotalPages(); got != 1 {
			t.Errorf("expected 1 page for empty set, got %d", got)
		}
		if got := c.Page(); len(got) != 0 {
			t.Errorf("expected empty page, got %d records", len(got))
		}
		c.SetSearch("")
	})
}

func TestController_SearchResetsPage(t *testing.T) {
	records := makeRecords(12)
	records[0].Description = "rare groceries"
	records[7].Description = "rare fuel"
	c := newTestController(records)

	c.SetPage(3)
	if got := c.CurrentPage(); got != 3 {
		t.Fatalf("expected page 3, got %d", got)
	}

	c.SetSearch("rare")
	if got := c.CurrentPage(); got != 1 {
		t.Errorf("expected search to reset to page 1, got %d", got)
	}
	if got := len(c.Filtered()); got != 2 {
		t.Errorf("expected 2 matches, got %d", got)
	}
	if got := c.TotalPages(); got != 1 {
		t.Errorf("expected 1 page, got %d", got)
	}
}

func TestController_Search(t *testing.T) {
	c := newTestController([]record{
		{Description: "Monthly Groceries", Category: "Food"},
		{Description: "fuel refill", Category: "Transport"},
		{Description: "restaurant", Category: "Food"},
	})

	t.Run("match is case-insensitive substring", func(t *testing.T) {
		c.SetSearch("GROCER")
		if got := len(c.Filtered()); got != 1 {
			t.Errorf("expected 1 match, got %d", got)
		}
	})

	t.Run("empty search matches everything", func(t *testing.T) {
		c.SetSearch("")
		if got := len(c.Filtered()); got != 3 {
			t.Errorf("expected 3 records, got %d", got)
		}
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		c.SetSearch("  fuel  ")
		if got := len(c.Filtered()); got != 1 {
			t.Errorf("expected 1 match, got %d", got)
		}
	})
}

func TestController_Filters(t *testing.T) {
	records := []record{
		{Description: "groceries", Category: "Food"},
		{Description: "fuel", Category: "Transport"},
		{Description: "snacks", Category: "Food"},
	}
	c := newTestController(records)

	t.Run("All sentinel disables the dimension", func(t *testing.T) {
		c.SetFilter("category", FilterAll)
		if got := len(c.Filtered()); got != 3 {
			t.Errorf("expected 3 records, got %d", got)
		}
	})

	t.Run("exact match filters the collection", func(t *testing.T) {
		c.SetFilter("category", "Food")
		filtered := c.Filtered()
		if len(filtered) != 2 {
			t.Fatalf("expected 2 records, got %d", len(filtered))
		}
		for _, r := range filtered {
			if r.Category != "Food" {
				t.Errorf("record %q escaped the category filter", r.Description)
			}
		}
	})

	t.Run("filter change resets the page", func(t *testing.T) {
		c.SetFilter("category", FilterAll)
		c.SetPage(1)
		c.SetFilter("category", "Transport")
		if got := c.CurrentPage(); got != 1 {
			t.Errorf("expected page 1, got %d", got)
		}
	})

	t.Run("search is ANDed with filters", func(t *testing.T) {
		c.SetFilter("category", "Food")
		c.SetSearch("fuel")
		if got := len(c.Filtered()); got != 0 {
			t.Errorf("expected 0 records, got %d", got)
		}
		c.SetSearch("")
	})

	t.Run("unknown dimension reads as All", func(t *testing.T) {
		if got := c.Filter("nope"); got != FilterAll {
			t.Errorf("expected %q, got %q", FilterAll, got)
		}
	})
}

func TestController_Load(t *testing.T) {
	t.Run("fetch error keeps the old collection", func(t *testing.T) {
		c := newTestController(makeRecords(3))
		err := c.Load(context.Background(), func(context.Context) ([]record, error) {
			return nil, errors.New("boom")
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if got := len(c.Filtered()); got != 3 {
			t.Errorf("expected old collection to survive, got %d records", got)
		}
	})

	t.Run("loading flag is set during the fetch", func(t *testing.T) {
		c := New(Config[record]{})
		err := c.Load(context.Background(), func(context.Context) ([]record, error) {
			if !c.Loading() {
				t.Error("expected Loading to be true during the fetch")
			}
			return nil, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Loading() {
			t.Error("expected Loading to be false after the fetch")
		}
	})

	t.Run("reload resets the page", func(t *testing.T) {
		c := newTestController(makeRecords(12))
		c.SetPage(3)
		if err := c.Load(context.Background(), func(context.Context) ([]record, error) {
			return makeRecords(12), nil
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := c.CurrentPage(); got != 1 {
			t.Errorf("expected page 1 after reload, got %d", got)
		}
	})
}
