package categorytree

import (
	"errors"
	"testing"
)

func testTree() *Tree {
	return New([]Node{
		{Category: "Food", Subcategories: []string{"Groceries", "Restaurants"}},
		{Category: "Transport", Subcategories: []string{"Fuel"}},
	})
}

func TestNewSeeded(t *testing.T) {
	tree, err := NewSeeded()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Len() == 0 {
		t.Error("expected the seed to contain categories")
	}
	if tree.Expanded() != -1 {
		t.Errorf("expected nothing expanded initially, got %d", tree.Expanded())
	}
}

func TestTree_Add(t *testing.T) {
	tree := testTree()

	t.Run("trims the name", func(t *testing.T) {
		if !tree.AddCategory("  Health  ") {
			t.Fatal("expected add to succeed")
		}
		nodes := tree.Nodes()
		if got := nodes[len(nodes)-1].Category; got != "Health" {
			t.Errorf("expected trimmed name, got %q", got)
		}
	})

	t.Run("rejects empty and whitespace-only names", func(t *testing.T) {
		before := tree.Len()
		if tree.AddCategory("") || tree.AddCategory("   ") {
			t.Error("expected add to be rejected")
		}
		if tree.Len() != before {
			t.Errorf("expected %d categories, got %d", before, tree.Len())
		}
	})

	t.Run("permits duplicate names", func(t *testing.T) {
		before := tree.Len()
		if !tree.AddCategory("Food") {
			t.Fatal("expected duplicate add to succeed")
		}
		if tree.Len() != before+1 {
			t.Errorf("expected %d categories, got %d", before+1, tree.Len())
		}
	})

	t.Run("appends subcategories", func(t *testing.T) {
		if !tree.AddSubcategory(0, " Takeaway ") {
			t.Fatal("expected add to succeed")
		}
		subs := tree.Nodes()[0].Subcategories
		if got := subs[len(subs)-1]; got != "Takeaway" {
			t.Errorf("expected trimmed subcategory, got %q", got)
		}
	})

	t.Run("rejects out-of-range category index", func(t *testing.T) {
		if tree.AddSubcategory(99, "x") {
			t.Error("expected add to fail for a bad index")
		}
	})
}

func TestTree_Rename(t *testing.T) {
	tree := testTree()

	t.Run("replaces in place by index", func(t *testing.T) {
		if !tree.RenameCategory(1, "Travel") {
			t.Fatal("expected rename to succeed")
		}
		if got := tree.Nodes()[1].Category; got != "Travel" {
			t.Errorf("expected Travel, got %q", got)
		}
		if !tree.RenameSubcategory(0, 1, "Dining Out") {
			t.Fatal("expected rename to succeed")
		}
		if got := tree.Nodes()[0].Subcategories[1]; got != "Dining Out" {
			t.Errorf("expected Dining Out, got %q", got)
		}
	})

	t.Run("empty name still overwrites", func(t *testing.T) {
		if !tree.RenameCategory(1, "") {
			t.Fatal("expected rename to succeed")
		}
		if got := tree.Nodes()[1].Category; got != "" {
			t.Errorf("expected empty name, got %q", got)
		}
	})
}

func TestTree_Accordion(t *testing.T) {
	tree := testTree()

	tree.Toggle(0)
	if tree.Expanded() != 0 {
		t.Fatalf("expected category 0 expanded, got %d", tree.Expanded())
	}

	// Expanding another category collapses the first.
	tree.Toggle(1)
	if tree.Expanded() != 1 {
		t.Errorf("expected category 1 expanded, got %d", tree.Expanded())
	}

	// Toggling the expanded category collapses it.
	tree.Toggle(1)
	if tree.Expanded() != -1 {
		t.Errorf("expected nothing expanded, got %d", tree.Expanded())
	}
}

func TestEditor_Confirmation(t *testing.T) {
	t.Run("confirmed delete removes the category and its subcategories", func(t *testing.T) {
		tree := testTree()
		editor := NewEditor(tree)

		req, err := editor.DeleteCategory(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Kind != KindConfirm {
			t.Errorf("expected a Confirm request, got %s", req.Kind)
		}
		if !req.Confirm("") {
			t.Fatal("expected the mutation to apply")
		}
		if tree.Len() != 1 || tree.Nodes()[0].Category != "Transport" {
			t.Errorf("expected only Transport to remain, got %+v", tree.Nodes())
		}
	})

	t.Run("cancelled delete leaves the tree unchanged", func(t *testing.T) {
		tree := testTree()
		editor := NewEditor(tree)

		req, err := editor.DeleteSubcategory(0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req.Cancel()
		if got := len(tree.Nodes()[0].Subcategories); got != 2 {
			t.Errorf("expected 2 subcategories, got %d", got)
		}
	})

	t.Run("only one request may be pending", func(t *testing.T) {
		editor := NewEditor(testTree())

		req, err := editor.AddCategory()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := editor.DeleteCategory(0); !errors.Is(err, ErrDialogBusy) {
			t.Errorf("expected ErrDialogBusy, got %v", err)
		}

		// Resolving frees the dialog for the next request.
		req.Confirm("Health")
		if _, err := editor.DeleteCategory(0); err != nil {
			t.Errorf("expected a fresh request after resolve, got %v", err)
		}
	})

	t.Run("edit request carries the current name", func(t *testing.T) {
		tree := testTree()
		editor := NewEditor(tree)

		req, err := editor.RenameCategory(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Kind != KindEdit || req.Value != "Food" {
			t.Errorf("expected an Edit request pre-filled with Food, got %s %q", req.Kind, req.Value)
		}
		req.Confirm("Dining")
		if got := tree.Nodes()[0].Category; got != "Dining" {
			t.Errorf("expected Dining, got %q", got)
		}
	})

	t.Run("delete of a missing index is an error", func(t *testing.T) {
		editor := NewEditor(testTree())
		if _, err := editor.DeleteCategory(99); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("deleting the expanded category collapses it", func(t *testing.T) {
		tree := testTree()
		tree.Toggle(0)
		editor := NewEditor(tree)
		req, err := editor.DeleteCategory(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req.Confirm("")
		if tree.Expanded() != -1 {
			t.Errorf("expected nothing expanded, got %d", tree.Expanded())
		}
	})
}
