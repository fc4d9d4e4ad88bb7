package categorytree

import (
	"errors"
	"fmt"
)

// ErrDialogBusy is returned when a request is opened while another is
// pending; the dialog holds at most one interactive request at a time.
var ErrDialogBusy = errors.New("a dialog request is already pending")

// RequestKind classifies a dialog request.
type RequestKind string

// Dialog request kinds.
const (
	KindAdd     RequestKind = "Add"
	KindEdit    RequestKind = "Edit"
	KindConfirm RequestKind = "Confirm"
)

// Request is one interactive dialog request: a prompt plus the mutation to
// apply when the user resolves it. Confirm requests ignore the value;
// Add/Edit requests use it as the entered name.
type Request struct {
	Kind    RequestKind
	Title   string
	Message string
	// Value is the initial input for Add/Edit requests.
	Value string

	apply func(value string) bool
	done  func()
}

// Confirm resolves the request, applying its mutation with the given input
// value. It reports whether the mutation was applied.
func (r *Request) Confirm(value string) bool {
	defer r.done()
	return r.apply(value)
}

// Cancel resolves the request without applying anything.
func (r *Request) Cancel() {
	r.done()
}

// Editor drives the category tree through a single shared dialog: every
// add, rename, or delete opens one Request, and the mutation only lands
// when that request is confirmed.
type Editor struct {
	tree    *Tree
	pending bool
}

// NewEditor creates an editor over the given tree.
func NewEditor(tree *Tree) *Editor {
	return &Editor{tree: tree}
}

// Tree returns the underlying tree.
func (e *Editor) Tree() *Tree {
	return e.tree
}

func (e *Editor) open(req *Request) (*Request, error) {
	if e.pending {
		return nil, ErrDialogBusy
	}
	e.pending = true
	req.done = func() { e.pending = false }
	return req, nil
}

// AddCategory opens an add request for a new top-level category.
func (e *Editor) AddCategory() (*Request, error) {
	return e.open(&Request{
		Kind:    KindAdd,
		Title:   "Add Category",
		Message: "Enter a name for the new category",
		apply:   e.tree.AddCategory,
	})
}

// AddSubcategory opens an add request for a new subcategory under the
// category at the given index.
func (e *Editor) AddSubcategory(category int) (*Request, error) {
	return e.open(&Request{
		Kind:    KindAdd,
		Title:   "Add Subcategory",
		Message: "Enter a name for the new subcategory",
		apply: func(value string) bool {
			return e.tree.AddSubcategory(category, value)
		},
	})
}

// RenameCategory opens an edit request pre-filled with the current name.
func (e *Editor) RenameCategory(category int) (*Request, error) {
	if !e.tree.validCategory(category) {
		return nil, fmt.Errorf("no category at index %d", category)
	}
	return e.open(&Request{
		Kind:    KindEdit,
		Title:   "Edit Category",
		Message: "Update the category name",
		Value:   e.tree.nodes[category].Category,
		apply: func(value string) bool {
			return e.tree.RenameCategory(category, value)
		},
	})
}

// RenameSubcategory opens an edit request pre-filled with the current name.
func (e *Editor) RenameSubcategory(category, sub int) (*Request, error) {
	if !e.tree.validSubcategory(category, sub) {
		return nil, fmt.Errorf("no subcategory at index %d/%d", category, sub)
	}
	return e.open(&Request{
		Kind:    KindEdit,
		Title:   "Edit Subcategory",
		Message: "Update the subcategory name",
		Value:   e.tree.nodes[category].Subcategories[sub],
		apply: func(value string) bool {
			return e.tree.RenameSubcategory(category, sub, value)
		},
	})
}

// DeleteCategory opens a confirmation request; the category and all its
// subcategories are removed only when it is confirmed.
func (e *Editor) DeleteCategory(category int) (*Request, error) {
	if !e.tree.validCategory(category) {
		return nil, fmt.Errorf("no category at index %d", category)
	}
	return e.open(&Request{
		Kind:  KindConfirm,
		Title: "Delete Category",
		Message: fmt.Sprintf("Delete %q and all its subcategories?",
			e.tree.nodes[category].Category),
		apply: func(string) bool {
			return e.tree.removeCategory(category)
		},
	})
}

// DeleteSubcategory opens a confirmation request; the subcategory is
// removed only when it is confirmed.
func (e *Editor) DeleteSubcategory(category, sub int) (*Request, error) {
	if !e.tree.validSubcategory(category, sub) {
		return nil, fmt.Errorf("no subcategory at index %d/%d", category, sub)
	}
	return e.open(&Request{
		Kind:  KindConfirm,
		Title: "Delete Subcategory",
		Message: fmt.Sprintf("Delete %q?",
			e.tree.nodes[category].Subcategories[sub]),
		apply: func(string) bool {
			return e.tree.removeSubcategory(category, sub)
		},
	})
}
