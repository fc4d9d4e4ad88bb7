// Package categorytree holds the in-memory two-level expense category tree:
// an ordered list of categories, each with an ordered list of subcategory
// names. The tree is seeded from an embedded bootstrap list and never
// persisted; all mutations are index-addressed.
package categorytree

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed categories.json
var seedJSON []byte

// Node is one category with its subcategories.
type Node struct {
	Category      string   `json:"category"`
	Subcategories []string `json:"subcategories"`
}

// Tree is the in-memory category tree plus the accordion expansion state:
// at most one category is expanded at a time.
type Tree struct {
	nodes    []Node
	expanded int
}

// New creates a tree from the given nodes.
func New(nodes []Node) *Tree {
	return &Tree{
		nodes:    nodes,
		expanded: -1,
	}
}

// NewSeeded creates a tree from the embedded bootstrap list.
func NewSeeded() (*Tree, error) {
	var nodes []Node
	if err := json.Unmarshal(seedJSON, &nodes); err != nil {
		return nil, fmt.Errorf("failed to parse category seed: %w", err)
	}
	return New(nodes), nil
}

// Nodes returns a copy of the tree's nodes.
func (t *Tree) Nodes() []Node {
	nodes := make([]Node, len(t.nodes))
	for i, node := range t.nodes {
		nodes[i] = Node{
			Category:      node.Category,
			Subcategories: append([]string(nil), node.Subcategories...),
		}
	}
	return nodes
}

// Len returns the number of categories.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// AddCategory appends a category with the trimmed name and no
// subcategories. Empty and whitespace-only names are rejected; duplicate
// names are permitted.
func (t *Tree) AddCategory(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}
	t.nodes = append(t.nodes, Node{Category: trimmed})
	return true
}

// AddSubcategory appends a subcategory with the trimmed name to the
// category at the given index. Empty names are rejected.
func (t *Tree) AddSubcategory(category int, name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || !t.validCategory(category) {
		return false
	}
	t.nodes[category].Subcategories = append(t.nodes[category].Subcategories, trimmed)
	return true
}

// RenameCategory replaces the category name at the given index in place.
// Unlike the add path, an empty name still overwrites the current value.
func (t *Tree) RenameCategory(category int, name string) bool {
	if !t.validCategory(category) {
		return false
	}
	t.nodes[category].Category = name
	return true
}

// RenameSubcategory replaces a subcategory name in place. An empty name
// still overwrites the current value.
func (t *Tree) RenameSubcategory(category, sub int, name string) bool {
	if !t.validSubcategory(category, sub) {
		return false
	}
	t.nodes[category].Subcategories[sub] = name
	return true
}

func (t *Tree) removeCategory(category int) bool {
	if !t.validCategory(category) {
		return false
	}
	t.nodes = append(t.nodes[:category], t.nodes[category+1:]...)
	if t.expanded == category {
		t.expanded = -1
	} else if t.expanded > category {
		t.expanded--
	}
	return true
}

func (t *Tree) removeSubcategory(category, sub int) bool {
	if !t.validSubcategory(category, sub) {
		return false
	}
	subs := t.nodes[category].Subcategories
	t.nodes[category].Subcategories = append(subs[:sub], subs[sub+1:]...)
	return true
}

// Toggle expands the category at the given index, collapsing whichever one
// was expanded before; toggling the expanded index collapses it.
func (t *Tree) Toggle(category int) {
	if !t.validCategory(category) {
		return
	}
	if t.expanded == category {
		t.expanded = -1
		return
	}
	t.expanded = category
}

// Expanded returns the index of the expanded category, or -1 when none is.
func (t *Tree) Expanded() int {
	return t.expanded
}

func (t *Tree) validCategory(category int) bool {
	return category >= 0 && category < len(t.nodes)
}

func (t *Tree) validSubcategory(category, sub int) bool {
	return t.validCategory(category) && sub >= 0 && sub < len(t.nodes[category].Subcategories)
}
