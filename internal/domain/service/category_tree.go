package service

import (
	"sort"
	"strings"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// CategoryTree indexes a category set by id and by parent.
// Traversals keep a visited set, so a corrupted parent chain never loops.
type CategoryTree struct {
	categories []*entity.Category
	byID       map[string]*entity.Category
	children   map[string][]*entity.Category
}

// NewCategoryTree builds a tree over the given categories.
// Categories whose parent is unknown are treated as roots.
func NewCategoryTree(categories []*entity.Category) *CategoryTree {
	t := &CategoryTree{
		categories: categories,
		byID:       make(map[string]*entity.Category, len(categories)),
		children:   make(map[string][]*entity.Category),
	}
	for _, c := range categories {
		t.byID[c.ID] = c
	}
	for _, c := range categories {
		parent := ""
		if c.HasParent() {
			if _, ok := t.byID[*c.ParentID]; ok {
				parent = *c.ParentID
			}
		}
		t.children[parent] = append(t.children[parent], c)
	}
	for key := range t.children {
		sortByLabel(t.children[key])
	}
	return t
}

// Get returns the category with the given id, or nil.
func (t *CategoryTree) Get(id string) *entity.Category {
	return t.byID[id]
}

// Exists reports whether a category with the given id is present.
func (t *CategoryTree) Exists(id string) bool {
	_, ok := t.byID[id]
	return ok
}

// Label resolves a category label, falling back to the raw id.
func (t *CategoryTree) Label(id string) string {
	if c, ok := t.byID[id]; ok && c.Label != "" {
		return c.Label
	}
	return id
}

// Children returns the direct children of parentID sorted by label.
// An empty parentID returns the roots.
func (t *CategoryTree) Children(parentID string) []*entity.Category {
	children := t.children[parentID]
	out := make([]*entity.Category, len(children))
	copy(out, children)
	return out
}

// HasChildren reports whether any category has id as its parent.
func (t *CategoryTree) HasChildren(id string) bool {
	return id != "" && len(t.children[id]) > 0
}

// IsLeaf reports whether the category has no children.
func (t *CategoryTree) IsLeaf(id string) bool {
	return !t.HasChildren(id)
}

// Descendants returns every category below id, breadth first.
func (t *CategoryTree) Descendants(id string) []*entity.Category {
	var out []*entity.Category
	visited := map[string]bool{id: true}
	queue := []string{id}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range t.children[current] {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			out = append(out, child)
			queue = append(queue, child.ID)
		}
	}
	return out
}

// Ancestors returns the parent chain of id, nearest first.
func (t *CategoryTree) Ancestors(id string) []*entity.Category {
	var out []*entity.Category
	visited := map[string]bool{id: true}
	current, ok := t.byID[id]
	for ok && current.HasParent() {
		parentID := *current.ParentID
		if visited[parentID] {
			break
		}
		visited[parentID] = true
		current, ok = t.byID[parentID]
		if ok {
			out = append(out, current)
		}
	}
	return out
}

// WouldCreateCycle reports whether giving id the parent parentID makes id its own ancestor.
func (t *CategoryTree) WouldCreateCycle(id, parentID string) bool {
	if id == "" || parentID == "" {
		return false
	}
	if id == parentID {
		return true
	}
	for _, ancestor := range t.Ancestors(parentID) {
		if ancestor.ID == id {
			return true
		}
	}
	return false
}

// PotentialParents returns every category that excludeID may be moved under:
// all categories except excludeID itself and its descendants, sorted by label.
func (t *CategoryTree) PotentialParents(excludeID string) []*entity.Category {
	excluded := map[string]bool{}
	if excludeID != "" {
		excluded[excludeID] = true
		for _, d := range t.Descendants(excludeID) {
			excluded[d.ID] = true
		}
	}
	out := make([]*entity.Category, 0, len(t.categories))
	for _, c := range t.categories {
		if !excluded[c.ID] {
			out = append(out, c)
		}
	}
	sortByLabel(out)
	return out
}

// SelectableExpenseCategories returns the leaf categories an expense or budget may target.
func (t *CategoryTree) SelectableExpenseCategories() []*entity.Category {
	out := make([]*entity.Category, 0, len(t.categories))
	for _, c := range t.categories {
		if c.ID == entity.IncomeCategoryID || c.IsIncomeSource || t.HasChildren(c.ID) {
			continue
		}
		out = append(out, c)
	}
	sortByLabel(out)
	return out
}

// IncomeSources returns the categories income may be logged against.
func (t *CategoryTree) IncomeSources() []*entity.Category {
	out := make([]*entity.Category, 0)
	for _, c := range t.categories {
		if c.AcceptsIncome() {
			out = append(out, c)
		}
	}
	sortByLabel(out)
	return out
}

func sortByLabel(categories []*entity.Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		a, b := strings.ToLower(categories[i].Label), strings.ToLower(categories[j].Label)
		if a != b {
			return a < b
		}
		return categories[i].ID < categories[j].ID
	})
}
