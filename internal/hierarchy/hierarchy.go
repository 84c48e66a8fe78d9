// Package hierarchy turns flat parent-linked rows into an ordered forest.
package hierarchy

import (
	"github.com/alexivanou/cityportal-api/internal/apperror"
)

// Node is one item and its children, in input order.
type Node[T any] struct {
	Item     T          `json:"item"`
	Children []*Node[T] `json:"children"`
}

// Build groups items by parent in a single pass and links them into a
// forest. Roots are items whose parent is nil. Items whose parent is not
// present in items are dropped together with their subtrees.
// Sibling order follows input order, so callers pass rows already sorted.
// A cycle among present items yields apperror.ErrCyclicHierarchy.
func Build[T any](items []T, id func(T) int64, parent func(T) *int64) ([]*Node[T], error) {
	nodes := make(map[int64]*Node[T], len(items))
	order := make([]int64, 0, len(items))
	for _, it := range items {
		key := id(it)
		if _, dup := nodes[key]; dup {
			continue
		}
		nodes[key] = &Node[T]{Item: it, Children: []*Node[T]{}}
		order = append(order, key)
	}

	parentOf := make(map[int64]int64, len(items))
	roots := make([]*Node[T], 0)
	for _, key := range order {
		n := nodes[key]
		p := parent(n.Item)
		if p == nil {
			roots = append(roots, n)
			continue
		}
		pn, ok := nodes[*p]
		if !ok {
			continue
		}
		parentOf[key] = *p
		pn.Children = append(pn.Children, n)
	}

	if err := checkCycles(order, parentOf); err != nil {
		return nil, err
	}
	return roots, nil
}

// checkCycles walks each parent chain once; nodes proven acyclic are
// remembered so the walk stays linear overall.
func checkCycles(order []int64, parentOf map[int64]int64) error {
	const (
		unvisited = iota
		onPath
		done
	)
	state := make(map[int64]int, len(order))
	for _, start := range order {
		var path []int64
		cur := start
	walk:
		for {
			switch state[cur] {
			case onPath:
				return apperror.CyclicHierarchy("item %d is its own ancestor", cur)
			case done:
				break walk
			}
			state[cur] = onPath
			path = append(path, cur)
			p, ok := parentOf[cur]
			if !ok {
				break
			}
			cur = p
		}
		for _, k := range path {
			state[k] = done
		}
	}
	return nil
}

// Walk visits nodes depth-first, parents before children.
func Walk[T any](roots []*Node[T], fn func(n *Node[T], depth int)) {
	var visit func(ns []*Node[T], depth int)
	visit = func(ns []*Node[T], depth int) {
		for _, n := range ns {
			fn(n, depth)
			visit(n.Children, depth+1)
		}
	}
	visit(roots, 0)
}

// Map converts every item of a forest, keeping its shape.
func Map[T, U any](roots []*Node[T], fn func(T) U) []*Node[U] {
	out := make([]*Node[U], 0, len(roots))
	for _, n := range roots {
		out = append(out, &Node[U]{Item: fn(n.Item), Children: Map(n.Children, fn)})
	}
	return out
}
