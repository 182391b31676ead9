// Package hierarchy rebuilds a course's flat topic list into a parent/child
// forest. The forest is a read-time structure: it is recomputed on every call
// and never stored.
package hierarchy

import (
	"sort"

	"app/internal/model"
)

// Node wraps a topic together with its ordered children.
type Node struct {
	model.Topic
	Children []*Node `json:"children"`
}

// Build turns a flat list of topics into a forest. A topic whose ParentID
// resolves within the input set becomes a child of that node; everything else
// (nil parent, unknown parent, cross-course parent) becomes a root. Roots and
// children are sorted by Order ascending; ties keep their input order.
func Build(topics []model.Topic) []*Node {
	nodes := make(map[string]*Node, len(topics))
	for i := range topics {
		nodes[topics[i].ID] = &Node{Topic: topics[i], Children: []*Node{}}
	}

	roots := []*Node{}
	for i := range topics {
		n := nodes[topics[i].ID]
		if pid := topics[i].ParentID; pid != nil {
			if parent, ok := nodes[*pid]; ok && parent != n {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}

	sortForest(roots)
	return roots
}

func sortForest(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Order < nodes[j].Order
	})
	for _, n := range nodes {
		sortForest(n.Children)
	}
}
