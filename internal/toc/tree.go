package toc

import (
	"fmt"
	"strings"
)

// Node is a TOC entry with its nested children.
type Node struct {
	Entry
	Children []*Node `json:"children" yaml:"children"`
}

// BuildTree folds a flat entry list into a hierarchy. Chapters are level 0
// roots; every other entry attaches to the most recent entry shallower than
// itself, or becomes a root when none exists.
func BuildTree(entries []Entry) []*Node {
	var roots []*Node
	var stack []*Node

	for _, e := range entries {
		node := &Node{Entry: e, Children: []*Node{}}

		if e.Kind == KindChapter {
			roots = append(roots, node)
			stack = stack[:0]
			stack = append(stack, node)
			continue
		}

		for len(stack) > 0 && stack[len(stack)-1].Level >= node.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
		stack = append(stack, node)
	}

	return roots
}

// NodeCount returns the total number of nodes in the forest.
func NodeCount(roots []*Node) int {
	n := 0
	for _, root := range roots {
		n += 1 + NodeCount(root.Children)
	}
	return n
}

// LevelCounts returns the number of nodes at each level of the forest.
func LevelCounts(roots []*Node) map[int]int {
	counts := make(map[int]int)
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, node := range nodes {
			counts[node.Level]++
			walk(node.Children)
		}
	}
	walk(roots)
	return counts
}

// Markdown renders the forest as a nested outline with page references.
func Markdown(roots []*Node) string {
	var b strings.Builder
	b.WriteString("# 목차\n\n")
	var walk func(nodes []*Node, depth int)
	walk = func(nodes []*Node, depth int) {
		for _, node := range nodes {
			b.WriteString(strings.Repeat("  ", depth))
			b.WriteString("- ")
			if node.Number != "" {
				b.WriteString(node.Number)
				b.WriteString(" ")
			}
			b.WriteString(node.Title)
			if node.Page > 0 {
				fmt.Fprintf(&b, " (%d)", node.Page)
			}
			b.WriteString("\n")
			walk(node.Children, depth+1)
		}
	}
	walk(roots, 0)
	return b.String()
}
