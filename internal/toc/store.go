package toc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Tree is the persisted TOC document: the forest plus run metadata.
type Tree struct {
	Source      string         `json:"source" yaml:"source"`
	GeneratedAt string         `json:"generated_at" yaml:"generated_at"`
	EntryCount  int            `json:"entry_count" yaml:"entry_count"`
	LevelCounts map[string]int `json:"level_counts" yaml:"level_counts"`
	TOCPages    []int          `json:"toc_pages,omitempty" yaml:"toc_pages,omitempty"`
	Roots       []*Node        `json:"toc_tree" yaml:"toc_tree"`
}

// NewTree assembles the persisted document from a built forest.
func NewTree(source string, tocPages []int, roots []*Node) Tree {
	levels := make(map[string]int)
	for level, n := range LevelCounts(roots) {
		levels[strconv.Itoa(level)] = n
	}
	return Tree{
		Source:      source,
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		EntryCount:  NodeCount(roots),
		LevelCounts: levels,
		TOCPages:    tocPages,
		Roots:       roots,
	}
}

// Save writes the tree as indented JSON. The write is all or nothing.
func (t Tree) Save(path string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode toc tree: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create toc tree directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write toc tree: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write toc tree: %w", err)
	}
	return nil
}

// Load reads a tree previously written by Save.
func Load(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tree{}, fmt.Errorf("failed to read toc tree: %w", err)
	}
	var t Tree
	if err := json.Unmarshal(data, &t); err != nil {
		return Tree{}, fmt.Errorf("failed to parse toc tree: %w", err)
	}
	return t, nil
}
