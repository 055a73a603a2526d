package domain

import (
	"log/slog"

	m "github.com/mouse-blink/mutmap/internal/model"
)

// IndexOption configures a ConditionIndex.
type IndexOption func(*indexConfig)

type indexConfig struct {
	includeTernary bool
}

// WithTernaryBlocks controls whether TernaryExpression blocks are indexed.
func WithTernaryBlocks(include bool) IndexOption {
	return func(c *indexConfig) {
		c.includeTernary = include
	}
}

// ConditionIndex maps a (class, line) key to the condition blocks found at
// that position, in the order they were encountered. It is immutable after
// construction and safe for concurrent reads.
type ConditionIndex struct {
	blocks map[m.BlockKey][]m.ConditionBlock
	size   int
}

// NewConditionIndex groups blocks by key. Blocks without a class, a positive
// line or a node kind are skipped.
func NewConditionIndex(blocks []m.ConditionBlock, opts ...IndexOption) *ConditionIndex {
	cfg := indexConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	index := &ConditionIndex{blocks: make(map[m.BlockKey][]m.ConditionBlock)}

	for _, block := range blocks {
		if block.ClassName == "" || block.Line <= 0 || block.Kind == "" {
			slog.Debug("Skipping incomplete condition block", "class", block.ClassName, "line", block.Line, "kind", block.Kind)
			continue
		}

		if block.Kind == m.NodeTernary && !cfg.includeTernary {
			continue
		}

		key := block.Key()
		index.blocks[key] = append(index.blocks[key], block)
		index.size++
	}

	return index
}

// Lookup returns a copy of the blocks stored at key, or nil.
func (i *ConditionIndex) Lookup(key m.BlockKey) []m.ConditionBlock {
	if i == nil {
		return nil
	}

	blocks, ok := i.blocks[key]
	if !ok {
		return nil
	}

	out := make([]m.ConditionBlock, len(blocks))
	copy(out, blocks)

	return out
}

// Len returns the number of indexed blocks.
func (i *ConditionIndex) Len() int {
	if i == nil {
		return 0
	}

	return i.size
}

// Keys returns the number of distinct (class, line) keys.
func (i *ConditionIndex) Keys() int {
	if i == nil {
		return 0
	}

	return len(i.blocks)
}
