package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/mutmap/internal/model"
)

// NearbyWindow is the largest line distance searched when no block shares a
// mutation's exact line.
const NearbyWindow = 2

var (
	// ErrNilIndex is returned when Map is called without an index.
	ErrNilIndex = errors.New("condition index is nil")
	// ErrUnknownTieBreak is returned for an unrecognised tie-break policy.
	ErrUnknownTieBreak = errors.New("unknown tie-break policy")
)

// TieBreak selects which block an exact key with several blocks resolves to.
type TieBreak string

const (
	// TieBreakFirst picks the first block in encounter order.
	TieBreakFirst TieBreak = "first"
	// TieBreakInnermost picks the last block in encounter order, which for a
	// pre-order walk is the most deeply nested one on that line.
	TieBreakInnermost TieBreak = "innermost"
)

// ParseTieBreak validates a tie-break policy name. The empty string selects
// TieBreakFirst.
func ParseTieBreak(value string) (TieBreak, error) {
	switch TieBreak(strings.ToLower(strings.TrimSpace(value))) {
	case TieBreakFirst, "":
		return TieBreakFirst, nil
	case TieBreakInnermost:
		return TieBreakInnermost, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownTieBreak, value)
}

// MapOptions tunes a mapping run.
type MapOptions struct {
	TieBreak TieBreak
	Parallel int
}

// Mapper correlates mutation records with condition blocks.
type Mapper interface {
	// Map resolves every mutation against index and returns one annotated
	// row per input record, in input order.
	Map(ctx context.Context, mutations []m.MutationRecord, index *ConditionIndex, opts MapOptions) ([]m.AnnotatedMutation, error)
	// Resolve resolves a single mutation.
	Resolve(record m.MutationRecord, index *ConditionIndex, tieBreak TieBreak) m.AnnotatedMutation
}

type mapper struct{}

// NewMapper constructs a Mapper.
func NewMapper() Mapper {
	return &mapper{}
}

func (mp *mapper) Map(ctx context.Context, mutations []m.MutationRecord, index *ConditionIndex, opts MapOptions) ([]m.AnnotatedMutation, error) {
	if index == nil {
		return nil, ErrNilIndex
	}

	tieBreak, err := ParseTieBreak(string(opts.TieBreak))
	if err != nil {
		return nil, err
	}

	results := make([]m.AnnotatedMutation, len(mutations))

	parallel := opts.Parallel
	if parallel <= 1 || len(mutations) < 2 {
		for i, record := range mutations {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			results[i] = mp.Resolve(record, index, tieBreak)
		}

		return results, nil
	}

	chunk := (len(mutations) + parallel - 1) / parallel

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for start := 0; start < len(mutations); start += chunk {
		end := min(start+chunk, len(mutations))

		group.Go(func() error {
			for i := start; i < end; i++ {
				if err := groupCtx.Err(); err != nil {
					return err
				}

				results[i] = mp.Resolve(mutations[i], index, tieBreak)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (mp *mapper) Resolve(record m.MutationRecord, index *ConditionIndex, tieBreak TieBreak) m.AnnotatedMutation {
	key := record.Key()

	if blocks := index.Lookup(key); len(blocks) > 0 {
		if len(blocks) == 1 {
			return annotate(record, blocks[0], m.Exact())
		}

		chosen := blocks[0]
		if tieBreak == TieBreakInnermost {
			chosen = blocks[len(blocks)-1]
		}

		return annotate(record, chosen, m.Multiple())
	}

	var (
		best     *m.ConditionBlock
		distance int
	)

	for offset := -NearbyWindow; offset <= NearbyWindow; offset++ {
		blocks := index.Lookup(m.BlockKey{Class: key.Class, Line: key.Line + offset})
		if len(blocks) == 0 {
			continue
		}

		d := abs(offset)
		if best == nil || d < distance {
			best = &blocks[0]
			distance = d
		}
	}

	if best == nil {
		return m.AnnotatedMutation{MutationRecord: record, Status: m.NoMatch()}
	}

	return annotate(record, *best, m.Nearby(distance))
}

func annotate(record m.MutationRecord, block m.ConditionBlock, status m.MatchStatus) m.AnnotatedMutation {
	return m.AnnotatedMutation{
		MutationRecord: record,
		Block:          &block,
		Status:         status,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
