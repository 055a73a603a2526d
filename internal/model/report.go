package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStatus is returned when a mapping status label cannot be parsed.
var ErrUnknownStatus = errors.New("unknown mapping status")

// MatchKind classifies how a mutation was correlated with a condition block.
type MatchKind int

const (
	// NotMapped is the zero value: the mutation was never resolved.
	NotMapped MatchKind = iota
	// ExactMatch means exactly one block shares the mutation's key.
	ExactMatch
	// MultipleMatches means several blocks share the mutation's key.
	MultipleMatches
	// NearbyMatch means a block was found within the line window.
	NearbyMatch
	// NoMatchFound means nothing was found within the line window.
	NoMatchFound
)

const (
	labelNotMapped       = "Not Mapped"
	labelExactMatch      = "Exact Match"
	labelMultipleMatches = "Multiple Matches"
	labelNoMatchFound    = "No Match Found"
	nearbyLabelFormat    = "Nearby Match (±%d lines)"
)

// MatchStatus is the confidence label attached to an annotated mutation.
// Distance is only meaningful for NearbyMatch.
type MatchStatus struct {
	Kind     MatchKind
	Distance int
}

// Exact returns the ExactMatch status.
func Exact() MatchStatus { return MatchStatus{Kind: ExactMatch} }

// Multiple returns the MultipleMatches status.
func Multiple() MatchStatus { return MatchStatus{Kind: MultipleMatches} }

// Nearby returns the NearbyMatch status for the given absolute line distance.
func Nearby(distance int) MatchStatus {
	return MatchStatus{Kind: NearbyMatch, Distance: distance}
}

// NoMatch returns the NoMatchFound status.
func NoMatch() MatchStatus { return MatchStatus{Kind: NoMatchFound} }

// String renders the status with the labels used in the mapped table.
func (s MatchStatus) String() string {
	switch s.Kind {
	case ExactMatch:
		return labelExactMatch
	case MultipleMatches:
		return labelMultipleMatches
	case NearbyMatch:
		return fmt.Sprintf(nearbyLabelFormat, s.Distance)
	case NoMatchFound:
		return labelNoMatchFound
	case NotMapped:
		return labelNotMapped
	}

	return labelNotMapped
}

// Mapped reports whether the status carries a resolved block.
func (s MatchStatus) Mapped() bool {
	return s.Kind == ExactMatch || s.Kind == MultipleMatches || s.Kind == NearbyMatch
}

// ParseMatchStatus is the inverse of MatchStatus.String.
func ParseMatchStatus(label string) (MatchStatus, error) {
	label = strings.TrimSpace(label)

	switch label {
	case labelExactMatch:
		return Exact(), nil
	case labelMultipleMatches:
		return Multiple(), nil
	case labelNoMatchFound:
		return NoMatch(), nil
	case labelNotMapped, "":
		return MatchStatus{}, nil
	}

	var distance int
	if _, err := fmt.Sscanf(label, nearbyLabelFormat, &distance); err == nil {
		return Nearby(distance), nil
	}

	return MatchStatus{}, fmt.Errorf("%w: %q", ErrUnknownStatus, label)
}

// AnnotatedMutation is a mutation extended with the block it resolved to.
// Block is nil unless Status is mapped.
type AnnotatedMutation struct {
	MutationRecord
	Block  *ConditionBlock
	Status MatchStatus
}

// NodeKind returns the resolved node kind, or "" when unmapped.
func (a AnnotatedMutation) NodeKind() NodeKind {
	if a.Block == nil {
		return ""
	}

	return a.Block.Kind
}

// Condition returns the resolved condition text, or "" when unmapped.
func (a AnnotatedMutation) Condition() string {
	if a.Block == nil {
		return ""
	}

	return a.Block.Condition
}

// Count is a labelled tally used by the mapping summary.
type Count struct {
	Label string `yaml:"label"`
	Count int    `yaml:"count"`
}

// MappingSummary is the end-of-run statistics for a mapped table.
type MappingSummary struct {
	Total          int                 `yaml:"total"`
	Mapped         int                 `yaml:"mapped"`
	StatusCounts   []Count             `yaml:"status_counts"`
	NodeKindCounts []Count             `yaml:"node_kind_counts"`
	Sample         []AnnotatedMutation `yaml:"-"`
}
