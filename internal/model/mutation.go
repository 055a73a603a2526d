// Package model defines the data structures shared by the mapping pipeline.
package model

import "strings"

// MutationRecord is a single mutation decoded from a mutants log.
type MutationRecord struct {
	ID             string
	Operator       string
	Variant        string // free-text variant tag, not interpreted
	Polarity       string // pass/fail style flag, passed through unchanged
	QualifiedClass string // may carry a trailing "@method(...)" suffix
	Line           int
	OriginalText   string
	MutatedText    string
}

// ClassKey returns the class identity used for joining: the qualified class
// truncated at the first '@'.
func (r MutationRecord) ClassKey() string {
	if idx := strings.IndexByte(r.QualifiedClass, '@'); idx >= 0 {
		return r.QualifiedClass[:idx]
	}

	return r.QualifiedClass
}

// Key returns the (class, line) lookup key for this mutation.
func (r MutationRecord) Key() BlockKey {
	return BlockKey{Class: r.ClassKey(), Line: r.Line}
}
