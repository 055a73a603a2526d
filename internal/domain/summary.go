package domain

import (
	"sort"

	m "github.com/mouse-blink/mutmap/internal/model"
)

// SampleSize is the number of leading rows kept in a MappingSummary sample.
const SampleSize = 10

// Summarize computes the statistics reported after a mapping run: status
// counts over all rows, node kind counts over mapped rows, and the first
// SampleSize rows.
func Summarize(rows []m.AnnotatedMutation) m.MappingSummary {
	statuses := newCounter()
	kinds := newCounter()
	mapped := 0

	for _, row := range rows {
		statuses.add(row.Status.String())

		if row.Status.Mapped() {
			mapped++

			kinds.add(string(row.NodeKind()))
		}
	}

	sample := rows
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}

	return m.MappingSummary{
		Total:          len(rows),
		Mapped:         mapped,
		StatusCounts:   statuses.sorted(),
		NodeKindCounts: kinds.sorted(),
		Sample:         append([]m.AnnotatedMutation(nil), sample...),
	}
}

type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}

	c.counts[label]++
}

// sorted returns counts in descending order; equal counts keep first-seen order.
func (c *counter) sorted() []m.Count {
	out := make([]m.Count, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, m.Count{Label: label, Count: c.counts[label]})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	return out
}
