package domain

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/mutmap/internal/model"
)

func block(class string, line int, kind m.NodeKind, condition string) m.ConditionBlock {
	return m.ConditionBlock{ClassName: class, Line: line, Kind: kind, Condition: condition}
}

func mutation(id, class string, line int) m.MutationRecord {
	return m.MutationRecord{ID: id, Operator: "ROR", QualifiedClass: class, Line: line, OriginalText: "a < b", MutatedText: "a <= b"}
}

func statuses(rows []m.AnnotatedMutation) []m.MatchStatus {
	out := make([]m.MatchStatus, len(rows))
	for i, row := range rows {
		out[i] = row.Status
	}

	return out
}

func TestMapper_SampleScenario(t *testing.T) {
	index := NewConditionIndex([]m.ConditionBlock{
		block("A.B", 10, m.NodeIf, "x>0"),
		block("A.B", 15, m.NodeWhile, "y<10"),
	})
	mutations := []m.MutationRecord{
		mutation("1", "A.B", 10),
		mutation("2", "A.B", 14),
		mutation("3", "A.B", 20),
	}

	rows, err := NewMapper().Map(context.Background(), mutations, index, MapOptions{})
	require.NoError(t, err)

	assert.Equal(t, []m.MatchStatus{m.Exact(), m.Nearby(1), m.NoMatch()}, statuses(rows))

	assert.Equal(t, m.NodeIf, rows[0].NodeKind())
	assert.Equal(t, "x>0", rows[0].Condition())
	assert.Equal(t, m.NodeWhile, rows[1].NodeKind())
	assert.Equal(t, "y<10", rows[1].Condition())
	assert.Nil(t, rows[2].Block)
	assert.Empty(t, rows[2].NodeKind())
	assert.Empty(t, rows[2].Condition())
}

func TestMapper_Resolve(t *testing.T) {
	index := NewConditionIndex([]m.ConditionBlock{
		block("Foo", 10, m.NodeIf, "a"),
		block("Multi", 5, m.NodeIf, "outer"),
		block("Multi", 5, m.NodeWhile, "inner"),
		block("Gap", 7, m.NodeFor, "minus three"),
		block("Gap", 11, m.NodeIf, "plus one"),
		block("Tie", 8, m.NodeIf, "minus two"),
		block("Tie", 12, m.NodeWhile, "plus two"),
		block("Far", 13, m.NodeIf, "plus three"),
		block("Far", 7, m.NodeIf, "minus three"),
		block("Near", 12, m.NodeDo, "first at +2"),
		block("Near", 12, m.NodeSwitch, "second at +2"),
	})

	tests := []struct {
		name          string
		record        m.MutationRecord
		tieBreak      TieBreak
		wantStatus    m.MatchStatus
		wantCondition string
	}{
		{"exact match", mutation("1", "Foo", 10), TieBreakFirst, m.Exact(), "a"},
		{"method suffix is stripped", mutation("2", "Foo@bar()", 10), TieBreakFirst, m.Exact(), "a"},
		{"multiple matches pick the first block", mutation("3", "Multi", 5), TieBreakFirst, m.Multiple(), "outer"},
		{"innermost picks the last block", mutation("4", "Multi", 5), TieBreakInnermost, m.Multiple(), "inner"},
		{"closest offset wins over an earlier scan position", mutation("5", "Gap", 10), TieBreakFirst, m.Nearby(1), "plus one"},
		{"negative offset wins an equal-distance tie", mutation("6", "Tie", 10), TieBreakFirst, m.Nearby(2), "minus two"},
		{"blocks beyond the window are ignored", mutation("7", "Far", 10), TieBreakFirst, m.NoMatch(), ""},
		{"nearby uses the first block at the key", mutation("8", "Near", 10), TieBreakInnermost, m.Nearby(2), "first at +2"},
		{"unknown class", mutation("9", "Other", 10), TieBreakFirst, m.NoMatch(), ""},
		{"class key is case sensitive", mutation("10", "foo", 10), TieBreakFirst, m.NoMatch(), ""},
	}

	mapper := NewMapper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapper.Resolve(tt.record, index, tt.tieBreak)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantCondition, got.Condition())
			assert.Equal(t, tt.record, got.MutationRecord)
		})
	}
}

func TestMapper_Map_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	classes := []string{"p.A", "p.B", "p.C"}

	var blocks []m.ConditionBlock
	for i := 0; i < 200; i++ {
		blocks = append(blocks, block(classes[rng.Intn(len(classes))], 1+rng.Intn(300), m.NodeIf, fmt.Sprintf("c%d", i)))
	}

	var mutations []m.MutationRecord
	for i := 0; i < 500; i++ {
		class := classes[rng.Intn(len(classes))]
		if i%7 == 0 {
			class += "@method(int)"
		}

		mutations = append(mutations, mutation(fmt.Sprint(i), class, 1+rng.Intn(300)))
	}

	index := NewConditionIndex(blocks)
	mapper := NewMapper()
	ctx := context.Background()

	rows, err := mapper.Map(ctx, mutations, index, MapOptions{})
	require.NoError(t, err)
	require.Len(t, rows, len(mutations))

	t.Run("order is preserved", func(t *testing.T) {
		for i, row := range rows {
			assert.Equal(t, mutations[i], row.MutationRecord)
		}
	})

	t.Run("mapping is idempotent", func(t *testing.T) {
		again, err := mapper.Map(ctx, mutations, index, MapOptions{})
		require.NoError(t, err)
		assert.Equal(t, rows, again)
	})

	t.Run("parallel mapping equals sequential mapping", func(t *testing.T) {
		parallel, err := mapper.Map(ctx, mutations, index, MapOptions{Parallel: 4})
		require.NoError(t, err)
		assert.Equal(t, rows, parallel)
	})

	t.Run("statuses agree with the index", func(t *testing.T) {
		for _, row := range rows {
			key := row.Key()
			exact := index.Lookup(key)

			switch row.Status.Kind {
			case m.ExactMatch:
				assert.Len(t, exact, 1)
			case m.MultipleMatches:
				assert.Greater(t, len(exact), 1)
			case m.NearbyMatch:
				require.Empty(t, exact)
				assert.LessOrEqual(t, row.Status.Distance, NearbyWindow)
				assert.Positive(t, row.Status.Distance)

				for d := 1; d < row.Status.Distance; d++ {
					assert.Empty(t, index.Lookup(m.BlockKey{Class: key.Class, Line: key.Line - d}))
					assert.Empty(t, index.Lookup(m.BlockKey{Class: key.Class, Line: key.Line + d}))
				}
			case m.NoMatchFound:
				for d := -NearbyWindow; d <= NearbyWindow; d++ {
					assert.Empty(t, index.Lookup(m.BlockKey{Class: key.Class, Line: key.Line + d}))
				}
			default:
				t.Fatalf("unexpected status %v", row.Status)
			}
		}
	})
}

func TestMapper_Map_DoesNotMutateInputs(t *testing.T) {
	blocks := []m.ConditionBlock{block("A", 1, m.NodeIf, "x")}
	index := NewConditionIndex(blocks)
	mutations := []m.MutationRecord{mutation("1", "A@f()", 1), mutation("2", "A", 2)}
	before := append([]m.MutationRecord(nil), mutations...)

	rows, err := NewMapper().Map(context.Background(), mutations, index, MapOptions{})
	require.NoError(t, err)

	rows[0].Block.Condition = "changed"

	assert.Equal(t, before, mutations)
	assert.Equal(t, "x", index.Lookup(m.BlockKey{Class: "A", Line: 1})[0].Condition)
	assert.Equal(t, 1, index.Len())
}

func TestMapper_Map_Errors(t *testing.T) {
	mapper := NewMapper()
	mutations := []m.MutationRecord{mutation("1", "A", 1), mutation("2", "A", 2)}

	t.Run("nil index", func(t *testing.T) {
		_, err := mapper.Map(context.Background(), mutations, nil, MapOptions{})
		assert.True(t, errors.Is(err, ErrNilIndex))
	})

	t.Run("unknown tie-break", func(t *testing.T) {
		_, err := mapper.Map(context.Background(), mutations, NewConditionIndex(nil), MapOptions{TieBreak: "outermost"})
		assert.True(t, errors.Is(err, ErrUnknownTieBreak))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := mapper.Map(ctx, mutations, NewConditionIndex(nil), MapOptions{})
		assert.True(t, errors.Is(err, context.Canceled))

		_, err = mapper.Map(ctx, mutations, NewConditionIndex(nil), MapOptions{Parallel: 2})
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("empty input", func(t *testing.T) {
		rows, err := mapper.Map(context.Background(), nil, NewConditionIndex(nil), MapOptions{Parallel: 3})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestParseTieBreak(t *testing.T) {
	tests := []struct {
		value   string
		want    TieBreak
		wantErr bool
	}{
		{"", TieBreakFirst, false},
		{"first", TieBreakFirst, false},
		{" Innermost ", TieBreakInnermost, false},
		{"outermost", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseTieBreak(tt.value)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownTieBreak))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
