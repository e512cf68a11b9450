package datagen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceDeterminism(t *testing.T) {
	drawAll := func(seq *Sequence) []any {
		return []any{
			seq.IntBetween(0, 1000),
			seq.FloatBetween(0, 1),
			seq.Pick([]string{"a", "b", "c"}),
			seq.Sample([]string{"a", "b", "c", "d"}, 2),
			seq.Date(WindowStart, WindowEnd),
			seq.Timestamp(WindowStart, WindowEnd),
			seq.Name(),
			seq.Email(),
			seq.Sentence(),
		}
	}

	first := drawAll(newSequence(42, "accounts"))
	second := drawAll(newSequence(42, "accounts"))
	assert.Equal(t, first, second, "same seed and salt must replay the same draws")

	otherSalt := drawAll(newSequence(42, "teams"))
	assert.NotEqual(t, first, otherSalt, "different salts must give independent streams")

	otherSeed := drawAll(newSequence(43, "accounts"))
	assert.NotEqual(t, first, otherSeed, "different seeds must give different streams")
}

func TestSequenceBounds(t *testing.T) {
	seq := newSequence(7, "bounds")
	for i := 0; i < 1000; i++ {
		n := seq.IntBetween(3, 9)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 9)

		f := seq.FloatBetween(1.0, 5.0)
		assert.GreaterOrEqual(t, f, 1.0)
		assert.LessOrEqual(t, f, 5.0)
	}
	require.NoError(t, seq.Err())
}

func TestSequenceDateInclusive(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	seq := newSequence(1, "dates")
	assert.Equal(t, day, seq.Date(day, day), "single-day range must return that day")
	assert.Equal(t, day, seq.Timestamp(day, day), "single-second range must return that instant")

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		d := seq.Date(start, end)
		assert.False(t, d.Before(start))
		assert.False(t, d.After(end))

		ts := seq.Timestamp(start, end)
		assert.False(t, ts.Before(start))
		assert.False(t, ts.After(end))
	}
	require.NoError(t, seq.Err())
}

func TestSequenceConfigErrors(t *testing.T) {
	later := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		draw func(*Sequence)
	}{
		{
			name: "int range inverted",
			draw: func(s *Sequence) { s.IntBetween(10, 5) },
		},
		{
			name: "float range inverted",
			draw: func(s *Sequence) { s.FloatBetween(5, 1) },
		},
		{
			name: "date end before start",
			draw: func(s *Sequence) { s.Date(later, earlier) },
		},
		{
			name: "timestamp end before start",
			draw: func(s *Sequence) { s.Timestamp(later, earlier) },
		},
		{
			name: "empty choice set",
			draw: func(s *Sequence) { s.Pick(nil) },
		},
		{
			name: "sample larger than candidates",
			draw: func(s *Sequence) { s.Sample([]string{"a", "b", "c", "d"}, 8) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := newSequence(1, "errors")
			tt.draw(seq)

			var cfgErr *ConfigError
			require.ErrorAs(t, seq.Err(), &cfgErr)
		})
	}
}

func TestSequenceStickyError(t *testing.T) {
	seq := newSequence(1, "sticky")
	seq.Sample([]string{"a"}, 2)
	firstErr := seq.Err()
	require.Error(t, firstErr)

	// Draws after a failure return zero values and keep the first error.
	assert.Zero(t, seq.IntBetween(1, 10))
	assert.Empty(t, seq.Pick([]string{"x"}))
	assert.Empty(t, seq.Name())
	seq.Date(time.Now().Add(time.Hour), time.Now()) // would be its own error
	assert.Same(t, firstErr, seq.Err())
}

func TestSampleDistinct(t *testing.T) {
	seq := newSequence(9, "sample")
	options := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for i := 0; i < 100; i++ {
		got := seq.Sample(options, 5)
		require.Len(t, got, 5)
		seen := make(map[string]bool)
		for _, v := range got {
			assert.False(t, seen[v], "sample must not repeat %q", v)
			seen[v] = true
		}
	}
	require.NoError(t, seq.Err())
}
