package bench

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunProducesOneResultPerRepetition(t *testing.T) {
	runner := NewRunner(Config{
		Sizes:       []int{50, 100},
		Repetitions: 2,
		Capacity:    100,
	})

	results, err := runner.Run()
	require.NoError(t, err)
	require.Len(t, results, 4)

	runID := results[0].RunID
	_, err = uuid.Parse(runID)
	require.NoError(t, err, "run ID must be a UUID")

	wantN := []int{50, 50, 100, 100}
	wantRep := []int{1, 2, 1, 2}
	for i, res := range results {
		assert.Equal(t, runID, res.RunID, "all repetitions share one run ID")
		assert.Equal(t, wantN[i], res.N)
		assert.Equal(t, wantRep[i], res.Repetition)
		assert.False(t, res.CreatedAt.IsZero())

		assert.GreaterOrEqual(t, res.InsertMillis, 0.0)
		assert.GreaterOrEqual(t, res.SearchHitMillis, 0.0)
		assert.GreaterOrEqual(t, res.SearchMissMillis, 0.0)
		assert.GreaterOrEqual(t, res.DeleteMillis, 0.0)
		assert.GreaterOrEqual(t, res.Collisions, 0)
	}
}

func TestRunCapturesTableState(t *testing.T) {
	// 500 elements in a capacity-100 table (size 137) guarantees heavy
	// chaining: load factor well above 100% and many collisions.
	runner := NewRunner(Config{
		Sizes:       []int{500},
		Repetitions: 1,
		Capacity:    100,
	})

	results, err := runner.Run()
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	assert.InDelta(t, 100*500.0/137.0, res.LoadFactor, 1e-9,
		"load factor is recorded after the insert batch, before deletions")
	assert.Greater(t, res.Collisions, 0)
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, DefaultSizes, cfg.Sizes)
	assert.Equal(t, DefaultRepetitions, cfg.Repetitions)
	assert.Equal(t, DefaultCapacity, cfg.Capacity)

	custom := Config{Sizes: []int{10}, Repetitions: 5, Capacity: 42}.withDefaults()
	assert.Equal(t, []int{10}, custom.Sizes)
	assert.Equal(t, 5, custom.Repetitions)
	assert.Equal(t, 42, custom.Capacity)
}

func TestSampleIDsDistinct(t *testing.T) {
	runner := NewRunner(Config{})

	ids := runner.sampleIDs(100, 25)
	require.Len(t, ids, 25)

	seen := make(map[string]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "sampled IDs must be distinct")
		seen[id] = true
	}
}

func TestRunnerLogf(t *testing.T) {
	runner := NewRunner(Config{Sizes: []int{20}, Repetitions: 1, Capacity: 20})

	var lines []string
	runner.Logf = func(format string, args ...any) {
		lines = append(lines, format)
	}

	_, err := runner.Run()
	require.NoError(t, err)
	assert.NotEmpty(t, lines)
}
