// Package bench times batches of table operations against fresh
// hash tables and reports the measurements as benchmark results. It is
// pure instrumentation around the table's public contract.
package bench

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/tidyware/stockroom/internal/datagen"
	"github.com/tidyware/stockroom/pkg/hashtable"
	"github.com/tidyware/stockroom/pkg/types"
)

// Default suite parameters, matching the canonical run: six element
// counts, three repetitions each, against a table sized for 1000.
var DefaultSizes = []int{100, 200, 300, 500, 800, 1000}

const (
	DefaultRepetitions = 3
	DefaultCapacity    = 1000

	// sampleDivisor selects the fraction of N used for each timed
	// search/delete batch (25%).
	sampleDivisor = 4
)

// Config parameterizes a benchmark run.
type Config struct {
	Sizes       []int // element counts to measure
	Repetitions int   // repetitions per element count
	Capacity    int   // expected-capacity hint for each fresh table
}

// withDefaults fills unset fields with the canonical suite parameters.
func (c Config) withDefaults() Config {
	if len(c.Sizes) == 0 {
		c.Sizes = DefaultSizes
	}
	if c.Repetitions <= 0 {
		c.Repetitions = DefaultRepetitions
	}
	if c.Capacity <= 0 {
		c.Capacity = DefaultCapacity
	}
	return c
}

// Runner executes benchmark suites. Progress lines are written through
// Logf when set; a nil Logf runs silently.
type Runner struct {
	cfg  Config
	rng  *rand.Rand
	Logf func(format string, args ...any)
}

// NewRunner creates a runner with the given config, filling defaults
// for unset fields.
func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg: cfg.withDefaults(),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run executes the full suite: for each configured element count,
// Repetitions fresh tables are built, filled, probed, and pruned in
// timed batches. All results share one UUID v7 run ID.
func (r *Runner) Run() ([]types.BenchResult, error) {
	runID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating run ID: %w", err)
	}

	var results []types.BenchResult
	for _, n := range r.cfg.Sizes {
		r.logf("benchmarking N=%d (%d repetitions)", n, r.cfg.Repetitions)
		for rep := 1; rep <= r.cfg.Repetitions; rep++ {
			res := r.runOnce(runID.String(), n, rep)
			results = append(results, res)
			r.logf("  rep %d/%d: insert %.4f ms, search hit %.4f ms, search miss %.4f ms, delete %.4f ms, collisions %d",
				rep, r.cfg.Repetitions, res.InsertMillis, res.SearchHitMillis, res.SearchMissMillis, res.DeleteMillis, res.Collisions)
		}
	}
	return results, nil
}

// runOnce measures one repetition against a fresh table.
func (r *Runner) runOnce(runID string, n, rep int) types.BenchResult {
	table := hashtable.New(r.cfg.Capacity)
	products := datagen.Products(r.rng, n)

	// Batch insertion.
	start := time.Now()
	for _, p := range products {
		table.Insert(p)
	}
	insertMs := millisSince(start)

	loadFactor := table.LoadFactor()
	collisions := table.Collisions()

	batch := n / sampleDivisor

	// Searches for a random sample of existing keys.
	hitKeys := r.sampleIDs(n, batch)
	start = time.Now()
	for _, key := range hitKeys {
		table.Search(key)
	}
	hitMs := millisSince(start)

	// Searches for keys that were never inserted.
	start = time.Now()
	for i := 0; i < batch; i++ {
		table.Search(datagen.AbsentID(i))
	}
	missMs := millisSince(start)

	// Deletion of a random sample of existing keys.
	deleteKeys := r.sampleIDs(n, batch)
	start = time.Now()
	for _, key := range deleteKeys {
		table.Delete(key)
	}
	deleteMs := millisSince(start)

	return types.BenchResult{
		RunID:            runID,
		N:                n,
		Repetition:       rep,
		InsertMillis:     insertMs,
		LoadFactor:       loadFactor,
		Collisions:       collisions,
		SearchHitMillis:  hitMs,
		SearchMissMillis: missMs,
		DeleteMillis:     deleteMs,
		CreatedAt:        time.Now().UTC(),
	}
}

// sampleIDs returns k distinct generated product IDs drawn from the
// first n, in random order.
func (r *Runner) sampleIDs(n, k int) []string {
	perm := r.rng.Perm(n)
	ids := make([]string, k)
	for i := 0; i < k; i++ {
		ids[i] = datagen.ProductID(perm[i])
	}
	return ids
}

func (r *Runner) logf(format string, args ...any) {
	if r.Logf != nil {
		r.Logf(format, args...)
	}
}

func millisSince(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
