package types

import (
	"errors"
	"sort"
	"time"
)

// BenchResult holds the measurements of one benchmark repetition: a fresh
// table is filled with N products, then searched and pruned in timed
// batches. All timings are wall-clock milliseconds.
type BenchResult struct {
	RunID            string    `json:"run_id"`
	N                int       `json:"n"`
	Repetition       int       `json:"repetition"`
	InsertMillis     float64   `json:"insert_ms"`
	LoadFactor       float64   `json:"load_factor"`
	Collisions       int       `json:"collisions"`
	SearchHitMillis  float64   `json:"search_hit_ms"`
	SearchMissMillis float64   `json:"search_miss_ms"`
	DeleteMillis     float64   `json:"delete_ms"`
	CreatedAt        time.Time `json:"created_at"`
}

// BenchAverage aggregates the repetitions recorded for one element count.
type BenchAverage struct {
	N                int     `json:"n"`
	Repetitions      int     `json:"repetitions"`
	InsertMillis     float64 `json:"insert_ms"`
	LoadFactor       float64 `json:"load_factor"`
	Collisions       float64 `json:"collisions"`
	SearchHitMillis  float64 `json:"search_hit_ms"`
	SearchMissMillis float64 `json:"search_miss_ms"`
	DeleteMillis     float64 `json:"delete_ms"`
}

// Results store errors.
var (
	ErrStoreDetached   = errors.New("results store is not attached")
	ErrAlreadyAttached = errors.New("results store is already attached")
	ErrNoResults       = errors.New("no benchmark results recorded")
)

// Averages groups results by N and averages every numeric measure.
// The returned slice is ordered by ascending N.
func Averages(results []BenchResult) []BenchAverage {
	byN := make(map[int]*BenchAverage)
	for _, r := range results {
		avg, ok := byN[r.N]
		if !ok {
			avg = &BenchAverage{N: r.N}
			byN[r.N] = avg
		}
		avg.Repetitions++
		avg.InsertMillis += r.InsertMillis
		avg.LoadFactor += r.LoadFactor
		avg.Collisions += float64(r.Collisions)
		avg.SearchHitMillis += r.SearchHitMillis
		avg.SearchMissMillis += r.SearchMissMillis
		avg.DeleteMillis += r.DeleteMillis
	}

	out := make([]BenchAverage, 0, len(byN))
	for _, avg := range byN {
		reps := float64(avg.Repetitions)
		avg.InsertMillis /= reps
		avg.LoadFactor /= reps
		avg.Collisions /= reps
		avg.SearchHitMillis /= reps
		avg.SearchMissMillis /= reps
		avg.DeleteMillis /= reps
		out = append(out, *avg)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].N < out[j].N })
	return out
}
