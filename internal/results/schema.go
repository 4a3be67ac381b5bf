package results

// Schema DDL for the benchmark results database. Results accumulate
// across runs, so creation is idempotent.
const createBenchResults = `CREATE TABLE IF NOT EXISTS bench_results (
    result_id TEXT PRIMARY KEY,
    run_id TEXT NOT NULL,
    n INTEGER NOT NULL,
    repetition INTEGER NOT NULL,
    insert_ms REAL NOT NULL,
    load_factor REAL NOT NULL,
    collisions INTEGER NOT NULL,
    search_hit_ms REAL NOT NULL,
    search_miss_ms REAL NOT NULL,
    delete_ms REAL NOT NULL,
    created_at TEXT NOT NULL
);`

const createRunIndex = `CREATE INDEX IF NOT EXISTS idx_bench_results_run
    ON bench_results (run_id);`
