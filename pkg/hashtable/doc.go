// Package hashtable implements a fixed-capacity hash table mapping
// product IDs to inventory records, with separate-chaining collision
// resolution over a prime-sized slot array.
//
// The table is sized once at construction (smallest prime covering the
// expected capacity padded by 1.33) and never rehashes: sustained
// insertion beyond the sizing assumption degrades to longer chains
// rather than triggering growth. Keys are unique across the table and
// absence is an ordinary outcome reported through boolean and nil
// results, never an error.
//
// A Table is not safe for concurrent use; callers that share one
// across goroutines must serialize access themselves.
package hashtable
