// Package types defines the inventory entity types, benchmark result
// types, and standard errors shared by the stockroom packages.
package types
