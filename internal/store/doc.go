// Package store provides abstractions for data persistence. The memory
// collection is persisted as a single versioned blob, matching the shape of
// the data rather than a per-record schema: the collection is small, always
// read whole, and every mutation replaces it atomically.
package store
