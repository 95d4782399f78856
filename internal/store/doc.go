// Package store persists RSO records in a single JSON file.
//
// The whole collection is read from disk, changed in memory, and rewritten
// on every mutating call. There is no append log and no partial update.
//
// # Concurrency
//
// One mutex guards every operation, reads included, so each call runs as a
// single read-modify-write critical section. The Store assumes it is the
// only writer of its file; there is no cross-process locking.
//
// # Copies
//
// Records passed in are copied before they are kept, and records returned
// are copies. Callers never share slices with stored state.
//
// # File format
//
// A JSON array of record objects, two-space indented, keys sorted, with no
// HTML escaping. Writes go to a temporary file that is renamed over the
// target, so readers never see a half-written file.
//
// # Corrupt files
//
// A file that does not decode is handled per Options.OnCorrupt: recover
// (log a warning, treat the collection as empty) or fail (return an error
// with code CORRUPT_STATE and leave the file untouched).
package store
