// Package store holds the currently published partition and its lookup index.
//
// A Store publishes immutable snapshots. Each snapshot pairs a partition with
// the index built from it, so a reader can never observe a partition matched
// with another partition's index. Readers never block: Read is a single atomic
// load. Writers (Publish, Clear, Apply) are serialized.
//
// Construct a Store explicitly with New and pass it where it is needed. Default
// returns one lazily created, process-wide store for small programs that want a
// single shared instance.
package store
