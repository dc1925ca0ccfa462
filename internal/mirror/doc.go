// Package mirror replicates a store's published snapshot through a NATS
// JetStream key-value bucket.
//
// The organizer's Publisher writes one JSON envelope under a single key on every
// publish and clear. Followers watch that key and apply what they see to their
// own local store, so participant lookups can be served by any process.
//
// A clear is written as a tombstone envelope that keeps the version, so a
// restarted organizer can continue the version sequence and followers never
// mistake a new publish for a stale one.
package mirror
