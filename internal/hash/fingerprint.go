// Package hash computes content fingerprints for published partitions.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/arloliu/teamdraw/types"
)

// Partition returns a 64-bit fingerprint of the partition contents.
//
// Every team number and every member field is folded into a single XXH3 hash,
// each step seeded with the previous result, so no intermediate string is built.
// Two partitions with the same teams, members and member order fingerprint equally.
//
// Parameters:
//   - p: Partition to fingerprint
//
// Returns:
//   - uint64: Fingerprint (stable across processes and versions of this package)
//
// Example:
//
//	if hash.Partition(snapshot.Partition) != snapshot.Fingerprint {
//	    return errors.New("snapshot corrupted")
//	}
func Partition(p types.Partition) uint64 {
	h := foldInt(0, len(p.Teams))
	for _, team := range p.Teams {
		h = foldInt(h, team.Number)
		h = foldInt(h, len(team.Members))
		for _, m := range team.Members {
			h = xxh3.HashStringSeed(m.FirstName, h)
			h = xxh3.HashStringSeed(m.LastName, h)
			h = xxh3.HashStringSeed(m.Position, h)
			h = xxh3.HashStringSeed(m.Department, h)
			h = xxh3.HashStringSeed(m.SequenceNo, h)
		}
	}

	return h
}

func foldInt(seed uint64, v int) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v)) //nolint:gosec

	return xxh3.HashSeed(b[:], seed)
}
