// Package hash provides the 64-bit hashes used for categorical dimensions
// and z-index fingerprints.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
