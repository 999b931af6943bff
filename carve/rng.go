package carve

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"

	"github.com/katalvlaran/amazeing/maze"
)

// rngFromSeed returns a deterministic *rand.Rand for the given seed.
func rngFromSeed(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

// entropySeed draws a fresh seed from the operating system. Used only
// when the caller pins no seed; the drawn value is reported back so the
// run stays reproducible.
func entropySeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing is effectively unrecoverable; fall back to
		// a fixed seed rather than panic inside a library.
		return 1
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// shuffleNeighbors performs an in-place Fisher–Yates shuffle.
// Candidates are always gathered in N, E, S, W order first, so the
// shuffle outcome depends only on the RNG stream.
func shuffleNeighbors(ns []maze.Neighbor, rng *mrand.Rand) {
	for i := len(ns) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		ns[i], ns[j] = ns[j], ns[i]
	}
}
