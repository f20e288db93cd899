// Package rng provides the single seeded pseudo-random source of a
// generation run.
//
// What:
//
//   - Source wraps a PCG generator from golang.org/x/exp/rand, seeded once
//     from a 32-bit seed.
//   - Every draw of a run (room sizes, shuffles, coin flips, maze roots,
//     trap rolls, spawn cells) goes through one Source, in a fixed order.
//   - NewSeed derives a seed from crypto/rand when reproducibility is not
//     required.
//
// Why:
//
//   - Peers that share a seed must produce bit-for-bit identical levels.
//     A PCG stream is fully specified by its seed, so the same seed replays
//     the same sequence on every platform and Go release.
//   - No package-global randomness: hidden global draws would desynchronise
//     peers.
//
// Determinism:
//
//	New(s) followed by the same sequence of calls always returns the same
//	values. Draws() counts consumed draws, which helps when diffing two runs.
package rng
