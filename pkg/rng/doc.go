// Package rng provides deterministic random number generation for the
// booth-layout optimizer.
//
// # Overview
//
// The RNG type gives each solver worker a reproducible random sequence by
// deriving worker-specific seeds from a master seed. This allows each
// solver worker (see pkg/optimizer) to run an independent local-search
// trajectory whose random sequence is fixed by the seed and worker index.
// How much of that sequence a wall-clock-bounded solve consumes is not
// fixed, so the placement a run finds can still vary.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_worker = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: Top-level seed for the whole solve
//   - stageName: Worker identifier (e.g., "solver_worker_3")
//   - configHash: Hash of the scene/config parameters
//
// This ensures:
//  1. Same inputs always produce same RNG sequence (determinism)
//  2. Different workers get independent random sequences (isolation)
//  3. Scene changes result in different sequences (sensitivity)
//
// # Usage
//
// Create an RNG per worker:
//
//	sceneHash := sha256.Sum256([]byte(sceneJSON))
//	w0 := rng.NewRNG(masterSeed, "solver_worker_0", sceneHash[:])
//	w1 := rng.NewRNG(masterSeed, "solver_worker_1", sceneHash[:])
//
// Use the RNG for all random decisions made by that worker:
//
//	idx := w0.Intn(len(booths))
//	if w0.Bool() {
//	    // try a rotation flip
//	}
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance. Create worker-specific RNGs before spawning goroutines and pass
// them explicitly.
package rng
