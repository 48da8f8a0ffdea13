// Package setsync reconciles two independently mutable copies of a
// structured settings store.
//
// A settings store is a flat collection of named _sections_,
// each an opaque payload with a last-modified timestamp,
// described by a _manifest_ that also carries the version metadata
// gating synchronization.
//
// One copy is "local" (owned by the running application)
// and one is "remote" (any key-value backend reachable through the KV
// interface).
// Synchronize compares the two manifests,
// decides which sections must move which way
// using last-writer-wins timestamp comparison,
// moves them concurrently,
// and rewrites both manifests to record the result.
//
// Version gating is two-sided.
// The remote manifest's minimum-compatible version decides whether this
// instance may read from the remote at all;
// its protocol version decides whether this instance may write back.
// An instance that can read but not write still pulls newer remote
// sections and simply drops its own newer ones from the plan.
//
// Transfers are not transactional.
// A failed section transfer marks the whole run failed,
// but sections already moved stay moved,
// and neither manifest is rewritten.
// The next clean run heals the gap:
// unmodified sections compare equal and are skipped,
// and already-moved data simply re-compares.
//
// Concrete backends for both sides live in the store subpackages.
package setsync
