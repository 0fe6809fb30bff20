// Package cache stores solved colorings on disk so that sweeps can be
// resumed without re-solving.
//
// Entries are keyed by a structural fingerprint of the graph (xxhash over
// the sorted vertex and edge lists) combined with the backend and model
// variant. Callers must re-verify a cached coloring before trusting it;
// Lookup does that for them.
package cache
