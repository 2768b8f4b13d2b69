// Package placement materializes a solver result as a placement table
// (spec §4.4): it re-asserts every hard invariant against the solver's
// own output, retains a single-generation backup of any prior table,
// and writes the new one.
package placement
