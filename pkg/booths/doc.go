// Package booths reads the tabular booth request table (spec §6): one
// row per booth with columns id, name, width_mm, depth_mm, want_outlet,
// want_curtain_rail, and optional group/preferred-area columns. This is
// treated as an external-collaborator I/O wrapper, not core constraint
// logic, so it uses encoding/csv directly rather than a third-party
// CSV library.
package booths
