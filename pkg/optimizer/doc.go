// Package optimizer builds the constraint/objective model of spec §4.2
// over a compiled scene and drives a registered Solver to find a
// placement for every booth. The model and its predicates are direct
// transcriptions of the design; the one registered solver,
// "local_search", is a deterministic simulated-annealing driver used in
// place of an external CP-SAT/MIP solver (see DESIGN.md for why).
package optimizer
