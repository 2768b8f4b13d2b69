// Package scene defines the canonical booth-layout data model: the hall,
// its infrastructure (outlets, curtain rails, inner walls, forbidden
// zones), booth requests, the requirements/weights configuration, and the
// placement record produced by the optimizer. It is the contract between
// the SVG compiler, the constraint builder, and the placement emitter.
package scene
