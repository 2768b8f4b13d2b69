// Package svg2config compiles an annotated SVG vector drawing into the
// canonical scene description (pkg/scene). It resolves shape colors by
// walking each element's ancestor chain, classifies shapes by class/id
// token or by color-table lookup, extracts geometry per shape type,
// inverts the y-axis so the hall's origin is its lower-left corner, and
// applies a fixed millimeter scale factor uniformly across the scene.
package svg2config
