// Package render draws the placement diagram described in spec §4.4:
// the hall outline, outlet and rail glyphs, forbidden zones, inner
// walls, and the double-stroke booth rectangles, using a single
// mm-to-pixel scale and a y-axis flip back to screen coordinates.
package render
