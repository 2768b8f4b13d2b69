package render

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/boothopt/pkg/scene"
)

// Options configures the rendered diagram.
type Options struct {
	// PixelsPerMM is the single scale factor from the hall's millimeter
	// domain to screen units (spec §4.4: "a single scale factor from mm
	// to screen units").
	PixelsPerMM float64
	// Margin is the blank border, in pixels, around the hall.
	Margin int
}

// DefaultOptions returns sensible rendering defaults: roughly a 1000px
// wide diagram for a typical 10-20m hall.
func DefaultOptions() Options {
	return Options{PixelsPerMM: 0.08, Margin: 40}
}

func (o Options) normalized() Options {
	if o.PixelsPerMM <= 0 {
		o.PixelsPerMM = 0.08
	}
	if o.Margin < 0 {
		o.Margin = 40
	}
	return o
}

// RenderSVG draws the hall, its infrastructure, and the booth
// placements as a single SVG document (spec §4.4).
func RenderSVG(s *scene.Scene, placements []scene.Placement, opts Options) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("render: scene is nil")
	}
	opts = opts.normalized()

	width := int(float64(s.Hall.Width)*opts.PixelsPerMM) + 2*opts.Margin
	height := int(float64(s.Hall.Depth)*opts.PixelsPerMM) + 2*opts.Margin

	t := transform{scale: opts.PixelsPerMM, margin: opts.Margin, hallDepth: s.Hall.Depth}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")

	drawHall(canvas, t, s.Hall)
	drawForbiddenZones(canvas, t, s.ForbiddenZones)
	drawInnerWalls(canvas, t, s.InnerWalls)
	drawRails(canvas, t, s.Rails)
	drawOutlets(canvas, t, s.Outlets)
	drawBooths(canvas, t, placements)

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders the diagram and writes it to path with 0644
// permissions, mirroring this codebase's other file-export helpers.
func SaveSVGToFile(s *scene.Scene, placements []scene.Placement, path string, opts Options) error {
	data, err := RenderSVG(s, placements, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// transform maps hall-space mm coordinates (origin lower-left, +y up)
// to screen pixels (origin top-left, +y down).
type transform struct {
	scale     float64
	margin    int
	hallDepth int
}

func (t transform) px(x int) int {
	return t.margin + int(float64(x)*t.scale)
}

func (t transform) py(y int) int {
	return t.margin + int(float64(t.hallDepth-y)*t.scale)
}

func (t transform) length(mm int) int {
	return int(float64(mm) * t.scale)
}

func drawHall(canvas *svg.SVG, t transform, hall scene.Hall) {
	x0, y0 := t.px(0), t.py(hall.Depth)
	w, h := t.length(hall.Width), t.length(hall.Depth)
	canvas.Rect(x0, y0, w, h, "fill:#ffffff;stroke:#000000;stroke-width:2")
}

func drawForbiddenZones(canvas *svg.SVG, t transform, zones []scene.ForbiddenZone) {
	for _, z := range zones {
		x0, y0 := t.px(z.Zone.Xmin), t.py(z.Zone.Ymax)
		w, h := t.length(z.Zone.Width()), t.length(z.Zone.Height())
		canvas.Rect(x0, y0, w, h, "fill:#ff0000;fill-opacity:0.25;stroke:#ff0000;stroke-width:1")
	}
}

func drawInnerWalls(canvas *svg.SVG, t transform, walls []scene.InnerWall) {
	for i, w := range walls {
		x1, y1 := t.px(w.P1.X), t.py(w.P1.Y)
		x2, y2 := t.px(w.P2.X), t.py(w.P2.Y)
		canvas.Line(x1, y1, x2, y2, "stroke:#000000;stroke-width:3")
		mx, my := midpoint(x1, y1, x2, y2)
		labelAt(canvas, mx, my, fmt.Sprintf("W%d", i+1), "#000000")
	}
}

func drawRails(canvas *svg.SVG, t transform, rails []scene.CurtainRail) {
	for k, r := range rails {
		x1, y1 := t.px(r.P1.X), t.py(r.P1.Y)
		x2, y2 := t.px(r.P2.X), t.py(r.P2.Y)
		canvas.Line(x1, y1, x2, y2, "stroke:#2e8b57;stroke-width:5")
		mx, my := midpoint(x1, y1, x2, y2)
		labelAt(canvas, mx, my-8, fmt.Sprintf("R%d", k+1), "#2e8b57")
	}
}

func drawOutlets(canvas *svg.SVG, t transform, outlets []scene.Outlet) {
	const bodyRadius = 7
	for _, o := range outlets {
		cx, cy := t.px(o.X), t.py(o.Y)
		canvas.Circle(cx, cy, bodyRadius, "fill:#ffffff;stroke:#333333;stroke-width:1")
		canvas.Rect(cx-4, cy-2, 3, 4, "fill:#ff0000")
		canvas.Rect(cx+1, cy-2, 3, 4, "fill:#ff0000")
	}
}

// drawBooths renders each placement twice — a wider white halo stroke
// beneath a black-stroked light-blue fill — for contrast against the
// hall outline and any overlapping infrastructure glyphs (spec §4.4).
func drawBooths(canvas *svg.SVG, t transform, placements []scene.Placement) {
	sorted := append([]scene.Placement(nil), placements...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for _, p := range sorted {
		x0, y0 := t.px(p.X), t.py(p.Y+p.Height)
		w, h := t.length(p.Width), t.length(p.Height)

		canvas.Rect(x0, y0, w, h, "fill:none;stroke:#ffffff;stroke-width:5")
		canvas.Rect(x0, y0, w, h, "fill:#add8e6;stroke:#000000;stroke-width:1.5")

		cx, cy := x0+w/2, y0+h/2
		canvas.Text(cx, cy, p.Name, "text-anchor:middle;dominant-baseline:middle;font-size:11px;font-family:sans-serif;fill:#000000")
	}
}

func labelAt(canvas *svg.SVG, x, y int, text, color string) {
	canvas.Text(x, y, text, fmt.Sprintf("text-anchor:middle;font-size:10px;font-family:sans-serif;fill:%s", color))
}

func midpoint(x1, y1, x2, y2 int) (int, int) {
	return (x1 + x2) / 2, (y1 + y2) / 2
}
