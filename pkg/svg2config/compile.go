package svg2config

import (
	"fmt"
	"math"

	"github.com/dshills/boothopt/pkg/config"
	"github.com/dshills/boothopt/pkg/scene"
)

// scaleFactor converts drawing units to millimeters. It is a
// build-time constant applied uniformly to every mm-valued field in
// the compiled scene (spec §4.1): hall, infrastructure, and the
// mm-valued subset of requirements. The exact ratio, not its rounded
// decimal, must be preserved (spec.md §9 DESIGN NOTES) to keep the
// compiled config consistent with externally-scaled booth data; this
// is the ratio the original compiler hard-codes as SCALE_OUT
// (original_source/svg2config.py:190).
const scaleFactor = 2108407.0 / 597700.0

// defaultBandMM is the fallback curtain-rail band width, in raw
// drawing units, when no ancestor of the rail element carries a
// data-band-mm override (original_source/svg2config.py:111-122).
const defaultBandMM = 1000.0

// alignTolerance is the maximum allowed deviation (in drawing units,
// before scaling) for a segment to be treated as axis-aligned.
const alignTolerance = 0.5

// Compile parses raw SVG bytes and produces the canonical scene
// description. ct selects the color table used for style-based
// classification; pass config.DefaultColorTable() when no override is
// supplied.
func Compile(data []byte, ct *config.ColorTable) (*scene.Scene, error) {
	root, err := parseSVG(data)
	if err != nil {
		return nil, fmt.Errorf("svg2config: parsing SVG: %w", err)
	}

	hallNode, err := findHall(root, ct)
	if err != nil {
		return nil, err
	}
	hxmin, hymin, hxmax, hymax, err := rectBBox(hallNode)
	if err != nil {
		return nil, fmt.Errorf("svg2config: hall rectangle: %w", err)
	}
	tf := transform{originX: hxmin, top: hymax}

	s := &scene.Scene{
		Hall: scene.Hall{
			Width: scaleRound(hxmax - hxmin),
			Depth: scaleRound(hymax - hymin),
		},
		Requirements: defaultRequirements(),
		Weights:      defaultWeights(),
	}

	outlets, err := extractOutlets(root, ct, tf)
	if err != nil {
		return nil, err
	}
	s.Outlets = outlets

	rails := extractRails(root, ct, tf)
	s.Rails = rails

	walls, err := extractInnerWalls(root, ct, tf)
	if err != nil {
		return nil, err
	}
	s.InnerWalls = walls

	zones, err := extractForbiddenZones(root, ct, tf)
	if err != nil {
		return nil, err
	}
	s.ForbiddenZones = zones

	// A compiler that produced a rail-requiring default against a hall
	// with zero rails would hand the constraint builder a contradiction
	// (spec §7); pre-empt it here rather than let it surface downstream.
	if len(s.Rails) == 0 {
		s.Requirements.CurtainRailMode = scene.RailModeNone
	}

	return s, nil
}

// transform maps a raw SVG point into the hall's own coordinate frame:
// x measured from the hall's left edge, y inverted so the hall's
// bottom edge (the largest SVG y) is y=0.
type transform struct {
	originX float64
	top     float64 // the hall rect's svg ymax, i.e. its bottom edge
}

func (t transform) apply(p point) point {
	return point{X: p.X - t.originX, Y: t.top - p.Y}
}

func scaleRound(v float64) int {
	return int(math.Round(v * scaleFactor))
}

func (t transform) scenePoint(p point) scene.Point {
	local := t.apply(p)
	return scene.Point{X: scaleRound(local.X), Y: scaleRound(local.Y)}
}

func findHall(root *node, ct *config.ColorTable) (*node, error) {
	for _, n := range root.findAll("rect") {
		if c, ok := classify(n, ct); ok && c == classHall {
			return n, nil
		}
	}
	return nil, fmt.Errorf("svg2config: no hall rectangle found")
}

func extractOutlets(root *node, ct *config.ColorTable, tf transform) ([]scene.Outlet, error) {
	var out []scene.Outlet
	for _, tag := range []string{"circle", "rect"} {
		for _, n := range root.findAll(tag) {
			if c, ok := classify(n, ct); !ok || c != classOutlet {
				continue
			}
			var center point
			var err error
			if tag == "circle" {
				center, err = circleCenter(n)
			} else {
				center, err = rectCenter(n)
			}
			if err != nil {
				return nil, fmt.Errorf("svg2config: outlet: %w", err)
			}
			p := tf.scenePoint(center)
			out = append(out, scene.Outlet{X: p.X, Y: p.Y})
		}
	}
	return out, nil
}

func extractRails(root *node, ct *config.ColorTable, tf transform) []scene.CurtainRail {
	var out []scene.CurtainRail
	for _, tag := range []string{"line", "path", "polyline"} {
		for _, n := range root.findAll(tag) {
			if c, ok := classify(n, ct); !ok || c != classRail {
				continue
			}
			p1, p2, err := segmentEndpoints(n, tag)
			if err != nil {
				continue // unparsable geometry: silently dropped, same as non-axis-aligned
			}
			rail, ok := alignedSegment(tf, p1, p2)
			if !ok {
				continue // non-axis-aligned rail: silently dropped (spec §4.1)
			}
			out = append(out, scene.CurtainRail{
				P1:        rail.P1,
				P2:        rail.P2,
				BandWidth: resolveBandMM(n) * scaleFactor,
			})
		}
	}
	return out
}

func extractInnerWalls(root *node, ct *config.ColorTable, tf transform) ([]scene.InnerWall, error) {
	var out []scene.InnerWall
	for _, n := range root.findAll("line") {
		if c, ok := classify(n, ct); !ok || c != classInnerWall {
			continue
		}
		p1, p2, err := lineEndpoints(n)
		if err != nil {
			return nil, fmt.Errorf("svg2config: inner wall: %w", err)
		}
		seg, ok := alignedSegment(tf, p1, p2)
		if !ok {
			// Unlike rails, a non-axis-aligned inner wall is a fatal
			// compile error: inner walls gate non-crossing constraints
			// that the solver cannot express for a diagonal segment.
			return nil, fmt.Errorf("svg2config: inner wall from (%v,%v) to (%v,%v) is not axis-aligned", p1.X, p1.Y, p2.X, p2.Y)
		}
		attachable := true
		if v, ok := n.attr("data-attachable"); ok {
			attachable = v != "false" && v != "0"
		}
		out = append(out, scene.InnerWall{
			P1:         seg.P1,
			P2:         seg.P2,
			Thickness:  parseFloatAttrDefault(n, "stroke-width", 1) * scaleFactor,
			Attachable: attachable,
		})
	}
	return out, nil
}

func extractForbiddenZones(root *node, ct *config.ColorTable, tf transform) ([]scene.ForbiddenZone, error) {
	var out []scene.ForbiddenZone
	for _, n := range root.findAll("rect") {
		if c, ok := classify(n, ct); !ok || c != classForbidden {
			continue
		}
		xmin, ymin, xmax, ymax, err := rectBBox(n)
		if err != nil {
			return nil, fmt.Errorf("svg2config: forbidden zone: %w", err)
		}
		out = append(out, zoneFromBBox(tf, xmin, ymin, xmax, ymax))
	}
	for _, n := range root.findAll("polygon") {
		if c, ok := classify(n, ct); !ok || c != classForbidden {
			continue
		}
		xmin, ymin, xmax, ymax, err := polygonBBox(n)
		if err != nil {
			return nil, fmt.Errorf("svg2config: forbidden zone: %w", err)
		}
		out = append(out, zoneFromBBox(tf, xmin, ymin, xmax, ymax))
	}
	return out, nil
}

func zoneFromBBox(tf transform, xmin, ymin, xmax, ymax float64) scene.ForbiddenZone {
	// ymin/ymax swap under y-inversion: the svg-top corner becomes the
	// canonical-top (larger y) corner.
	p1 := tf.scenePoint(point{xmin, ymax})
	p2 := tf.scenePoint(point{xmax, ymin})
	return scene.ForbiddenZone{Zone: scene.Rect{
		Xmin: minInt(p1.X, p2.X), Ymin: minInt(p1.Y, p2.Y),
		Xmax: maxInt(p1.X, p2.X), Ymax: maxInt(p1.Y, p2.Y),
	}}
}

func segmentEndpoints(n *node, tag string) (p1, p2 point, err error) {
	switch tag {
	case "line":
		return lineEndpoints(n)
	case "path":
		return firstLastEndpoints(n, "d")
	case "polyline":
		return firstLastEndpoints(n, "points")
	default:
		return point{}, point{}, fmt.Errorf("unsupported rail tag %q", tag)
	}
}

type alignedSeg struct {
	P1, P2 scene.Point
}

// alignedSegment classifies a raw segment as horizontal or vertical
// within alignTolerance (pre-scale, pre-transform units) and snaps it
// to an exact axis-aligned line in the hall's coordinate frame. ok is
// false for a segment that is neither.
func alignedSegment(tf transform, rawP1, rawP2 point) (alignedSeg, bool) {
	a := tf.apply(rawP1)
	b := tf.apply(rawP2)

	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)

	switch {
	case dy <= alignTolerance:
		y := (a.Y + b.Y) / 2
		return alignedSeg{
			P1: scene.Point{X: scaleRound(a.X), Y: scaleRound(y)},
			P2: scene.Point{X: scaleRound(b.X), Y: scaleRound(y)},
		}, true
	case dx <= alignTolerance:
		x := (a.X + b.X) / 2
		return alignedSeg{
			P1: scene.Point{X: scaleRound(x), Y: scaleRound(a.Y)},
			P2: scene.Point{X: scaleRound(x), Y: scaleRound(b.Y)},
		}, true
	default:
		return alignedSeg{}, false
	}
}

func defaultRequirements() scene.Requirements {
	return scene.Requirements{
		CurtainRailMode:      scene.RailModeIfWanted,
		PreferredAreaDefault: scene.PreferredAreaSoft,
		FrontClearMode:       scene.FrontClearSoft,
	}
}

func defaultWeights() scene.Weights {
	return scene.Weights{
		Compactness:      1,
		WallContactBonus: 1,
		OutletDistance:   1,
		CurtainRailMatch: 1,
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
