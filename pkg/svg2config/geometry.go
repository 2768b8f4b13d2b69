package svg2config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type point struct{ X, Y float64 }

// numberRE matches a single signed decimal (optionally scientific
// notation) number, used to pull coordinate pairs out of "points" and
// path "d" attribute strings without implementing a full path grammar.
var numberRE = regexp.MustCompile(`-?\d+(?:\.\d+)?(?:[eE][-+]?\d+)?`)

func parseFloatAttr(n *node, name string) (float64, error) {
	v, ok := n.attr(name)
	if !ok {
		return 0, fmt.Errorf("<%s>: missing attribute %q", n.XMLName.Local, name)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("<%s>: attribute %q: %w", n.XMLName.Local, name, err)
	}
	return f, nil
}

func parseFloatAttrDefault(n *node, name string, def float64) float64 {
	f, err := parseFloatAttr(n, name)
	if err != nil {
		return def
	}
	return f
}

// circleCenter returns a <circle>'s center point.
func circleCenter(n *node) (point, error) {
	cx, err := parseFloatAttr(n, "cx")
	if err != nil {
		return point{}, err
	}
	cy, err := parseFloatAttr(n, "cy")
	if err != nil {
		return point{}, err
	}
	return point{cx, cy}, nil
}

// rectBBox returns a <rect>'s bounding box as (xmin, ymin, xmax, ymax)
// in the drawing's own (pre-inversion) coordinate space.
func rectBBox(n *node) (xmin, ymin, xmax, ymax float64, err error) {
	x, err := parseFloatAttr(n, "x")
	if err != nil {
		return
	}
	y, err := parseFloatAttr(n, "y")
	if err != nil {
		return
	}
	w, err := parseFloatAttr(n, "width")
	if err != nil {
		return
	}
	h, err := parseFloatAttr(n, "height")
	if err != nil {
		return
	}
	return x, y, x + w, y + h, nil
}

// rectCenter returns a <rect>'s center point.
func rectCenter(n *node) (point, error) {
	xmin, ymin, xmax, ymax, err := rectBBox(n)
	if err != nil {
		return point{}, err
	}
	return point{(xmin + xmax) / 2, (ymin + ymax) / 2}, nil
}

// extractPoints pulls every (x,y) coordinate pair out of a numeric
// attribute value (a "points" list or a path "d" string), in order.
func extractPoints(s string) []point {
	nums := numberRE.FindAllString(s, -1)
	var pts []point
	for i := 0; i+1 < len(nums); i += 2 {
		x, errX := strconv.ParseFloat(nums[i], 64)
		y, errY := strconv.ParseFloat(nums[i+1], 64)
		if errX != nil || errY != nil {
			continue
		}
		pts = append(pts, point{x, y})
	}
	return pts
}

// lineEndpoints returns a <line>'s two endpoints.
func lineEndpoints(n *node) (p1, p2 point, err error) {
	x1, err := parseFloatAttr(n, "x1")
	if err != nil {
		return
	}
	y1, err := parseFloatAttr(n, "y1")
	if err != nil {
		return
	}
	x2, err := parseFloatAttr(n, "x2")
	if err != nil {
		return
	}
	y2, err := parseFloatAttr(n, "y2")
	if err != nil {
		return
	}
	return point{x1, y1}, point{x2, y2}, nil
}

// firstLastEndpoints returns the first and last coordinate pairs found
// in a <path> "d" attribute or a <polyline>/<polygon> "points"
// attribute. This is the shared rule behind rail extraction from
// "line, path, or polyline" (spec §4.1): take the first and last
// points, regardless of the intermediate command structure.
func firstLastEndpoints(n *node, attrName string) (p1, p2 point, err error) {
	v, ok := n.attr(attrName)
	if !ok {
		return point{}, point{}, fmt.Errorf("<%s>: missing attribute %q", n.XMLName.Local, attrName)
	}
	pts := extractPoints(v)
	if len(pts) < 2 {
		return point{}, point{}, fmt.Errorf("<%s>: %q has fewer than two points", n.XMLName.Local, attrName)
	}
	return pts[0], pts[len(pts)-1], nil
}

// polygonBBox returns a <polygon>'s bounding box over all its points.
func polygonBBox(n *node) (xmin, ymin, xmax, ymax float64, err error) {
	v, ok := n.attr("points")
	if !ok {
		return 0, 0, 0, 0, fmt.Errorf("<polygon>: missing attribute %q", "points")
	}
	pts := extractPoints(v)
	if len(pts) == 0 {
		return 0, 0, 0, 0, fmt.Errorf("<polygon>: no points parsed from %q", v)
	}
	xmin, ymin = pts[0].X, pts[0].Y
	xmax, ymax = pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < xmin {
			xmin = p.X
		}
		if p.X > xmax {
			xmax = p.X
		}
		if p.Y < ymin {
			ymin = p.Y
		}
		if p.Y > ymax {
			ymax = p.Y
		}
	}
	return xmin, ymin, xmax, ymax, nil
}
