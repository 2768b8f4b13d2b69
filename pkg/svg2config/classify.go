package svg2config

import (
	"strconv"
	"strings"

	"github.com/dshills/boothopt/pkg/config"
)

// shapeClass names the canonical drawing classes the compiler assigns
// to recognized shapes.
type shapeClass string

const (
	classHall        shapeClass = "room"
	classOutlet      shapeClass = "outlet"
	classRail        shapeClass = "curtain-rail"
	classInnerWall   shapeClass = "inner-wall"
	classForbidden   shapeClass = "no-go"
)

var classToShapeTag = map[shapeClass]config.ShapeTag{
	classHall:      config.ShapeHall,
	classOutlet:    config.ShapeOutlet,
	classRail:      config.ShapeRail,
	classInnerWall: config.ShapeInnerWall,
	classForbidden: config.ShapeForbiddenZone,
}

// resolvePaint walks from n up through its ancestors looking for an
// explicit attribute (attrName, e.g. "fill" or "stroke") and falls back
// to the same key inside an inline "style" attribute. The first
// resolved, non-inherit value found (nearest ancestor wins) is
// normalized and returned. ok is false if nothing resolves.
func resolvePaint(n *node, attrName string) (string, bool) {
	for cur := n; cur != nil; cur = cur.parent {
		if v, ok := cur.attr(attrName); ok {
			if hex, ok := normalizeColor(v); ok {
				return hex, true
			}
			if v == "none" {
				return "", false
			}
		}
		if style, ok := cur.attr("style"); ok {
			if v, ok := styleProp(style, attrName); ok {
				if hex, ok := normalizeColor(v); ok {
					return hex, true
				}
				if v == "none" {
					return "", false
				}
			}
		}
	}
	return "", false
}

// resolveBandMM walks n up through its ancestors looking for a
// data-band-mm override, the nearest ancestor winning, and falls back
// to defaultBandMM when none is found or the value doesn't parse
// (original_source/svg2config.py's _get_data_band_mm).
func resolveBandMM(n *node) float64 {
	for cur := n; cur != nil; cur = cur.parent {
		v, ok := cur.attr("data-band-mm")
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			break
		}
		return f
	}
	return defaultBandMM
}

// styleProp extracts the value of prop from a "key:value;key:value"
// inline style string.
func styleProp(style, prop string) (string, bool) {
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(parts[0]) == prop {
			return strings.TrimSpace(parts[1]), true
		}
	}
	return "", false
}

// classTokens returns the whitespace-split tokens of n's "class"
// attribute plus its "id" attribute, as a single slice, for membership
// testing against the canonical class names.
func classTokens(n *node) []string {
	var toks []string
	if c, ok := n.attr("class"); ok {
		toks = append(toks, strings.Fields(c)...)
	}
	if id, ok := n.attr("id"); ok {
		toks = append(toks, id)
	}
	return toks
}

// hasClassToken walks n's ancestor chain (including n) looking for the
// given canonical class token among class/id attributes.
func hasClassToken(n *node, want shapeClass) bool {
	target := string(want)
	for cur := n; cur != nil; cur = cur.parent {
		for _, t := range classTokens(cur) {
			if strings.EqualFold(t, target) || strings.EqualFold(t, strings.ReplaceAll(target, "-", "_")) {
				return true
			}
		}
	}
	return false
}

// classify resolves a shape's canonical class. The hall/"room" class
// wins by id/class token even when color would also match (spec §4.1:
// "For room, the id token wins over color"). For every other class,
// class/id token and color-table match are both accepted, token first.
func classify(n *node, ct *config.ColorTable) (shapeClass, bool) {
	if hasClassToken(n, classHall) {
		return classHall, true
	}

	order := []shapeClass{classOutlet, classRail, classInnerWall, classForbidden}
	for _, c := range order {
		if hasClassToken(n, c) {
			return c, true
		}
	}

	if fill, ok := resolvePaint(n, "fill"); ok {
		if tag, ok := ct.Lookup(config.PaintFill, fill); ok {
			if c := shapeClassFor(tag); c != "" {
				return c, true
			}
		}
	}
	if stroke, ok := resolvePaint(n, "stroke"); ok {
		if tag, ok := ct.Lookup(config.PaintStroke, stroke); ok {
			if c := shapeClassFor(tag); c != "" {
				return c, true
			}
		}
	}

	return "", false
}

func shapeClassFor(tag config.ShapeTag) shapeClass {
	for c, t := range classToShapeTag {
		if t == tag {
			return c
		}
	}
	return ""
}
