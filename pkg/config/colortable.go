package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ShapeTag names the class of drawing primitive a color maps to.
type ShapeTag string

const (
	ShapeOutlet        ShapeTag = "outlet"
	ShapeRail          ShapeTag = "rail"
	ShapeInnerWall     ShapeTag = "inner_wall"
	ShapeForbiddenZone ShapeTag = "forbidden_zone"
	ShapeHall          ShapeTag = "hall"
)

// PaintAttr is which SVG paint attribute a color rule applies to.
type PaintAttr string

const (
	PaintFill   PaintAttr = "fill"
	PaintStroke PaintAttr = "stroke"
)

// ColorRule maps a normalized hex color to a shape tag under a given
// paint attribute.
type ColorRule struct {
	Shape ShapeTag  `yaml:"shape"`
	Paint PaintAttr `yaml:"paint"`
	Hex   string    `yaml:"hex"`
	Class string    `yaml:"class,omitempty"`
}

// ColorTable resolves a normalized color-and-paint-attribute pair to a
// shape tag, for the svg2config compiler's style-based classification
// (spec §4.1). It supplements (never replaces) class/id-token-based
// classification.
type ColorTable struct {
	Rules []ColorRule `yaml:"rules"`

	byKey map[string]ShapeTag
}

type colorTableDoc struct {
	Rules []ColorRule `yaml:"rules"`
}

// LoadColorTable reads a YAML color-table override file. A missing or
// unreadable file is returned as an error; this function does not fall
// back to DefaultColorTable.
func LoadColorTable(path string) (*ColorTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading color table: %w", err)
	}
	return LoadColorTableFromBytes(data)
}

// LoadColorTableFromBytes parses a YAML color-table override from bytes.
func LoadColorTableFromBytes(data []byte) (*ColorTable, error) {
	var doc colorTableDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing color table YAML: %w", err)
	}
	ct := &ColorTable{Rules: doc.Rules}
	ct.index()
	return ct, nil
}

// DefaultColorTable returns the built-in fill/stroke color conventions
// used when no override color table is supplied (spec §6: "Built-in
// defaults apply if absent").
func DefaultColorTable() *ColorTable {
	ct := &ColorTable{Rules: []ColorRule{
		{Shape: ShapeOutlet, Paint: PaintFill, Hex: "#ffcc00"},
		{Shape: ShapeOutlet, Paint: PaintStroke, Hex: "#ffcc00"},
		{Shape: ShapeRail, Paint: PaintStroke, Hex: "#2e8b57"},
		{Shape: ShapeInnerWall, Paint: PaintStroke, Hex: "#000000"},
		{Shape: ShapeForbiddenZone, Paint: PaintFill, Hex: "#ff0000"},
		{Shape: ShapeHall, Paint: PaintStroke, Hex: "#000000"},
	}}
	ct.index()
	return ct
}

func (ct *ColorTable) index() {
	ct.byKey = make(map[string]ShapeTag, len(ct.Rules))
	for _, r := range ct.Rules {
		ct.byKey[key(r.Paint, r.Hex)] = r.Shape
	}
}

// Lookup resolves a normalized hex color under a paint attribute to a
// shape tag. ok is false when no rule matches.
func (ct *ColorTable) Lookup(paint PaintAttr, normalizedHex string) (ShapeTag, bool) {
	if ct == nil || ct.byKey == nil {
		return "", false
	}
	shape, ok := ct.byKey[key(paint, normalizedHex)]
	return shape, ok
}

func key(paint PaintAttr, hex string) string {
	return string(paint) + ":" + hex
}
