package render

import (
	"strings"
	"testing"

	"github.com/dshills/boothopt/pkg/scene"
)

func sampleScene() *scene.Scene {
	return &scene.Scene{
		Hall:    scene.Hall{Width: 10000, Depth: 6000, WallBand: 500, Aisle: 1000},
		Outlets: []scene.Outlet{{X: 500, Y: 500}},
		Rails: []scene.CurtainRail{
			{P1: scene.Point{X: 0, Y: 6000}, P2: scene.Point{X: 10000, Y: 6000}},
		},
		InnerWalls: []scene.InnerWall{
			{P1: scene.Point{X: 5000, Y: 0}, P2: scene.Point{X: 5000, Y: 3000}},
		},
		ForbiddenZones: []scene.ForbiddenZone{
			{Zone: scene.Rect{Xmin: 0, Ymin: 0, Xmax: 1000, Ymax: 1000}},
		},
	}
}

func samplePlacements() []scene.Placement {
	return []scene.Placement{
		{ID: 2, Name: "Globex", X: 3000, Y: 0, Width: 2000, Height: 1500, Rotated: false},
		{ID: 1, Name: "Acme", X: 0, Y: 2000, Width: 1500, Height: 2000, Rotated: true},
	}
}

func TestRenderSVGProducesWellFormedDocument(t *testing.T) {
	data, err := RenderSVG(sampleScene(), samplePlacements(), DefaultOptions())
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("expected a well-formed svg document, got: %s", out)
	}
	if !strings.Contains(out, "Acme") || !strings.Contains(out, "Globex") {
		t.Fatalf("expected both booth names to appear, got: %s", out)
	}
	if !strings.Contains(out, "R1") {
		t.Fatalf("expected the rail label R1, got: %s", out)
	}
	if !strings.Contains(out, "W1") {
		t.Fatalf("expected the inner wall label W1, got: %s", out)
	}
}

func TestRenderSVGRejectsNilScene(t *testing.T) {
	if _, err := RenderSVG(nil, nil, DefaultOptions()); err == nil {
		t.Fatal("expected an error for a nil scene")
	}
}

func TestOptionsNormalizedAppliesDefaults(t *testing.T) {
	o := Options{}.normalized()
	if o.PixelsPerMM <= 0 || o.Margin < 0 {
		t.Fatalf("expected normalized defaults, got %+v", o)
	}
}

func TestRenderSVGHandlesEmptyScene(t *testing.T) {
	s := &scene.Scene{Hall: scene.Hall{Width: 5000, Depth: 4000}}
	data, err := RenderSVG(s, nil, DefaultOptions())
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty output for an empty scene")
	}
}
