package svg2config

import (
	"encoding/xml"
	"testing"
)

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func TestExtractPoints(t *testing.T) {
	pts := extractPoints("M 0,0 L 100,0 L 100.5,-20.25 L 0,0")
	if len(pts) != 4 {
		t.Fatalf("got %d points, want 4: %+v", len(pts), pts)
	}
	if pts[0] != (point{0, 0}) {
		t.Errorf("first point = %+v, want (0,0)", pts[0])
	}
	if pts[2] != (point{100.5, -20.25}) {
		t.Errorf("third point = %+v, want (100.5,-20.25)", pts[2])
	}
}

func TestFirstLastEndpointsPolyline(t *testing.T) {
	n := &node{Attrs: []xml.Attr{attr("points", "0,0 50,50 100,0")}}
	p1, p2, err := firstLastEndpoints(n, "points")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1 != (point{0, 0}) || p2 != (point{100, 0}) {
		t.Errorf("got p1=%+v p2=%+v, want (0,0) and (100,0)", p1, p2)
	}
}

func TestPolygonBBox(t *testing.T) {
	n := &node{Attrs: []xml.Attr{attr("points", "10,10 50,10 50,40 10,40")}}
	xmin, ymin, xmax, ymax, err := polygonBBox(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if xmin != 10 || ymin != 10 || xmax != 50 || ymax != 40 {
		t.Errorf("bbox = (%v,%v,%v,%v), want (10,10,50,40)", xmin, ymin, xmax, ymax)
	}
}
