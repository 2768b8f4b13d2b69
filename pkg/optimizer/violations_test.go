package optimizer

import (
	"testing"

	"github.com/dshills/boothopt/pkg/scene"
)

func hasKind(vs []Violation, kind string) bool {
	for _, v := range vs {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

func TestValidateFeasibleAssignmentHasNoViolations(t *testing.T) {
	s := &scene.Scene{
		Hall:         scene.Hall{Width: 10000, Depth: 8000, WallBand: 500, Aisle: 500},
		Requirements: scene.Requirements{CurtainRailMode: scene.RailModeNone},
		Booths: []scene.BoothRequest{
			{ID: 1, Width: 2000, Height: 2000},
			{ID: 2, Width: 2000, Height: 2000},
		},
	}
	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}
	asn := []Assignment{{X: 0, Y: 0}, {X: 3000, Y: 0}}
	if vs := Validate(m, asn); len(vs) != 0 {
		t.Fatalf("expected no violations, got %v", vs)
	}
}

func TestValidateDetectsContainment(t *testing.T) {
	s := &scene.Scene{
		Hall:         scene.Hall{Width: 1000, Depth: 1000},
		Requirements: scene.Requirements{CurtainRailMode: scene.RailModeNone},
		Booths:       []scene.BoothRequest{{ID: 1, Width: 2000, Height: 500}},
	}
	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}
	asn := []Assignment{{X: 0, Y: 0}}
	vs := Validate(m, asn)
	if !hasKind(vs, "containment") {
		t.Fatalf("expected a containment violation, got %v", vs)
	}
}

func TestValidateDetectsOverlapWithinAisle(t *testing.T) {
	s := &scene.Scene{
		Hall:         scene.Hall{Width: 10000, Depth: 8000, Aisle: 1000},
		Requirements: scene.Requirements{CurtainRailMode: scene.RailModeNone},
		Booths: []scene.BoothRequest{
			{ID: 1, Width: 1000, Height: 1000},
			{ID: 2, Width: 1000, Height: 1000},
		},
	}
	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}
	asn := []Assignment{{X: 0, Y: 0}, {X: 1200, Y: 0}}
	vs := Validate(m, asn)
	if !hasKind(vs, "overlap") {
		t.Fatalf("expected an overlap violation, got %v", vs)
	}
}

func TestValidateDetectsForbiddenZoneIntrusion(t *testing.T) {
	s := &scene.Scene{
		Hall:         scene.Hall{Width: 10000, Depth: 8000},
		Requirements: scene.Requirements{CurtainRailMode: scene.RailModeNone},
		Booths:       []scene.BoothRequest{{ID: 1, Width: 1000, Height: 1000}},
		ForbiddenZones: []scene.ForbiddenZone{
			{Zone: scene.Rect{Xmin: 0, Ymin: 0, Xmax: 2000, Ymax: 2000}},
		},
	}
	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}
	asn := []Assignment{{X: 500, Y: 500}}
	vs := Validate(m, asn)
	if !hasKind(vs, "forbidden_zone") {
		t.Fatalf("expected a forbidden_zone violation, got %v", vs)
	}
}

func TestValidateDetectsMissingRailAttachment(t *testing.T) {
	s := &scene.Scene{
		Hall:         scene.Hall{Width: 10000, Depth: 8000},
		Requirements: scene.Requirements{CurtainRailMode: scene.RailModeIfWanted},
		Booths:       []scene.BoothRequest{{ID: 1, Width: 2000, Height: 1000, WantCurtain: true}},
		Rails: []scene.CurtainRail{
			{P1: scene.Point{X: 0, Y: 0}, P2: scene.Point{X: 5000, Y: 0}},
		},
	}
	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}
	asn := []Assignment{{X: 1000, Y: 3000}} // not touching the rail
	vs := Validate(m, asn)
	if !hasKind(vs, "rail_attachment") {
		t.Fatalf("expected a rail_attachment violation, got %v", vs)
	}
}

func TestValidateArityMismatch(t *testing.T) {
	s := &scene.Scene{
		Hall:         scene.Hall{Width: 1000, Depth: 1000},
		Requirements: scene.Requirements{CurtainRailMode: scene.RailModeNone},
		Booths:       []scene.BoothRequest{{ID: 1, Width: 100, Height: 100}},
	}
	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}
	vs := Validate(m, nil)
	if len(vs) != 1 || vs[0].Kind != "arity" {
		t.Fatalf("expected a single arity violation, got %v", vs)
	}
}
