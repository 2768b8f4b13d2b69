package optimizer

import (
	"testing"

	"github.com/dshills/boothopt/pkg/scene"
)

func baseScene() *scene.Scene {
	return &scene.Scene{
		Hall:         scene.Hall{Width: 10000, Depth: 8000, WallBand: 500, Aisle: 1000},
		Requirements: scene.Requirements{CurtainRailMode: scene.RailModeIfWanted},
		Booths: []scene.BoothRequest{
			{ID: 1, Name: "A", Width: 2000, Height: 2000},
			{ID: 2, Name: "B", Width: 3000, Height: 2000, WantCurtain: true},
		},
		Rails: []scene.CurtainRail{
			{P1: scene.Point{X: 0, Y: 0}, P2: scene.Point{X: 10000, Y: 0}},
		},
	}
}

func TestBuildModelClassifiesRails(t *testing.T) {
	s := baseScene()
	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}
	if len(m.HRails) != 1 || len(m.VRails) != 0 {
		t.Fatalf("expected one horizontal rail, got h=%d v=%d", len(m.HRails), len(m.VRails))
	}
	if !m.RailRequired[1] || m.RailRequired[0] {
		t.Fatalf("unexpected RailRequired: %v", m.RailRequired)
	}
}

func TestBuildModelFailsWhenRailRequiredButNoneExist(t *testing.T) {
	s := baseScene()
	s.Rails = nil
	if _, err := BuildModel(s); err == nil {
		t.Fatal("expected error when a rail-required booth exists with zero rails")
	}
}

func TestBuildModelRejectsDiagonalInnerWall(t *testing.T) {
	s := baseScene()
	s.InnerWalls = []scene.InnerWall{
		{P1: scene.Point{X: 0, Y: 0}, P2: scene.Point{X: 100, Y: 100}},
	}
	if _, err := BuildModel(s); err == nil {
		t.Fatal("expected error for non-axis-aligned inner wall")
	}
}

func TestDerive(t *testing.T) {
	b := scene.BoothRequest{ID: 1, Width: 2000, Height: 1000}

	flat := Derive(b, Assignment{X: 100, Y: 200, R: false})
	if flat.WEff != 2000 || flat.HEff != 1000 || flat.Right != 2100 || flat.Top != 1200 {
		t.Fatalf("unexpected unrotated derive: %+v", flat)
	}

	rot := Derive(b, Assignment{X: 100, Y: 200, R: true})
	if rot.WEff != 1000 || rot.HEff != 2000 || rot.Right != 1100 || rot.Top != 2200 {
		t.Fatalf("unexpected rotated derive: %+v", rot)
	}

	if flat.CX2 != 2*100+2000 || flat.CY2 != 2*200+1000 {
		t.Fatalf("unexpected doubled center: %+v", flat)
	}
}

func TestSortSegmentsOrdersByFixedThenLo(t *testing.T) {
	segs := []railSegment{
		{Fixed: 500, Lo: 100, Hi: 200},
		{Fixed: 100, Lo: 300, Hi: 400},
		{Fixed: 100, Lo: 50, Hi: 90},
	}
	sortSegments(segs)
	if segs[0].Fixed != 100 || segs[0].Lo != 50 {
		t.Fatalf("unexpected order: %+v", segs)
	}
	if segs[1].Fixed != 100 || segs[1].Lo != 300 {
		t.Fatalf("unexpected order: %+v", segs)
	}
	if segs[2].Fixed != 500 {
		t.Fatalf("unexpected order: %+v", segs)
	}
}
