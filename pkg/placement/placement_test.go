package placement

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/boothopt/pkg/optimizer"
	"github.com/dshills/boothopt/pkg/scene"
)

func testModel(t *testing.T) *optimizer.Model {
	t.Helper()
	s := &scene.Scene{
		Hall:         scene.Hall{Width: 10000, Depth: 8000, Aisle: 500},
		Requirements: scene.Requirements{CurtainRailMode: scene.RailModeNone},
		Booths: []scene.BoothRequest{
			{ID: 1, Name: "Acme", Width: 2000, Height: 1000},
			{ID: 2, Name: "Globex", Width: 1500, Height: 1500},
		},
	}
	m, err := optimizer.BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}
	return m
}

func TestFromResultReadsBackEffectiveDimensions(t *testing.T) {
	m := testModel(t)
	res := optimizer.Result{
		Status: optimizer.StatusFeasible,
		Assignments: []optimizer.Assignment{
			{X: 0, Y: 0, R: true},
			{X: 3000, Y: 0, R: false},
		},
	}
	placements, err := FromResult(m, res)
	if err != nil {
		t.Fatalf("FromResult: %v", err)
	}
	if placements[0].Width != 1000 || placements[0].Height != 2000 {
		t.Fatalf("expected rotated dimensions swapped, got %dx%d", placements[0].Width, placements[0].Height)
	}
	if placements[1].Width != 1500 || placements[1].Height != 1500 {
		t.Fatalf("unexpected unrotated dimensions: %dx%d", placements[1].Width, placements[1].Height)
	}
}

func TestFromResultRejectsNonSuccessStatus(t *testing.T) {
	m := testModel(t)
	res := optimizer.Result{Status: optimizer.StatusInfeasible}
	if _, err := FromResult(m, res); err == nil {
		t.Fatal("expected an error for a non-success status")
	}
}

func TestAssertInvariantsAcceptsFeasiblePlacement(t *testing.T) {
	m := testModel(t)
	placements := []scene.Placement{
		{ID: 1, Name: "Acme", X: 0, Y: 0, Width: 2000, Height: 1000, Rotated: false},
		{ID: 2, Name: "Globex", X: 3000, Y: 0, Width: 1500, Height: 1500, Rotated: false},
	}
	if err := AssertInvariants(m, placements); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestAssertInvariantsRejectsOverlap(t *testing.T) {
	m := testModel(t)
	placements := []scene.Placement{
		{ID: 1, Name: "Acme", X: 0, Y: 0, Width: 2000, Height: 1000, Rotated: false},
		{ID: 2, Name: "Globex", X: 100, Y: 0, Width: 1500, Height: 1500, Rotated: false},
	}
	if err := AssertInvariants(m, placements); err == nil {
		t.Fatal("expected an overlap to be rejected")
	}
}

func TestAssertInvariantsRejectsDimensionMismatch(t *testing.T) {
	m := testModel(t)
	placements := []scene.Placement{
		{ID: 1, Name: "Acme", X: 0, Y: 0, Width: 1000, Height: 1000, Rotated: false},
		{ID: 2, Name: "Globex", X: 3000, Y: 0, Width: 1500, Height: 1500, Rotated: false},
	}
	if err := AssertInvariants(m, placements); err == nil {
		t.Fatal("expected a dimension mismatch to be rejected")
	}
}

func TestEmitWritesCSVAndBacksUpPrevious(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "placements.csv")

	first := []scene.Placement{
		{ID: 1, Name: "Acme", X: 0, Y: 0, Width: 2000, Height: 1000, Rotated: false},
	}
	if err := Emit(path, first); err != nil {
		t.Fatalf("Emit (first): %v", err)
	}
	if _, err := os.Stat(path + ".prev"); !os.IsNotExist(err) {
		t.Fatalf("expected no .prev backup on first write, stat err=%v", err)
	}

	second := []scene.Placement{
		{ID: 1, Name: "Acme", X: 500, Y: 0, Width: 2000, Height: 1000, Rotated: false},
	}
	if err := Emit(path, second); err != nil {
		t.Fatalf("Emit (second): %v", err)
	}
	if _, err := os.Stat(path + ".prev"); err != nil {
		t.Fatalf("expected a .prev backup after the second write: %v", err)
	}

	prevData, err := os.ReadFile(path + ".prev")
	if err != nil {
		t.Fatalf("reading .prev: %v", err)
	}
	if !strings.Contains(string(prevData), ",0,0,2000,1000,0") {
		t.Fatalf(".prev did not contain the first write's row: %s", prevData)
	}

	curData, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading current table: %v", err)
	}
	if !strings.Contains(string(curData), ",500,0,2000,1000,0") {
		t.Fatalf("current table did not contain the second write's row: %s", curData)
	}
}
