package optimizer

import (
	"context"
	"testing"

	"github.com/dshills/boothopt/pkg/scene"
)

func TestStatusSuccess(t *testing.T) {
	if !StatusOptimal.Success() || !StatusFeasible.Success() {
		t.Fatal("expected OPTIMAL and FEASIBLE to be success statuses")
	}
	if StatusInfeasible.Success() || StatusModelInvalid.Success() || StatusUnknown.Success() {
		t.Fatal("expected INFEASIBLE, MODEL_INVALID and UNKNOWN to be non-success statuses")
	}
}

func TestRegistryListIncludesLocalSearch(t *testing.T) {
	found := false
	for _, name := range List() {
		if name == "local_search" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected local_search to be registered")
	}
}

func TestGetUnknownSolverErrors(t *testing.T) {
	if _, err := Get("does_not_exist", scene.SolverConfig{}); err == nil {
		t.Fatal("expected an error for an unregistered solver name")
	}
}

func TestSolveEmptySceneIsTriviallyOptimal(t *testing.T) {
	s := &scene.Scene{
		Hall:         scene.Hall{Width: 10000, Depth: 8000},
		Requirements: scene.Requirements{CurtainRailMode: scene.RailModeNone},
		Solver:       scene.SolverConfig{MaxTimeInSeconds: 0.2, Workers: 1, Seed: 42},
	}
	res, err := Solve(context.Background(), s, "local_search")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Status != StatusOptimal {
		t.Fatalf("expected trivial OPTIMAL for zero booths, got %v", res.Status)
	}
	if len(res.Assignments) != 0 {
		t.Fatalf("expected no assignments, got %v", res.Assignments)
	}
}

func TestSolveSmallSceneFindsFeasiblePlacement(t *testing.T) {
	s := &scene.Scene{
		Hall:         scene.Hall{Width: 20000, Depth: 15000, Aisle: 500},
		Requirements: scene.Requirements{CurtainRailMode: scene.RailModeNone},
		Weights:      scene.Weights{Compactness: 1},
		Booths: []scene.BoothRequest{
			{ID: 1, Name: "A", Width: 3000, Height: 2000},
			{ID: 2, Name: "B", Width: 2000, Height: 2000},
			{ID: 3, Name: "C", Width: 4000, Height: 3000},
		},
		Solver: scene.SolverConfig{MaxTimeInSeconds: 1, Workers: 2, Seed: 7},
	}
	res, err := Solve(context.Background(), s, "local_search")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.Status.Success() {
		t.Fatalf("expected a feasible placement within budget, got %v", res.Status)
	}
	if len(res.Assignments) != len(s.Booths) {
		t.Fatalf("expected one assignment per booth, got %d", len(res.Assignments))
	}

	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}
	if vs := Validate(m, res.Assignments); len(vs) != 0 {
		t.Fatalf("expected the solver's own result to validate clean, got %v", vs)
	}
}

func TestSolveUnknownSolverNameFails(t *testing.T) {
	s := &scene.Scene{
		Hall:         scene.Hall{Width: 1000, Depth: 1000},
		Requirements: scene.Requirements{CurtainRailMode: scene.RailModeNone},
	}
	if _, err := Solve(context.Background(), s, "not_a_real_solver"); err == nil {
		t.Fatal("expected an error for an unknown solver name")
	}
}
