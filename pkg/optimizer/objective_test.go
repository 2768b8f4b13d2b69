package optimizer

import (
	"testing"

	"github.com/dshills/boothopt/pkg/scene"
)

func TestScaleWeight(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{1.0, 100},
		{0.5, 50},
		{0.005, 0},
		{2.345, 235},
	}
	for _, c := range cases {
		if got := scaleWeight(c.in); got != c.want {
			t.Errorf("scaleWeight(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCompactnessTermPrefersTighterBoundingBox(t *testing.T) {
	m := &Model{
		Scene: &scene.Scene{Weights: scene.Weights{Compactness: 1}},
		Booths: []scene.BoothRequest{
			{ID: 1, Width: 1000, Height: 1000},
			{ID: 2, Width: 1000, Height: 1000},
		},
	}
	tight := []Assignment{{X: 0, Y: 0}, {X: 1000, Y: 0}}
	loose := []Assignment{{X: 0, Y: 0}, {X: 5000, Y: 0}}

	tightScore := score(m, tight)
	looseScore := score(m, loose)
	if tightScore <= looseScore {
		t.Fatalf("expected a tighter bounding box to score higher: tight=%d loose=%d", tightScore, looseScore)
	}
}

func TestOutletTermsRewardsProximityForWanters(t *testing.T) {
	m := &Model{
		Scene: &scene.Scene{
			Weights: scene.Weights{OutletDistance: 1},
			Outlets: []scene.Outlet{{X: 0, Y: 0}},
		},
		Booths: []scene.BoothRequest{{ID: 1, Width: 1000, Height: 1000, WantOutlet: true}},
	}
	near := []Assignment{{X: 0, Y: 0}}
	far := []Assignment{{X: 8000, Y: 8000}}

	nearScore := score(m, near)
	farScore := score(m, far)
	if nearScore <= farScore {
		t.Fatalf("expected a wanter placed near its outlet to score higher: near=%d far=%d", nearScore, farScore)
	}
}

func TestRailMatchTermRewardsAttachment(t *testing.T) {
	m := &Model{
		Scene:  &scene.Scene{Weights: scene.Weights{CurtainRailMatch: 1}},
		Booths: []scene.BoothRequest{{ID: 1, Width: 2000, Height: 1000, WantCurtain: true}},
		HRails: []railSegment{{Fixed: 0, Lo: 0, Hi: 5000}},
	}
	attached := []Assignment{{X: 1000, Y: 0}}
	notAttached := []Assignment{{X: 1000, Y: 3000}}

	if score(m, attached) <= score(m, notAttached) {
		t.Fatal("expected rail attachment to score strictly higher")
	}
}

func TestPreferredAreaTermOnlyRewardsSoftPreferences(t *testing.T) {
	pref := scene.Rect{Xmin: 0, Ymin: 0, Xmax: 2000, Ymax: 2000}
	m := &Model{
		Scene: &scene.Scene{
			Weights:      scene.Weights{PreferredAreaBonus: 1},
			Requirements: scene.Requirements{PreferredAreaDefault: scene.PreferredAreaSoft},
		},
		Booths: []scene.BoothRequest{{ID: 1, Width: 1000, Height: 1000, Pref: &pref}},
	}
	inside := []Assignment{{X: 500, Y: 500}}
	outside := []Assignment{{X: 8000, Y: 8000}}

	if score(m, inside) <= score(m, outside) {
		t.Fatal("expected being inside the soft preferred area to score strictly higher")
	}
}
