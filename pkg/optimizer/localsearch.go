package optimizer

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math"
	"sync"

	"github.com/dshills/boothopt/pkg/rng"
	"github.com/dshills/boothopt/pkg/scene"
)

func init() {
	Register("local_search", newLocalSearchSolver)
}

// violationPenalty dominates the objective so that the search always
// prefers fewer hard-constraint violations over a higher raw score;
// only once two candidates tie on violation count does the objective
// break the tie.
const violationPenalty = 1_000_000

// localSearchSolver is the one registered Solver. In place of an
// external CP-SAT/MIP solver (see DESIGN.md for why none is wired), it
// runs a deterministic simulated-annealing search per worker: a
// shelf-packing construction followed by randomized repair moves
// (reposition, rotate, swap), scored by the objective of objective.go
// plus the hard-violation penalty above.
type localSearchSolver struct {
	cfg scene.SolverConfig
}

func newLocalSearchSolver(cfg scene.SolverConfig) Solver {
	return &localSearchSolver{cfg: cfg.Normalized()}
}

func (s *localSearchSolver) Name() string { return "local_search" }

func (s *localSearchSolver) Solve(ctx context.Context, m *Model) (Result, error) {
	n := len(m.Booths)
	if n == 0 {
		return Result{Status: StatusOptimal, Assignments: []Assignment{}}, nil
	}

	sceneHash := sceneHash(m.Scene)

	type workerOutcome struct {
		asn  []Assignment
		viol int
		sc   int
	}

	outcomes := make([]workerOutcome, s.cfg.Workers)
	var wg sync.WaitGroup
	for w := 0; w < s.cfg.Workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			asn, viol, sc := runWorker(ctx, m, s.cfg.Seed, w, sceneHash)
			outcomes[w] = workerOutcome{asn, viol, sc}
		}()
	}
	wg.Wait()

	bestIdx := -1
	for i, o := range outcomes {
		if bestIdx == -1 || better(o.viol, o.sc, outcomes[bestIdx].viol, outcomes[bestIdx].sc) {
			bestIdx = i
		}
	}
	best := outcomes[bestIdx]

	if best.viol > 0 {
		// A heuristic search cannot certify infeasibility; report UNKNOWN
		// rather than overclaiming INFEASIBLE (spec §7).
		return Result{Status: StatusUnknown}, fmt.Errorf("optimizer: no feasible placement found within the time budget (%d hard violations remain)", best.viol)
	}
	return Result{Status: StatusFeasible, Assignments: best.asn, Objective: best.sc}, nil
}

// better reports whether (violA, scoreA) should be preferred over
// (violB, scoreB): strictly fewer violations wins outright; a tie
// breaks on higher objective score.
func better(violA, scoreA, violB, scoreB int) bool {
	if violA != violB {
		return violA < violB
	}
	return scoreA > scoreB
}

func cost(viol, sc int) int {
	return viol*violationPenalty - sc
}

func runWorker(ctx context.Context, m *Model, masterSeed uint64, workerID int, sceneHashBytes []byte) (best []Assignment, bestViol, bestScore int) {
	r := rng.NewRNG(masterSeed, fmt.Sprintf("solver_worker_%d", workerID), sceneHashBytes)

	cur := constructInitial(m, r)
	curViol := len(Validate(m, cur))
	curScore := score(m, cur)
	curCost := cost(curViol, curScore)

	best = cloneAssignments(cur)
	bestViol, bestScore = curViol, curScore

	temp := 1.0
	const coolRate = 0.99995
	const minTemp = 0.01

	for iter := 0; ; iter++ {
		if iter%256 == 0 {
			select {
			case <-ctx.Done():
				return best, bestViol, bestScore
			default:
			}
		}

		cand := proposeMove(m, cur, r)
		candViol := len(Validate(m, cand))
		candScore := score(m, cand)
		candCost := cost(candViol, candScore)

		if acceptMove(curCost, candCost, temp, r) {
			cur, curViol, curScore, curCost = cand, candViol, candScore, candCost
			if better(curViol, curScore, bestViol, bestScore) {
				best = cloneAssignments(cur)
				bestViol, bestScore = curViol, curScore
			}
		}

		temp *= coolRate
		if temp < minTemp {
			temp = minTemp
		}
	}
}

func acceptMove(curCost, candCost int, temp float64, r *rng.RNG) bool {
	if candCost <= curCost {
		return true
	}
	delta := float64(candCost - curCost)
	p := math.Exp(-delta / (temp * float64(violationPenalty) / 50))
	return r.Float64() < p
}

func cloneAssignments(a []Assignment) []Assignment {
	out := make([]Assignment, len(a))
	copy(out, a)
	return out
}

// constructInitial builds a starting assignment via shelf packing: a
// deterministic-per-worker shuffle order, then left-to-right,
// bottom-to-top rows respecting the aisle gap. It ignores every
// constraint beyond containment and pairwise spacing; the search loop
// repairs the rest.
func constructInitial(m *Model, r *rng.RNG) []Assignment {
	n := len(m.Booths)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	r.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

	asn := make([]Assignment, n)
	hall := m.Scene.Hall
	x, y, rowHeight := 0, 0, 0

	for _, i := range order {
		b := m.Booths[i]
		w, h := b.Width, b.Height
		if x+w > hall.Width {
			x = 0
			y += rowHeight + hall.Aisle
			rowHeight = 0
		}
		ax, ay := x, y
		if ax+w > hall.Width {
			ax = maxInt(0, hall.Width-w)
		}
		if ay+h > hall.Depth {
			ay = maxInt(0, hall.Depth-h)
		}
		asn[i] = Assignment{X: ax, Y: ay, R: false}
		x = ax + w + hall.Aisle
		if h > rowHeight {
			rowHeight = h
		}
	}
	return asn
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// proposeMove returns a new candidate assignment differing from cur by
// one randomized move: reposition a booth, toggle its rotation, or
// swap two booths' placements.
func proposeMove(m *Model, cur []Assignment, r *rng.RNG) []Assignment {
	n := len(cur)
	cand := cloneAssignments(cur)
	if n == 0 {
		return cand
	}

	switch r.Intn(3) {
	case 0: // reposition
		i := r.Intn(n)
		cand[i] = randomAssignment(m, i, r, cand[i].R)
	case 1: // toggle rotation
		i := r.Intn(n)
		cand[i].R = !cand[i].R
	default: // swap
		if n < 2 {
			i := r.Intn(n)
			cand[i] = randomAssignment(m, i, r, cand[i].R)
			return cand
		}
		i := r.Intn(n)
		j := r.Intn(n)
		for j == i {
			j = r.Intn(n)
		}
		cand[i], cand[j] = Assignment{X: cand[j].X, Y: cand[j].Y, R: cand[i].R}, Assignment{X: cand[i].X, Y: cand[i].Y, R: cand[j].R}
	}
	return cand
}

func randomAssignment(m *Model, i int, r *rng.RNG, rotate bool) Assignment {
	b := m.Booths[i]
	hall := m.Scene.Hall

	if r.Bool() {
		rotate = !rotate
	}
	w, h := b.Width, b.Height
	if rotate {
		w, h = b.Height, b.Width
	}

	maxX := hall.Width - w
	maxY := hall.Depth - h
	x, y := 0, 0
	if maxX > 0 {
		x = r.Intn(maxX + 1)
	}
	if maxY > 0 {
		y = r.Intn(maxY + 1)
	}
	return Assignment{X: x, Y: y, R: rotate}
}

// sceneHash derives a stable hash of the scene used to seed per-worker
// RNGs (see pkg/rng), mirroring the teacher's Config.Hash pattern but
// hashing the JSON encoding rather than YAML since this module's
// canonical format is JSON-based.
func sceneHash(s *scene.Scene) []byte {
	data, err := json.Marshal(s)
	if err != nil {
		h := sha256.Sum256([]byte(fmt.Sprintf("%+v", s)))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}
