package optimizer

import "math"

// scaleWeight scales a real-valued weight by 100 and rounds to the
// nearest integer, per spec §4.2: "All coefficients are scaled by 100
// and rounded to integer before being added to the model to keep the
// solver in integer arithmetic."
func scaleWeight(w float64) int {
	return int(math.Round(w * 100))
}

// abs is an integer absolute value helper for the L1 outlet-distance
// aggregator.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// score computes the full objective value (spec §4.2 "Objective") for
// a complete assignment. Higher is better; the search maximizes it.
// score does not itself check hard constraints — callers combine it
// with a hard-violation penalty (see localsearch.go).
func score(m *Model, asn []Assignment) int {
	n := len(m.Booths)
	derived := make([]Derived, n)
	for i, b := range m.Booths {
		derived[i] = Derive(b, asn[i])
	}

	total := 0
	w := m.Scene.Weights

	total += compactnessTerm(asn, derived, scaleWeight(w.Compactness))
	total += wallContactTerm(m, derived, asn, scaleWeight(w.WallContactBonus))
	total += outletTerms(m, derived, scaleWeight(w.OutletDistance), scaleWeight(w.OutletRepelNonWanter))
	total += railMatchTerm(m, derived, asn, scaleWeight(w.CurtainRailMatch))
	total += preferredAreaTerm(m, derived, asn, scaleWeight(w.PreferredAreaBonus))

	return total
}

func compactnessTerm(asn []Assignment, derived []Derived, weight int) int {
	if len(asn) == 0 || weight == 0 {
		return 0
	}
	xMin, yMin := asn[0].X, asn[0].Y
	xMax, yMax := derived[0].Right, derived[0].Top
	for i := 1; i < len(asn); i++ {
		if asn[i].X < xMin {
			xMin = asn[i].X
		}
		if asn[i].Y < yMin {
			yMin = asn[i].Y
		}
		if derived[i].Right > xMax {
			xMax = derived[i].Right
		}
		if derived[i].Top > yMax {
			yMax = derived[i].Top
		}
	}
	bboxW := xMax - xMin
	bboxH := yMax - yMin
	return -weight * (bboxW + bboxH)
}

func wallContactTerm(m *Model, derived []Derived, asn []Assignment, weight int) int {
	if weight == 0 || !m.Scene.Requirements.WallContactPrefer {
		return 0
	}
	total := 0
	for i := range m.Booths {
		if m.RailRequired[i] {
			continue
		}
		if anyWallTouch(m, derived[i], asn[i]) {
			total += weight
		}
	}
	return total
}

func outletTerms(m *Model, derived []Derived, distWeight, repelWeight int) int {
	if len(m.Scene.Outlets) == 0 {
		return 0
	}
	total := 0
	reserveR := m.Scene.Requirements.OutletReserveRadiusMM
	for i, b := range m.Booths {
		nearest2 := nearestOutletL1(m, derived[i])
		if b.WantOutlet {
			total -= distWeight * nearest2
		} else if reserveR > 0 && repelWeight > 0 {
			if nearest2 <= 2*reserveR {
				total -= 1000 * repelWeight
			}
		}
	}
	return total
}

func nearestOutletL1(m *Model, d Derived) int {
	best := -1
	for _, o := range m.Scene.Outlets {
		dist := abs(d.CX2-2*o.X) + abs(d.CY2-2*o.Y)
		if best < 0 || dist < best {
			best = dist
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func railMatchTerm(m *Model, derived []Derived, asn []Assignment, weight int) int {
	if weight == 0 {
		return 0
	}
	total := 0
	for i, b := range m.Booths {
		if !b.WantCurtain {
			continue
		}
		if countRailAttachments(m, derived[i], asn[i]) > 0 {
			total += weight
		}
	}
	return total
}

func preferredAreaTerm(m *Model, derived []Derived, asn []Assignment, weight int) int {
	if weight == 0 {
		return 0
	}
	total := 0
	for i, b := range m.Booths {
		if b.Pref == nil || b.PreferredHard(m.Scene.Requirements) {
			continue // hard preferred areas are a constraint, not a bonus
		}
		if preferredAreaOK(derived[i], asn[i], *b.Pref) {
			total += weight
		}
	}
	return total
}
