package optimizer

import "fmt"

// Violation describes a single failed hard constraint, identified by
// the booth it concerns (or -1 for a scene-wide check).
type Violation struct {
	BoothID int
	Kind    string
	Detail  string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s (booth %d): %s", v.Kind, v.BoothID, v.Detail)
}

// Validate checks every hard constraint of spec §3/§4.2/§8 against a
// complete assignment and returns every violation found. An empty
// result means the assignment is feasible. This is shared by the
// local-search penalty function and by pkg/placement's final
// pre-emit assertion.
func Validate(m *Model, asn []Assignment) []Violation {
	var out []Violation
	n := len(m.Booths)
	if len(asn) != n {
		return []Violation{{BoothID: -1, Kind: "arity", Detail: "assignment count does not match booth count"}}
	}

	derived := make([]Derived, n)
	for i, b := range m.Booths {
		derived[i] = Derive(b, asn[i])
	}
	hall := m.Scene.Hall

	for i, b := range m.Booths {
		d, a := derived[i], asn[i]
		if a.X < 0 || a.Y < 0 || d.Right > hall.Width || d.Top > hall.Depth {
			out = append(out, Violation{b.ID, "containment", fmt.Sprintf("booth at (%d,%d) size %dx%d exceeds hall %dx%d", a.X, a.Y, d.WEff, d.HEff, hall.Width, hall.Depth)})
		}
	}

	aisle := hall.Aisle
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !nonOverlap(derived[i], asn[i], derived[j], asn[j], aisle) {
				out = append(out, Violation{m.Booths[i].ID, "overlap", fmt.Sprintf("overlaps booth %d within aisle %d", m.Booths[j].ID, aisle)})
			}
		}
	}

	for i, b := range m.Booths {
		for _, z := range m.Scene.ForbiddenZones {
			if !zoneClear(derived[i], asn[i], z.Zone) {
				out = append(out, Violation{b.ID, "forbidden_zone", fmt.Sprintf("intrudes into zone [%d,%d,%d,%d]", z.Zone.Xmin, z.Zone.Ymin, z.Zone.Xmax, z.Zone.Ymax)})
			}
		}
	}

	for i, b := range m.Booths {
		for _, seg := range m.VWalls {
			if !verticalWallClear(derived[i], asn[i], seg) {
				out = append(out, Violation{b.ID, "inner_wall_cross", fmt.Sprintf("crosses vertical wall at x=%d", seg.Fixed)})
			}
		}
		for _, seg := range m.HWalls {
			if !horizontalWallClear(derived[i], asn[i], seg) {
				out = append(out, Violation{b.ID, "inner_wall_cross", fmt.Sprintf("crosses horizontal wall at y=%d", seg.Fixed)})
			}
		}
	}

	if m.Scene.Requirements.EnforceOuterWallBand {
		for i, b := range m.Booths {
			bl, br, bb, bt := wallBand(derived[i], asn[i], hall)
			if !(bl || br || bb || bt) {
				out = append(out, Violation{b.ID, "wall_band", "does not overlap the outer wall band"})
			}
		}
	}

	for i, b := range m.Booths {
		if b.Pref == nil || !b.PreferredHard(m.Scene.Requirements) {
			continue
		}
		if !preferredAreaOK(derived[i], asn[i], *b.Pref) {
			out = append(out, Violation{b.ID, "preferred_area", "outside its required preferred area"})
		}
	}

	for i, b := range m.Booths {
		count := countRailAttachments(m, derived[i], asn[i])
		if m.RailRequired[i] {
			if count != 1 {
				out = append(out, Violation{b.ID, "rail_attachment", fmt.Sprintf("expected exactly one rail attachment, got %d", count)})
			}
		}
	}

	if m.Scene.Requirements.WallContactHard() {
		for i, b := range m.Booths {
			if m.RailRequired[i] {
				continue
			}
			if !anyWallTouch(m, derived[i], asn[i]) {
				out = append(out, Violation{b.ID, "wall_contact", "required wall contact missing"})
			}
		}
	}

	if r := m.Scene.Requirements.OutletDemandHardRadiusMM; r > 0 && len(m.Scene.Outlets) > 0 {
		for i, b := range m.Booths {
			if b.WantOutlet && nearestOutletL1(m, derived[i]) > 2*r {
				out = append(out, Violation{b.ID, "outlet_radius", fmt.Sprintf("nearest outlet is farther than %d", r)})
			}
		}
	}

	for i, b := range m.Booths {
		if m.RailRequired[i] {
			continue
		}
		if forced, ok := resolveRotation(m, derived[i], asn[i], hall); ok && forced != asn[i].R {
			out = append(out, Violation{b.ID, "rotation", fmt.Sprintf("rotated=%v but its wall axis requires rotated=%v", asn[i].R, forced)})
		}
	}

	if m.Scene.Requirements.FrontClearMode == "hard" && m.Scene.Requirements.FrontClearMM > 0 {
		f := m.Scene.Requirements.FrontClearMM
		for i, b := range m.Booths {
			dir := resolveFrontDirection(m, i, derived[i], asn[i])
			for j := range m.Booths {
				if i == j {
					continue
				}
				if !frontClear(dir, derived[i], asn[i], derived[j], asn[j], f) {
					out = append(out, Violation{b.ID, "front_clearance", fmt.Sprintf("booth %d intrudes into the front corridor", m.Booths[j].ID)})
				}
			}
		}
	}

	return out
}
