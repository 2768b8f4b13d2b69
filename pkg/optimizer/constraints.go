package optimizer

import "github.com/dshills/boothopt/pkg/scene"

// wallBand reports the four outer wall-band indicators for a booth
// (spec §4.2 "Wall-band indicators").
func wallBand(d Derived, a Assignment, hall scene.Hall) (bl, br, bb, bt bool) {
	band := hall.WallBand
	bl = a.X <= band
	br = d.Right >= hall.Width-band
	bb = a.Y <= band
	bt = d.Top >= hall.Depth-band
	return
}

// wallTouch reports the four outer wall touch indicators: each is true
// only when the booth's edge exactly coincides with the hall boundary
// (spec §4.2 "Outer-wall touch indicators").
func wallTouch(d Derived, a Assignment, hall scene.Hall) (tl, tr, tb, tt bool) {
	tl = a.X == 0
	tr = d.Right == hall.Width
	tb = a.Y == 0
	tt = d.Top == hall.Depth
	return
}

// verticalWallTouch reports the two inner-wall touch literals for a
// vertical wall segment (spec §4.2 "Inner-wall touch indicators").
func verticalWallTouch(d Derived, a Assignment, seg railSegment) (left, right bool) {
	inSpan := 2*seg.Lo <= d.CY2 && d.CY2 <= 2*seg.Hi
	left = inSpan && d.Right == seg.Fixed
	right = inSpan && a.X == seg.Fixed
	return
}

// horizontalWallTouch is the horizontal-wall analogue of verticalWallTouch.
func horizontalWallTouch(d Derived, a Assignment, seg railSegment) (bottom, top bool) {
	inSpan := 2*seg.Lo <= d.CX2 && d.CX2 <= 2*seg.Hi
	bottom = inSpan && a.Y == seg.Fixed
	top = inSpan && d.Top == seg.Fixed
	return
}

// verticalWallClear reports whether booth (d,a) lies entirely on one
// side of, or outside the span of, a vertical inner wall segment (spec
// §4.2 "Inner-wall non-crossing").
func verticalWallClear(d Derived, a Assignment, seg railSegment) bool {
	return d.Right <= seg.Fixed || a.X >= seg.Fixed || a.Y >= seg.Hi || d.Top <= seg.Lo
}

// horizontalWallClear is the horizontal analogue of verticalWallClear.
func horizontalWallClear(d Derived, a Assignment, seg railSegment) bool {
	return d.Top <= seg.Fixed || a.Y >= seg.Fixed || a.X >= seg.Hi || d.Right <= seg.Lo
}

// zoneClear reports whether booth (d,a) lies entirely outside a
// forbidden zone (spec §4.2 "Forbidden-zone exclusion").
func zoneClear(d Derived, a Assignment, z scene.Rect) bool {
	return d.Right <= z.Xmin || a.X >= z.Xmax || d.Top <= z.Ymin || a.Y >= z.Ymax
}

// nonOverlap reports whether two booths satisfy the aisle-separated
// non-overlap condition of spec §3.
func nonOverlap(di Derived, ai Assignment, dj Derived, aj Assignment, aisle int) bool {
	return ai.X+di.WEff+aisle <= aj.X ||
		aj.X+dj.WEff+aisle <= ai.X ||
		ai.Y+di.HEff+aisle <= aj.Y ||
		aj.Y+dj.HEff+aisle <= ai.Y
}

// preferredAreaOK reports whether booth (d,a) lies entirely inside r.
func preferredAreaOK(d Derived, a Assignment, r scene.Rect) bool {
	return a.X >= r.Xmin && a.Y >= r.Ymin && d.Right <= r.Xmax && d.Top <= r.Ymax
}

// countRailAttachments counts how many rail-face attachment literals
// are true for booth (d,a) under m's rail list (spec §4.2 "Rail
// attachment"). A feasible rail-required booth has exactly one.
func countRailAttachments(m *Model, d Derived, a Assignment) int {
	count := 0
	if !a.R {
		for _, seg := range m.HRails {
			spanOK := seg.Lo <= a.X && d.Right <= seg.Hi
			if !spanOK {
				continue
			}
			if a.Y == seg.Fixed {
				count++
			}
			if d.Top == seg.Fixed {
				count++
			}
		}
	} else {
		for _, seg := range m.VRails {
			spanOK := seg.Lo <= a.Y && d.Top <= seg.Hi
			if !spanOK {
				continue
			}
			if d.Right == seg.Fixed {
				count++
			}
			if a.X == seg.Fixed {
				count++
			}
		}
	}
	return count
}

// anyWallTouch computes the aggregate "any_wall_touch" literal for
// booth i (spec §4.2 "Wall-contact reward / requirement").
func anyWallTouch(m *Model, d Derived, a Assignment) bool {
	tl, tr, tb, tt := wallTouch(d, a, m.Scene.Hall)
	if tl || tr || tb || tt {
		return true
	}
	if !m.Scene.Requirements.InnerWallsCountAsWallContact {
		return false
	}
	for _, seg := range m.HWalls {
		if !seg.Attachable {
			continue
		}
		bottom, top := horizontalWallTouch(d, a, seg)
		if bottom || top {
			return true
		}
	}
	for _, seg := range m.VWalls {
		if !seg.Attachable {
			continue
		}
		left, right := verticalWallTouch(d, a, seg)
		if left || right {
			return true
		}
	}
	return false
}

// direction is a front-clearance corridor orientation.
type direction int

const (
	dirRight direction = iota
	dirLeft
	dirUp
	dirDown
)

// resolveFrontDirection picks the front-clearance corridor direction
// for booth i (spec §4.2 "Front-clearance corridor"). This is the
// rotation-adjacent open question from the design notes: when a
// non-rail-required booth's wall-band pattern does not pin a unique
// direction, it defaults to right (r=1) or up (r=0).
func resolveFrontDirection(m *Model, i int, d Derived, a Assignment) direction {
	if m.RailRequired[i] {
		if !a.R {
			for _, seg := range m.HRails {
				spanOK := seg.Lo <= a.X && d.Right <= seg.Hi
				if !spanOK {
					continue
				}
				if a.Y == seg.Fixed {
					return dirUp // booth backs onto a rail along its bottom edge
				}
				if d.Top == seg.Fixed {
					return dirDown
				}
			}
		} else {
			for _, seg := range m.VRails {
				spanOK := seg.Lo <= a.Y && d.Top <= seg.Hi
				if !spanOK {
					continue
				}
				if d.Right == seg.Fixed {
					return dirLeft
				}
				if a.X == seg.Fixed {
					return dirRight
				}
			}
		}
	}

	bl, br, bb, bt := wallBand(d, a, m.Scene.Hall)
	if a.R {
		switch {
		case bl && !br && !bb && !bt:
			return dirRight
		case br && !bl && !bb && !bt:
			return dirLeft
		default:
			return dirRight
		}
	}
	switch {
	case bb && !bt && !bl && !br:
		return dirUp
	case bt && !bb && !bl && !br:
		return dirDown
	default:
		return dirUp
	}
}

// frontClear reports whether booth j does not intrude into booth i's
// front-clearance corridor of depth F in direction dir (spec §4.2,
// right-front formula and its three mirrors).
func frontClear(dir direction, di Derived, ai Assignment, dj Derived, aj Assignment, f int) bool {
	switch dir {
	case dirRight:
		return dj.Right <= di.Right || aj.X >= di.Right+f || dj.Top <= ai.Y || aj.Y >= di.Top
	case dirLeft:
		return aj.X >= ai.X || dj.Right <= ai.X-f || dj.Top <= ai.Y || aj.Y >= di.Top
	case dirUp:
		return dj.Top <= di.Top || aj.Y >= di.Top+f || dj.Right <= ai.X || aj.X >= di.Right
	case dirDown:
		return aj.Y >= ai.Y || dj.Top <= ai.Y-f || dj.Right <= ai.X || aj.X >= di.Right
	default:
		return true
	}
}

// resolveRotation reports the rotation forced on a booth when exactly
// one outer-wall touch axis (or failing that, one band axis) is active,
// so the booth's long edge aligns with the wall it touches (spec §4.2
// "Rotation heuristic"); Validate flags a booth that is not
// rail-required and disagrees with it. Inner-wall touches are not
// considered. ok is false when neither tier pins a unique rotation; the
// booth's rotation is then left free and no default is applied.
func resolveRotation(m *Model, d Derived, a Assignment, hall scene.Hall) (forced bool, ok bool) {
	tl, tr, tb, tt := wallTouch(d, a, hall)
	vTouch := tl || tr
	hTouch := tb || tt
	if vTouch != hTouch {
		return vTouch, true
	}

	bl, br, bb, bt := wallBand(d, a, hall)
	vBand := bl || br
	hBand := bb || bt
	if vBand != hBand {
		return vBand, true
	}

	return false, false
}
