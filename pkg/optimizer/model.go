package optimizer

import (
	"fmt"
	"sort"

	"github.com/dshills/boothopt/pkg/scene"
)

// railSegment is a curtain rail or inner wall normalized into a fixed
// coordinate plus a span, independent of which it originated from.
type railSegment struct {
	Orientation scene.RailOrientation
	Fixed       int // the rail's shared x (vertical) or y (horizontal)
	Lo, Hi      int // span along the other axis
	Attachable  bool
}

// Model is the constraint/objective model of spec §4.2 built from a
// validated scene. It precomputes everything that depends only on the
// scene (rail-required flags, horizontal/vertical rail and wall lists)
// so the solver's hot loop never re-derives them.
type Model struct {
	Scene *scene.Scene

	Booths       []scene.BoothRequest
	RailRequired []bool // parallel to Booths

	HRails []railSegment // horizontal curtain rails (y fixed)
	VRails []railSegment // vertical curtain rails (x fixed)

	HWalls []railSegment // horizontal inner walls
	VWalls []railSegment // vertical inner walls
}

// BuildModel validates the scene and precomputes the constraint model.
// It fails fast (spec §7) when a rail-required booth has zero rails
// defined, i.e. the scene's curtain_rail_mode contradicts its own rail
// list.
func BuildModel(s *scene.Scene) (*Model, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("optimizer: invalid scene: %w", err)
	}

	m := &Model{
		Scene:        s,
		Booths:       append([]scene.BoothRequest(nil), s.Booths...),
		RailRequired: make([]bool, len(s.Booths)),
	}

	for _, r := range s.Rails {
		orient, err := r.Orientation()
		if err != nil {
			continue // compiler should never hand us a non-axis-aligned rail
		}
		fixed, lo, hi := r.Span()
		seg := railSegment{Orientation: orient, Fixed: fixed, Lo: lo, Hi: hi, Attachable: true}
		if orient == scene.OrientationHorizontal {
			m.HRails = append(m.HRails, seg)
		} else {
			m.VRails = append(m.VRails, seg)
		}
	}
	sortSegments(m.HRails)
	sortSegments(m.VRails)

	for _, w := range s.InnerWalls {
		orient, err := w.Orientation()
		if err != nil {
			return nil, fmt.Errorf("optimizer: inner wall is not axis-aligned: %w", err)
		}
		fixed, lo, hi := w.Span()
		seg := railSegment{Orientation: orient, Fixed: fixed, Lo: lo, Hi: hi, Attachable: w.Attachable}
		if orient == scene.OrientationHorizontal {
			m.HWalls = append(m.HWalls, seg)
		} else {
			m.VWalls = append(m.VWalls, seg)
		}
	}
	sortSegments(m.HWalls)
	sortSegments(m.VWalls)

	anyRails := len(m.HRails) > 0 || len(m.VRails) > 0
	for i, b := range m.Booths {
		required := s.RailRequired(b)
		if required && !anyRails {
			return nil, fmt.Errorf("optimizer: booth %d (%s) requires a curtain rail but the scene defines none", b.ID, b.Name)
		}
		m.RailRequired[i] = required
	}

	return m, nil
}

func sortSegments(segs []railSegment) {
	sort.Slice(segs, func(i, j int) bool {
		if segs[i].Fixed != segs[j].Fixed {
			return segs[i].Fixed < segs[j].Fixed
		}
		return segs[i].Lo < segs[j].Lo
	})
}

// Assignment is the solver's decision for one booth: its origin and
// rotation bit.
type Assignment struct {
	X, Y int
	R    bool
}

// Derived holds the quantities of spec §4.2 that follow mechanically
// from an Assignment and a booth's natural dimensions.
type Derived struct {
	WEff, HEff int
	Right, Top int
	CX2, CY2   int // doubled center, for integer L1 distances
}

// Derive computes the derived quantities for booth b under assignment a.
func Derive(b scene.BoothRequest, a Assignment) Derived {
	w, h := b.Width, b.Height
	if a.R {
		w, h = b.Height, b.Width
	}
	return Derived{
		WEff:  w,
		HEff:  h,
		Right: a.X + w,
		Top:   a.Y + h,
		CX2:   2*a.X + w,
		CY2:   2*a.Y + h,
	}
}
