package scene

import "fmt"

// Point is a 2D integer millimeter coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rect is an axis-aligned rectangle given by its corners, in mm.
// Xmin <= Xmax and Ymin <= Ymax are enforced by Validate.
type Rect struct {
	Xmin int `json:"xmin"`
	Ymin int `json:"ymin"`
	Xmax int `json:"xmax"`
	Ymax int `json:"ymax"`
}

// Validate checks that the rectangle's corners are well-ordered.
func (r Rect) Validate() error {
	if r.Xmin > r.Xmax {
		return fmt.Errorf("rect: xmin (%d) > xmax (%d)", r.Xmin, r.Xmax)
	}
	if r.Ymin > r.Ymax {
		return fmt.Errorf("rect: ymin (%d) > ymax (%d)", r.Ymin, r.Ymax)
	}
	return nil
}

// Width returns Xmax - Xmin.
func (r Rect) Width() int { return r.Xmax - r.Xmin }

// Height returns Ymax - Ymin.
func (r Rect) Height() int { return r.Ymax - r.Ymin }

// Hall is the outer rectangle containing all booths. Origin is the
// lower-left corner, +x right, +y up. All fields are integer mm.
type Hall struct {
	// Width and Depth are the hall's outer dimensions.
	Width int `json:"width_mm"`
	Depth int `json:"depth_mm"`

	// WallBand is the wall-adjacent strip width used for near-wall
	// classification (see Requirements.EnforceOuterWallBand).
	WallBand int `json:"wall_band_mm"`

	// Aisle is the minimum gap enforced between any two booths.
	Aisle int `json:"aisle_mm"`
}

// Validate checks the hall's dimensions are physically sensible.
func (h Hall) Validate() error {
	if h.Width <= 0 || h.Depth <= 0 {
		return fmt.Errorf("hall: width and depth must be positive, got %dx%d", h.Width, h.Depth)
	}
	if h.WallBand < 0 {
		return fmt.Errorf("hall: wall band must be >= 0, got %d", h.WallBand)
	}
	if h.Aisle < 0 {
		return fmt.Errorf("hall: aisle must be >= 0, got %d", h.Aisle)
	}
	return nil
}

// Outlet is an electrical outlet point inside the hall.
type Outlet struct {
	X int `json:"x_mm"`
	Y int `json:"y_mm"`
}

// Validate checks the outlet lies within the given hall.
func (o Outlet) Validate(h Hall) error {
	if o.X < 0 || o.X > h.Width || o.Y < 0 || o.Y > h.Depth {
		return fmt.Errorf("outlet (%d,%d) outside hall bounds", o.X, o.Y)
	}
	return nil
}

// RailOrientation classifies a curtain rail or inner wall segment.
type RailOrientation int

const (
	// OrientationHorizontal means the segment has equal y endpoints.
	OrientationHorizontal RailOrientation = iota
	// OrientationVertical means the segment has equal x endpoints.
	OrientationVertical
)

// CurtainRail is an axis-aligned line segment on a wall to which certain
// booths must adhere. BandWidth is for rendering only.
type CurtainRail struct {
	P1        Point   `json:"p1"`
	P2        Point   `json:"p2"`
	BandWidth float64 `json:"band_width"`
}

// Orientation classifies the rail as horizontal or vertical. The caller
// must have already rejected non-axis-aligned segments (see
// pkg/svg2config, which silently drops them at compile time).
func (r CurtainRail) Orientation() (RailOrientation, error) {
	if r.P1.Y == r.P2.Y {
		return OrientationHorizontal, nil
	}
	if r.P1.X == r.P2.X {
		return OrientationVertical, nil
	}
	return 0, fmt.Errorf("rail from (%d,%d) to (%d,%d) is not axis-aligned", r.P1.X, r.P1.Y, r.P2.X, r.P2.Y)
}

// Span returns the rail's fixed coordinate and its [min,max] extent
// along the other axis.
func (r CurtainRail) Span() (fixed, lo, hi int) {
	if r.P1.Y == r.P2.Y {
		fixed = r.P1.Y
		lo, hi = minInt(r.P1.X, r.P2.X), maxInt(r.P1.X, r.P2.X)
		return
	}
	fixed = r.P1.X
	lo, hi = minInt(r.P1.Y, r.P2.Y), maxInt(r.P1.Y, r.P2.Y)
	return
}

// InnerWall is an axis-aligned wall segment inside the hall.
type InnerWall struct {
	P1         Point   `json:"p1"`
	P2         Point   `json:"p2"`
	Thickness  float64 `json:"thickness"` // display only
	Attachable bool    `json:"attachable"` // if true, a coincident booth edge counts as wall contact
}

// Orientation classifies the wall as horizontal or vertical.
func (w InnerWall) Orientation() (RailOrientation, error) {
	if w.P1.Y == w.P2.Y {
		return OrientationHorizontal, nil
	}
	if w.P1.X == w.P2.X {
		return OrientationVertical, nil
	}
	return 0, fmt.Errorf("inner wall from (%d,%d) to (%d,%d) is not axis-aligned", w.P1.X, w.P1.Y, w.P2.X, w.P2.Y)
}

// Span returns the wall's fixed coordinate and its [min,max] extent
// along the other axis.
func (w InnerWall) Span() (fixed, lo, hi int) {
	if w.P1.Y == w.P2.Y {
		fixed = w.P1.Y
		lo, hi = minInt(w.P1.X, w.P2.X), maxInt(w.P1.X, w.P2.X)
		return
	}
	fixed = w.P1.X
	lo, hi = minInt(w.P1.Y, w.P2.Y), maxInt(w.P1.Y, w.P2.Y)
	return
}

// ForbiddenZone is an axis-aligned rectangle that no booth may overlap.
type ForbiddenZone struct {
	Zone Rect `json:"zone"`
}

// BoothRequest describes a single booth to be placed.
type BoothRequest struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	// Width and Height are the booth's natural (unrotated) footprint.
	Width  int `json:"width_mm"`
	Height int `json:"depth_mm"`

	WantOutlet  bool `json:"want_outlet"`
	WantCurtain bool `json:"want_curtain_rail"`

	// Group is an optional tag, informational only for the optimizer.
	Group string `json:"group,omitempty"`

	// Pref is the booth's optional preferred sub-area.
	Pref *Rect `json:"preferred_area,omitempty"`
	// PrefHard, when non-nil, overrides Requirements.PreferredAreaDefault
	// for this booth: true means the preferred area is a hard constraint,
	// false means it is a soft bonus.
	PrefHard *bool `json:"preferred_area_hard,omitempty"`
}

// Validate checks the booth request is well-formed.
func (b BoothRequest) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("booth %d (%s): width and height must be positive, got %dx%d", b.ID, b.Name, b.Width, b.Height)
	}
	if b.Pref != nil {
		if err := b.Pref.Validate(); err != nil {
			return fmt.Errorf("booth %d (%s): preferred area: %w", b.ID, b.Name, err)
		}
	}
	return nil
}

// PreferredHard resolves whether this booth's preferred area (if any) is
// a hard or soft constraint, applying Requirements.PreferredAreaDefault
// when the booth doesn't specify an override.
func (b BoothRequest) PreferredHard(req Requirements) bool {
	if b.PrefHard != nil {
		return *b.PrefHard
	}
	return req.PreferredAreaDefault == PreferredAreaHard
}

// CurtainRailMode selects which booths must attach to a curtain rail.
type CurtainRailMode string

const (
	RailModeIfWanted CurtainRailMode = "if_wanted"
	RailModeAll      CurtainRailMode = "all"
	RailModeNone     CurtainRailMode = "none"
)

// FrontClearMode selects whether the front-clearance corridor is a hard
// constraint or a best-effort soft preference.
type FrontClearMode string

const (
	FrontClearHard FrontClearMode = "hard"
	FrontClearSoft FrontClearMode = "soft"
)

// PreferredAreaMode selects the default severity for preferred-area
// membership when a booth omits a per-booth override.
type PreferredAreaMode string

const (
	PreferredAreaHard PreferredAreaMode = "hard"
	PreferredAreaSoft PreferredAreaMode = "soft"
)

// Requirements enumerates the configuration knobs that shape which hard
// constraints and rewards apply during optimization (see spec §3).
type Requirements struct {
	CurtainRailMode CurtainRailMode `json:"curtain_rail_mode"`

	WallContactPrefer      bool `json:"wall_contact_prefer"`
	WallContactDefaultHard bool `json:"wall_contact_default_hard"`
	WallContactHardFlag    bool `json:"wall_contact_hard"` // the redundant twin of WallContactDefaultHard, see WallContactHard()

	InnerWallsCountAsWallContact bool `json:"inner_walls_count_as_wall_contact"`
	EnforceOuterWallBand         bool `json:"enforce_outer_wall_band"`

	FrontClearMM   int            `json:"front_clear_mm"`
	FrontClearMode FrontClearMode `json:"front_clear_mode"`

	OutletDemandHardRadiusMM int `json:"outlet_demand_hard_radius_mm"`
	OutletReserveRadiusMM    int `json:"outlet_reserve_radius_mm"`

	PreferredAreaDefault PreferredAreaMode `json:"preferred_area_default"`
}

// WallContactHard reports whether wall contact is a hard requirement for
// non-rail-required booths. WallContactHardFlag and WallContactDefaultHard
// are redundant in the original source (either one triggers the same
// hard requirement, see spec.md §9) and are merged here into this single
// effective predicate rather than carried as two independently-checked
// flags.
func (r Requirements) WallContactHard() bool {
	return r.WallContactHardFlag || r.WallContactDefaultHard
}

// Validate checks the requirements block for internally consistent values.
func (r Requirements) Validate() error {
	switch r.CurtainRailMode {
	case RailModeIfWanted, RailModeAll, RailModeNone:
	default:
		return fmt.Errorf("requirements: invalid curtain_rail_mode %q", r.CurtainRailMode)
	}
	if r.FrontClearMM < 0 {
		return fmt.Errorf("requirements: front_clear_mm must be >= 0, got %d", r.FrontClearMM)
	}
	switch r.FrontClearMode {
	case FrontClearHard, FrontClearSoft, "":
	default:
		return fmt.Errorf("requirements: invalid front_clear_mode %q", r.FrontClearMode)
	}
	if r.OutletDemandHardRadiusMM < 0 {
		return fmt.Errorf("requirements: outlet_demand_hard_radius_mm must be >= 0, got %d", r.OutletDemandHardRadiusMM)
	}
	if r.OutletReserveRadiusMM < 0 {
		return fmt.Errorf("requirements: outlet_reserve_radius_mm must be >= 0, got %d", r.OutletReserveRadiusMM)
	}
	switch r.PreferredAreaDefault {
	case PreferredAreaHard, PreferredAreaSoft, "":
	default:
		return fmt.Errorf("requirements: invalid preferred_area_default %q", r.PreferredAreaDefault)
	}
	return nil
}

// Weights holds the non-negative real objective coefficients. They are
// scaled by 100 and rounded to integers when the optimizer builds its
// objective (see scaleWeight in pkg/optimizer).
type Weights struct {
	Compactness          float64 `json:"compactness"`
	WallContactBonus     float64 `json:"wall_contact_bonus"`
	OutletDistance       float64 `json:"outlet_distance"`
	CurtainRailMatch     float64 `json:"curtain_rail_match"`
	OutletRepelNonWanter float64 `json:"outlet_repel_non_wanter"`
	PreferredAreaBonus   float64 `json:"preferred_area_bonus"`
}

// Validate checks that all weights are non-negative.
func (w Weights) Validate() error {
	fields := map[string]float64{
		"compactness":             w.Compactness,
		"wall_contact_bonus":      w.WallContactBonus,
		"outlet_distance":         w.OutletDistance,
		"curtain_rail_match":      w.CurtainRailMatch,
		"outlet_repel_non_wanter": w.OutletRepelNonWanter,
		"preferred_area_bonus":    w.PreferredAreaBonus,
	}
	for name, v := range fields {
		if v < 0 {
			return fmt.Errorf("weights: %s must be >= 0, got %f", name, v)
		}
	}
	return nil
}

// SolverConfig configures the solver driver (spec §4.3).
type SolverConfig struct {
	// MaxTimeInSeconds is the wall-clock budget. Defaults to 30 if <= 0.
	MaxTimeInSeconds float64 `json:"max_time_in_seconds"`
	// Workers is the worker count. Defaults to 8 if <= 0.
	Workers int `json:"workers"`
	// Seed is the master seed driving per-worker RNG derivation (see
	// pkg/rng). Defaults to a fixed constant if 0, so that an omitted
	// seed still produces a deterministic run rather than a time-based one.
	Seed uint64 `json:"seed,omitempty"`
}

// Normalized returns a copy with zero/negative fields replaced by defaults.
func (c SolverConfig) Normalized() SolverConfig {
	if c.MaxTimeInSeconds <= 0 {
		c.MaxTimeInSeconds = 30
	}
	if c.Workers <= 0 {
		c.Workers = 8
	}
	if c.Seed == 0 {
		c.Seed = defaultSeed
	}
	return c
}

// defaultSeed is used when a configuration omits an explicit solver seed.
// Unlike the teacher's time-based generateSeed, optimizer runs default to
// a fixed constant so that an omitted seed still reproduces exactly.
const defaultSeed uint64 = 0x626f6f74686f7074 // "boothopt" as bytes


// Scene is the canonical scene description: the contract between the SVG
// compiler, the constraint builder, and the placement emitter.
type Scene struct {
	Hall           Hall            `json:"hall"`
	Outlets        []Outlet        `json:"outlets,omitempty"`
	Rails          []CurtainRail   `json:"rails,omitempty"`
	InnerWalls     []InnerWall     `json:"inner_walls,omitempty"`
	ForbiddenZones []ForbiddenZone `json:"forbidden_zones,omitempty"`
	Booths         []BoothRequest  `json:"booths,omitempty"`
	Requirements   Requirements    `json:"requirements"`
	Weights        Weights         `json:"weights"`
	Solver         SolverConfig    `json:"solver"`
}

// Validate checks every component of the scene.
func (s *Scene) Validate() error {
	if err := s.Hall.Validate(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	for i, o := range s.Outlets {
		if err := o.Validate(s.Hall); err != nil {
			return fmt.Errorf("scene: outlet[%d]: %w", i, err)
		}
	}
	for i, z := range s.ForbiddenZones {
		if err := z.Zone.Validate(); err != nil {
			return fmt.Errorf("scene: forbidden_zone[%d]: %w", i, err)
		}
	}
	seen := make(map[int]bool, len(s.Booths))
	for i, b := range s.Booths {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("scene: booth[%d]: %w", i, err)
		}
		if seen[b.ID] {
			return fmt.Errorf("scene: booth[%d]: duplicate id %d", i, b.ID)
		}
		seen[b.ID] = true
	}
	if err := s.Requirements.Validate(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if err := s.Weights.Validate(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	return nil
}

// RailRequired reports whether a booth must attach to a curtain rail
// under the scene's current CurtainRailMode.
func (s *Scene) RailRequired(b BoothRequest) bool {
	switch s.Requirements.CurtainRailMode {
	case RailModeAll:
		return true
	case RailModeIfWanted:
		return b.WantCurtain
	default:
		return false
	}
}

// Placement is the optimizer's output for a single booth (spec §3).
type Placement struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	X             int    `json:"x_mm"`
	Y             int    `json:"y_mm"`
	Width         int    `json:"width_mm"`  // effective, post-rotation
	Height        int    `json:"depth_mm"`  // effective, post-rotation
	Rotated       bool   `json:"rotated"`
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
