package placement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/dshills/boothopt/pkg/optimizer"
	"github.com/dshills/boothopt/pkg/scene"
)

var placementColumns = []string{"id", "name", "x_mm", "y_mm", "width_mm", "depth_mm", "rotated"}

// FromResult converts a solver result into placement records, reading
// back x, y, the effective (post-rotation) width/depth, and the
// rotation bit for each booth (spec §4.4).
func FromResult(m *optimizer.Model, res optimizer.Result) ([]scene.Placement, error) {
	if !res.Status.Success() {
		return nil, fmt.Errorf("placement: cannot emit from a non-success solver status %q", res.Status)
	}
	if len(res.Assignments) != len(m.Booths) {
		return nil, fmt.Errorf("placement: assignment count %d does not match booth count %d", len(res.Assignments), len(m.Booths))
	}

	out := make([]scene.Placement, len(m.Booths))
	for i, b := range m.Booths {
		a := res.Assignments[i]
		d := optimizer.Derive(b, a)
		out[i] = scene.Placement{
			ID:      b.ID,
			Name:    b.Name,
			X:       a.X,
			Y:       a.Y,
			Width:   d.WEff,
			Height:  d.HEff,
			Rotated: a.R,
		}
	}
	return out, nil
}

// AssertInvariants re-checks the placement records: each record's id and
// effective size must match its booth and rotation, and the records,
// converted back to assignments, must pass optimizer.Validate (the same
// hard-constraint check the solver uses). This is the final fail-fast
// gate before any file is written (spec §7: "Out-of-range placement ... fatal assertion; outputs not
// emitted").
func AssertInvariants(m *optimizer.Model, placements []scene.Placement) error {
	if len(placements) != len(m.Booths) {
		return fmt.Errorf("placement: %d records for %d booths", len(placements), len(m.Booths))
	}

	asn := make([]optimizer.Assignment, len(placements))
	for i, p := range placements {
		b := m.Booths[i]
		if p.ID != b.ID {
			return fmt.Errorf("placement: record %d has id %d, expected %d", i, p.ID, b.ID)
		}
		wantW, wantH := b.Width, b.Height
		if p.Rotated {
			wantW, wantH = b.Height, b.Width
		}
		if p.Width != wantW || p.Height != wantH {
			return fmt.Errorf("placement: booth %d effective size %dx%d does not match rotation=%v of natural %dx%d", b.ID, p.Width, p.Height, p.Rotated, b.Width, b.Height)
		}
		asn[i] = optimizer.Assignment{X: p.X, Y: p.Y, R: p.Rotated}
	}

	if vs := optimizer.Validate(m, asn); len(vs) != 0 {
		return fmt.Errorf("placement: %d invariant violation(s), first: %s", len(vs), vs[0].String())
	}
	return nil
}

// Emit writes placements to path as a CSV placement table, first
// renaming any existing file at path to path+".prev" (spec §3
// Lifecycle, §4.4, §7: a single-generation backup retained for
// post-mortem diffs). The file is written with 0644 permissions,
// mirroring this codebase's other file-export helpers.
func Emit(path string, placements []scene.Placement) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, path+".prev"); err != nil {
			return fmt.Errorf("placement: backing up previous table: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("placement: checking for existing table: %w", err)
	}

	data, err := encodeCSV(placements)
	if err != nil {
		return fmt.Errorf("placement: encoding table: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("placement: writing table: %w", err)
	}
	return nil
}

func encodeCSV(placements []scene.Placement) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(placementColumns); err != nil {
		return nil, err
	}
	for _, p := range placements {
		row := []string{
			strconv.Itoa(p.ID),
			p.Name,
			strconv.Itoa(p.X),
			strconv.Itoa(p.Y),
			strconv.Itoa(p.Width),
			strconv.Itoa(p.Height),
			rotatedToken(p.Rotated),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rotatedToken(r bool) string {
	if r {
		return "1"
	}
	return "0"
}
