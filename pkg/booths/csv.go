package booths

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/boothopt/pkg/scene"
)

// requiredColumns are the columns that must be present in every booth
// table; all others are optional.
var requiredColumns = []string{"id", "name", "width_mm", "depth_mm", "want_outlet", "want_curtain_rail"}

// LoadBoothTable reads a booth request table from a CSV file at path.
func LoadBoothTable(path string) ([]scene.BoothRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("booths: opening table: %w", err)
	}
	defer f.Close()
	return ReadBoothTable(f)
}

// ReadBoothTable parses a booth request table from r. The first row
// must be a header naming the columns; order is not significant.
func ReadBoothTable(r io.Reader) ([]scene.BoothRequest, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("booths: reading header: %w", err)
	}
	col, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var out []scene.BoothRequest
	rowNum := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("booths: reading row %d: %w", rowNum, err)
		}
		rowNum++

		b, err := parseRow(row, col)
		if err != nil {
			return nil, fmt.Errorf("booths: row %d: %w", rowNum, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func columnIndex(header []string) (map[string]int, error) {
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("booths: missing required column %q", name)
		}
	}
	return col, nil
}

func parseRow(row []string, col map[string]int) (scene.BoothRequest, error) {
	get := func(name string) (string, bool) {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	idStr, _ := get("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return scene.BoothRequest{}, fmt.Errorf("parsing id %q: %w", idStr, err)
	}

	name, _ := get("name")

	widthStr, _ := get("width_mm")
	width, err := strconv.Atoi(widthStr)
	if err != nil {
		return scene.BoothRequest{}, fmt.Errorf("parsing width_mm %q: %w", widthStr, err)
	}

	depthStr, _ := get("depth_mm")
	depth, err := strconv.Atoi(depthStr)
	if err != nil {
		return scene.BoothRequest{}, fmt.Errorf("parsing depth_mm %q: %w", depthStr, err)
	}

	wantOutletStr, _ := get("want_outlet")
	wantCurtainStr, _ := get("want_curtain_rail")

	b := scene.BoothRequest{
		ID:          id,
		Name:        name,
		Width:       width,
		Height:      depth,
		WantOutlet:  parseTrueToken(wantOutletStr),
		WantCurtain: parseTrueToken(wantCurtainStr),
	}

	if group, ok := get("group"); ok && group != "" {
		b.Group = group
	}

	if pref, ok := parsePreferredArea(get); ok {
		b.Pref = &pref
	}

	if hardStr, ok := get("pref_area_hard"); ok && hardStr != "" {
		hard := parseHardToken(hardStr)
		b.PrefHard = &hard
	}

	return b, nil
}

// parseTrueToken implements the spec's case-insensitive "TRUE" token
// parsing for want_outlet/want_curtain_rail: only the literal token
// (in any case) counts as true.
func parseTrueToken(s string) bool {
	return strings.EqualFold(s, "true")
}

// parseHardToken implements the spec's {1,true,yes} token set for
// pref_area_hard.
func parseHardToken(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func parsePreferredArea(get func(string) (string, bool)) (scene.Rect, bool) {
	xminS, okX := get("pref_xmin_mm")
	yminS, okY := get("pref_ymin_mm")
	xmaxS, okX2 := get("pref_xmax_mm")
	ymaxS, okY2 := get("pref_ymax_mm")
	if !okX || !okY || !okX2 || !okY2 || xminS == "" || yminS == "" || xmaxS == "" || ymaxS == "" {
		return scene.Rect{}, false
	}
	xmin, e1 := strconv.Atoi(xminS)
	ymin, e2 := strconv.Atoi(yminS)
	xmax, e3 := strconv.Atoi(xmaxS)
	ymax, e4 := strconv.Atoi(ymaxS)
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil {
		return scene.Rect{}, false
	}
	return scene.Rect{Xmin: xmin, Ymin: ymin, Xmax: xmax, Ymax: ymax}, true
}
