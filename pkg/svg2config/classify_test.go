package svg2config

import "testing"

func TestResolveBandMMWalksAncestors(t *testing.T) {
	svgData := `<svg width="100" height="100">
  <rect id="room" x="0" y="0" width="100" height="100"/>
  <g data-band-mm="250">
    <line class="curtain-rail" x1="0" y1="0" x2="50" y2="0"/>
  </g>
  <line class="curtain-rail" x1="0" y1="50" x2="50" y2="50"/>
</svg>`
	root, err := parseSVG([]byte(svgData))
	if err != nil {
		t.Fatalf("parseSVG: %v", err)
	}
	lines := root.findAll("line")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	if got := resolveBandMM(lines[0]); got != 250 {
		t.Errorf("resolveBandMM with ancestor override = %v, want 250", got)
	}
	if got := resolveBandMM(lines[1]); got != defaultBandMM {
		t.Errorf("resolveBandMM with no override = %v, want default %v", got, defaultBandMM)
	}
}

func TestResolveBandMMIgnoresUnparsableOverride(t *testing.T) {
	svgData := `<svg width="100" height="100">
  <rect id="room" x="0" y="0" width="100" height="100"/>
  <g data-band-mm="not-a-number">
    <line class="curtain-rail" x1="0" y1="0" x2="50" y2="0"/>
  </g>
</svg>`
	root, err := parseSVG([]byte(svgData))
	if err != nil {
		t.Fatalf("parseSVG: %v", err)
	}
	line := root.findAll("line")[0]
	if got := resolveBandMM(line); got != defaultBandMM {
		t.Errorf("resolveBandMM with unparsable override = %v, want default %v", got, defaultBandMM)
	}
}
