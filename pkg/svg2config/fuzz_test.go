package svg2config

import (
	"testing"

	"github.com/dshills/boothopt/pkg/config"
)

// FuzzCompile exercises the SVG compiler against malformed and
// adversarial input. Compile must never panic; a non-nil error for
// garbage input is the expected, correct behavior.
func FuzzCompile(f *testing.F) {
	f.Add([]byte(sampleSVG))
	f.Add([]byte(`<svg></svg>`))
	f.Add([]byte(`not even xml`))
	f.Add([]byte(`<svg><rect id="room" x="0" y="0" width="-1" height="abc"/></svg>`))
	f.Add([]byte(`<svg><rect id="room" x="0" y="0" width="100" height="100"/><line class="curtain-rail" x1="0" y1="0" x2="0" y2="0"/></svg>`))
	f.Add([]byte(`<svg><rect id="room" x="0" y="0" width="1e300" height="1e300"/></svg>`))

	ct := config.DefaultColorTable()
	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Compile panicked on input %q: %v", data, r)
			}
		}()
		_, _ = Compile(data, ct)
	})
}
