package export

import (
	"strings"
	"testing"
)

func TestProfileSVG(t *testing.T) {
	x := []float64{0, 1000, 2000, 3000}
	elev := []float64{0, 0, -500, -800}

	svg := ProfileSVG(x, elev, 800, 400, "")
	if svg == "" {
		t.Fatal("expected SVG output")
	}
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "<polyline") {
		t.Error("missing svg/polyline elements")
	}
	if !strings.Contains(svg, `width="800"`) || !strings.Contains(svg, `height="400"`) {
		t.Error("dimensions not applied")
	}

	// one coordinate pair per node
	points := svg[strings.Index(svg, `points="`)+len(`points="`):]
	points = points[:strings.Index(points, `"`)]
	if got := len(strings.Fields(points)); got != len(x) {
		t.Errorf("expected %d points, got %d", len(x), got)
	}
}

func TestProfileSVGDegenerate(t *testing.T) {
	if svg := ProfileSVG([]float64{0}, []float64{1}, 100, 100, ""); svg != "" {
		t.Error("single point should return empty string")
	}
	if svg := ProfileSVG([]float64{0, 1}, []float64{1}, 100, 100, ""); svg != "" {
		t.Error("mismatched lengths should return empty string")
	}
}
