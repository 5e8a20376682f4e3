package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pedrodamas1/chemeq/internal/experiment"
)

func TestTitrationSVG(t *testing.T) {
	res := &experiment.TitrationResult{
		Token:   "Na",
		Targets: []float64{0.9, 1.0, 1.1},
		PH:      []float64{1.0, 7.0, 13.0},
	}

	svg := TitrationSVG(res)
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<polyline") {
		t.Error("missing curve polyline")
	}
	if !strings.Contains(svg, "total Na") {
		t.Error("missing axis label")
	}
}

func TestTitrationSVGEmpty(t *testing.T) {
	svg := TitrationSVG(&experiment.TitrationResult{Token: "Na"})
	if strings.Contains(svg, "<polyline") {
		t.Error("empty sweep should render no curve")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("document must still close")
	}
}

func TestWriteTitrationSVG(t *testing.T) {
	res := &experiment.TitrationResult{
		Token:   "Na",
		Targets: []float64{0.9, 1.1},
		PH:      []float64{1.0, 13.0},
	}
	path := filepath.Join(t.TempDir(), "curve.svg")
	if err := WriteTitrationSVG(path, res); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("file does not contain SVG")
	}
}
