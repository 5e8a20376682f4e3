package export

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/pedrodamas1/chemeq/internal/experiment"
)

const (
	svgWidth  = 640.0
	svgHeight = 400.0
	svgMargin = 48.0
)

// TitrationSVG renders a swept pH curve as a standalone SVG document:
// the target concentration on the x axis, pH on the y axis.
func TitrationSVG(res *experiment.TitrationResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, svgWidth, svgHeight, svgWidth, svgHeight))

	if len(res.Targets) >= 2 {
		xMin, xMax := res.Targets[0], res.Targets[len(res.Targets)-1]
		yMin, yMax := math.Inf(1), math.Inf(-1)
		for _, ph := range res.PH {
			yMin = math.Min(yMin, ph)
			yMax = math.Max(yMax, ph)
		}
		if yMax == yMin {
			yMax = yMin + 1
		}

		plotW := svgWidth - 2*svgMargin
		plotH := svgHeight - 2*svgMargin

		points := make([]string, len(res.Targets))
		for i := range res.Targets {
			x := svgMargin + plotW*(res.Targets[i]-xMin)/(xMax-xMin)
			y := svgHeight - svgMargin - plotH*(res.PH[i]-yMin)/(yMax-yMin)
			points[i] = fmt.Sprintf("%.1f,%.1f", x, y)
		}

		sb.WriteString(fmt.Sprintf(`<polyline points="%s" fill="none" stroke="#00ff00" stroke-width="1.5"/>
`, strings.Join(points, " ")))
		sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="%.0f" fill="#888888" font-family="monospace" font-size="12">total %s: %g to %g</text>
`, svgMargin, svgHeight-svgMargin/3, res.Token, xMin, xMax))
		sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="%.0f" fill="#888888" font-family="monospace" font-size="12">pH %.2f to %.2f</text>
`, svgMargin, svgMargin/2, yMin, yMax))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteTitrationSVG renders the curve to a file.
func WriteTitrationSVG(path string, res *experiment.TitrationResult) error {
	return os.WriteFile(path, []byte(TitrationSVG(res)), 0644)
}
