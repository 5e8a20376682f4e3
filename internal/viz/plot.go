package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/pedrodamas1/chemeq/internal/equilib"
	"github.com/pedrodamas1/chemeq/internal/experiment"
)

// TitrationCurve renders a swept pH curve as a terminal plot.
func TitrationCurve(res *experiment.TitrationResult, width, height int) string {
	if width <= 0 {
		width = 70
	}
	if height <= 0 {
		height = 15
	}
	caption := fmt.Sprintf("pH vs total %s (%g to %g)",
		res.Token, res.Targets[0], res.Targets[len(res.Targets)-1])
	return asciigraph.Plot(res.PH,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption))
}

// ResultTable renders one converged solve as an aligned table.
func ResultTable(res *equilib.Result) string {
	var b strings.Builder

	b.WriteString(Header.Render(fmt.Sprintf("%-12s %6s %15s %8s", "species", "charge", "conc [M]", "-log10c")))
	b.WriteByte('\n')
	for i, sp := range res.Species {
		c := res.Concentrations[i]
		b.WriteString(fmt.Sprintf("%-12s %+6d %15.6e %8.3f\n", sp.Name, sp.Charge, c, -math.Log10(c)))
	}

	b.WriteString(Dim.Render(fmt.Sprintf("residual %.2e after %d iterations", res.Residual, res.Iterations)))
	if ph, ok := res.PH(); ok {
		b.WriteByte('\n')
		b.WriteString(Good.Render(fmt.Sprintf("pH = %.3f", ph)))
	}
	return b.String()
}
