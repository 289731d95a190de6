// Package report renders design results for the terminal.
package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/encos-robotics/jointpd/internal/catalog"
	"github.com/encos-robotics/jointpd/internal/design"
	"github.com/encos-robotics/jointpd/internal/sweep"
)

// Comparison writes the theoretical-vs-actual table for one design.
func Comparison(w io.Writer, res design.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PARAMETER\tTHEORETICAL\tACTUAL")

	fmt.Fprintf(tw, "natural frequency (Hz)\t%.3f\t%.3f\n", res.FnDes, res.FnActual)
	fmt.Fprintf(tw, "angular frequency (rad/s)\t%.3f\t%.3f\n", res.OmegaNDes, res.OmegaNActual)
	fmt.Fprintf(tw, "damping ratio\t%.3f\t%.3f\n", res.ZetaDes, res.ZetaActual)
	fmt.Fprintf(tw, "Kp\t%.3f\t%.3f\n", res.KpDes, res.KpActual)
	fmt.Fprintf(tw, "Kd\t%.3f\t%.3f\n", res.KdDes, res.KdActual)
	fmt.Fprintf(tw, "rise time (ms)\t%s\t%s\n",
		millis(riseTime(res.OmegaNDes)), millis(res.TrActual))
	fmt.Fprintf(tw, "settling time (ms)\t%s\t%s\n",
		millis(settlingTime(res.ZetaDes, res.OmegaNDes)), millis(res.TsActual))

	return tw.Flush()
}

// Notice writes the one-line verdict under the comparison table.
func Notice(w io.Writer, res design.Result) {
	if res.Limited() {
		fmt.Fprintf(w, "gain caps limit bandwidth: %.2f Hz requested, %.2f Hz achievable at zeta %.2f\n",
			res.FnDes, res.FnActual, res.ZetaDes)
		return
	}
	fmt.Fprintln(w, "requested performance achievable within gain caps")
}

// Actuators writes the catalog as a table.
func Actuators(w io.Writer, cat *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tINERTIA (kg·m²)")
	for _, model := range cat.Models() {
		spec, _ := cat.Get(model)
		fmt.Fprintf(tw, "%s\t%.7f\n", spec.Model, spec.Inertia)
	}
	return tw.Flush()
}

// SweepTable writes one row per sweep point.
func SweepTable(w io.Writer, results []design.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FN_DES\tFN_ACTUAL\tKP\tKD\tT_R(ms)\tLIMITED")
	for _, res := range results {
		fmt.Fprintf(tw, "%.2f\t%.2f\t%.3f\t%.3f\t%s\t%v\n",
			res.FnDes, res.FnActual, res.KpActual, res.KdActual,
			millis(res.TrActual), res.Limited())
	}
	return tw.Flush()
}

// CatalogTable writes one row per actuator for a fixed target.
func CatalogTable(w io.Writer, cat *catalog.Catalog, results []design.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tINERTIA\tFN_ACTUAL\tKP\tKD\tLIMITED")
	models := cat.Models()
	for i, res := range results {
		if i >= len(models) {
			break
		}
		fmt.Fprintf(tw, "%s\t%.7f\t%.2f\t%.3f\t%.3f\t%v\n",
			models[i], res.Inertia, res.FnActual, res.KpActual, res.KdActual, res.Limited())
	}
	return tw.Flush()
}

// SweepPlot renders achieved frequency against requested frequency.
func SweepPlot(w io.Writer, sr *sweep.FrequencyResult) {
	if len(sr.Results) == 0 {
		return
	}
	achieved := make([]float64, len(sr.Results))
	for i, res := range sr.Results {
		achieved[i] = res.FnActual
	}

	graph := asciigraph.Plot(achieved,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("achieved fn (Hz) for requested %.1f–%.1f Hz",
			sr.Results[0].FnDes, sr.Results[len(sr.Results)-1].FnDes)),
	)
	fmt.Fprintln(w, graph)
}

func millis(seconds float64) string {
	if math.IsInf(seconds, 1) {
		return "unbounded"
	}
	return fmt.Sprintf("%.1f", seconds*1000)
}

func riseTime(omega float64) float64 {
	if omega <= 0 {
		return math.Inf(1)
	}
	return 1.8 / omega
}

func settlingTime(zeta, omega float64) float64 {
	if zeta <= 0 || omega <= 0 {
		return math.Inf(1)
	}
	return 4.0 / (zeta * omega)
}
