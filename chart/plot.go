// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/aclements/go-census/axis"
	"github.com/aclements/go-census/census"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// PlotOptions controls static plots.
type PlotOptions struct {
	// Trend adds a least-squares regression line.
	Trend bool
}

// Plot returns a static go-gg plot of c's current selection. The X
// and Y scales are fixed to c's scale domains.
func Plot(c *Controller, opts PlotOptions) *gg.Plot {
	sel := c.Selection()
	x, y := string(sel.X), string(sel.Y)

	plot := gg.NewPlot(c.Data().Table())
	for _, k := range []axis.Kind{axis.X, axis.Y} {
		lo, hi := c.Scale(k).Domain()
		plot.SetScale(k.String(), gg.NewLinearScaler().SetMin(lo).SetMax(hi))
	}

	plot.Stat(tooltip{sel})
	plot.Add(gg.LayerPoints{X: x, Y: y})
	plot.Add(gg.LayerTooltips{X: x, Y: y, Label: "tooltip"})

	if opts.Trend {
		plot.Save()
		plot.Stat(ggstat.LeastSquares{X: x, Y: y})
		plot.Add(gg.LayerLines{X: x, Y: y})
		plot.Restore()
	}

	plot.Add(gg.AxisLabel("x", AxisLabel(sel.X)), gg.AxisLabel("y", AxisLabel(sel.Y)))
	return plot
}

type tooltip struct {
	sel Selection
}

func (t tooltip) F(g table.Grouping) table.Grouping {
	return table.MapCols(g,
		func(state []string, xs, ys []float64, tooltip []string) {
			for i := range state {
				r := census.NewRecord(state[i], "", map[census.Attribute]float64{
					t.sel.X: xs[i], t.sel.Y: ys[i],
				})
				tooltip[i] = Tooltip(r, t.sel)
			}
		}, "state", string(t.sel.X), string(t.sel.Y))("tooltip")
}
