// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"io"

	"github.com/aclements/go-census/axis"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// WritePNG renders c's current selection as a width x height point
// PNG image. Marks are labeled with state abbreviations when the
// dataset has them.
func WritePNG(w io.Writer, c *Controller, width, height float64) error {
	sel := c.Selection()
	data := c.Data()

	pts := make(plotter.XYs, data.Len())
	labels := make([]string, data.Len())
	for i, r := range data {
		// The controller's scales guarantee both values exist.
		pts[i].X, _ = r.Value(sel.X)
		pts[i].Y, _ = r.Value(sel.Y)
		labels[i] = r.Abbr
	}

	p := plot.New()
	p.X.Label.Text = AxisLabel(sel.X)
	p.Y.Label.Text = AxisLabel(sel.Y)

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "building scatter")
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Color = color.RGBA{B: 255, A: 128}
	s.GlyphStyle.Radius = vg.Points(6)
	p.Add(s)

	if data[0].Abbr != "" {
		l, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
		if err != nil {
			return errors.Wrap(err, "building labels")
		}
		for i := range l.TextStyle {
			l.TextStyle[i].XAlign = draw.XCenter
			l.TextStyle[i].YAlign = draw.YCenter
		}
		p.Add(l)
	}

	p.X.Min, p.X.Max = c.Scale(axis.X).Domain()
	p.Y.Min, p.Y.Max = c.Scale(axis.Y).Domain()

	wt, err := p.WriterTo(vg.Points(width), vg.Points(height), "png")
	if err != nil {
		return errors.Wrap(err, "creating PNG writer")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "writing PNG")
	}
	return nil
}
