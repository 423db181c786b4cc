// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"html"
	"io"
	"math"

	"github.com/aclements/go-census/axis"
	svg "github.com/ajstarks/svgo"
)

// Margins is the space around the plot area, in pixels.
type Margins struct {
	Top, Right, Bottom, Left int
}

// Layout is the geometry of a drawn chart.
type Layout struct {
	// Width and Height are the size of the whole SVG image.
	Width, Height int
	Margins       Margins

	// Radius is the radius of each mark.
	Radius int

	// Ticks is the maximum number of ticks on each axis.
	Ticks int
}

// DefaultLayout returns a 960x500 layout.
func DefaultLayout() Layout {
	return Layout{
		Width:   960,
		Height:  500,
		Margins: Margins{Top: 20, Right: 40, Bottom: 80, Left: 100},
		Radius:  15,
		Ticks:   10,
	}
}

// PlotSize returns the size of the plot area inside the margins.
func (l Layout) PlotSize() (width, height float64) {
	m := l.Margins
	return float64(l.Width - m.Left - m.Right), float64(l.Height - m.Top - m.Bottom)
}

// Config returns a Controller Config for the plot area of l.
func (l Layout) Config(initial Selection) Config {
	w, h := l.PlotSize()
	return Config{Width: w, Height: h, Initial: initial}
}

const chartCSS = `
.mark { fill: blue; opacity: 0.5; }
.abbr { font: 10px sans-serif; fill: white; text-anchor: middle; pointer-events: none; }
.axis line { stroke: black; }
.axis text { font: 10px sans-serif; }
.labels text { font: 16px sans-serif; text-anchor: middle; }
.active { font-weight: bold; fill: black; cursor: default; }
.inactive { font-weight: lighter; fill: #a0a0a0; cursor: pointer; }
.inactive:hover { fill: black; }
`

// WriteSVG draws the chart made of marks and labels to w.
//
// Each mark carries its tooltip as a <title>. Marks in the middle of
// a transition animate from their old to their new position over
// TransitionDuration. Axis labels link to the path that selects
// their attribute (see Label.Href).
func WriteSVG(w io.Writer, lay Layout, sel Selection, marks *Marks, labels *Labels) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	pw, ph := lay.PlotSize()
	m := lay.Margins

	canvas.Start(lay.Width, lay.Height)
	canvas.Style("text/css", chartCSS)
	canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", m.Left, m.Top))

	// Axes. A rebound axis fades in its new ticks over the same
	// duration the marks take to move.
	dur := TransitionDuration.Seconds()
	if s := marks.Scale(axis.X); s != nil {
		canvas.Group(`id="x-axis"`, `class="axis x-axis"`, fmt.Sprintf(`transform="translate(0,%d)"`, px(ph)))
		if marks.Transitioning(axis.X) {
			canvas.Animate("#x-axis", "opacity", 0, 1, dur, 1)
		}
		canvas.Line(0, 0, px(pw), 0)
		for _, t := range s.Ticks(lay.Ticks) {
			x := px(s.Map(t))
			canvas.Line(x, 0, x, 6)
			canvas.Text(x, 18, formatValue(t), "text-anchor:middle")
		}
		canvas.Gend()
	}
	if s := marks.Scale(axis.Y); s != nil {
		canvas.Group(`id="y-axis"`, `class="axis y-axis"`)
		if marks.Transitioning(axis.Y) {
			canvas.Animate("#y-axis", "opacity", 0, 1, dur, 1)
		}
		canvas.Line(0, 0, 0, px(ph))
		for _, t := range s.Ticks(lay.Ticks) {
			y := px(s.Map(t))
			canvas.Line(-6, y, 0, y)
			canvas.Text(-9, y+3, formatValue(t), "text-anchor:end")
		}
		canvas.Gend()
	}

	// Marks.
	for i, mk := range marks.List() {
		id := fmt.Sprintf("mark%d", i)
		x, y := px(mk.Pos[axis.X]), px(mk.Pos[axis.Y])
		canvas.Group()
		canvas.Title(Tooltip(mk.Record, sel))
		canvas.Circle(x, y, lay.Radius, `class="mark"`, fmt.Sprintf(`id="%s"`, id))
		if mk.Record.Abbr != "" {
			canvas.Text(x, y+4, mk.Record.Abbr, `class="abbr"`, fmt.Sprintf(`id="%s-abbr"`, id))
		}
		for _, k := range []axis.Kind{axis.X, axis.Y} {
			if !mk.Moving[k] {
				continue
			}
			from, to := px(mk.From[k]), px(mk.Pos[k])
			canvas.Animate("#"+id, "c"+k.String(), from, to, dur, 1)
			if mk.Record.Abbr != "" {
				off := 0
				if k == axis.Y {
					off = 4
				}
				canvas.Animate("#"+id+"-abbr", k.String(), from+off, to+off, dur, 1)
			}
		}
		canvas.Gend()
	}

	// Axis labels.
	canvas.Group(`class="labels x-labels"`, fmt.Sprintf(`transform="translate(%d,%d)"`, px(pw/2), px(ph)+20))
	for i, l := range labels.List(axis.X) {
		writeLabel(canvas, l, 0, 20*(i+1))
	}
	canvas.Gend()
	canvas.Group(`class="labels y-labels"`, `transform="rotate(-90)"`)
	for i, l := range labels.List(axis.Y) {
		writeLabel(canvas, l, -px(ph/2), -m.Left+20*(i+1)-4)
	}
	canvas.Gend()

	canvas.Gend()
	canvas.End()
	return ew.err
}

func writeLabel(canvas *svg.SVG, l Label, x, y int) {
	canvas.Link(html.EscapeString(l.Href()), l.Text)
	canvas.Text(x, y, l.Text, fmt.Sprintf(`class="%s"`, l.Class()), fmt.Sprintf(`data-value="%s"`, l.Attr))
	canvas.LinkEnd()
}

// px rounds a pixel coordinate to the integer grid svgo draws on.
func px(v float64) int {
	return int(math.Round(v))
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.err = err
	return n, err
}
