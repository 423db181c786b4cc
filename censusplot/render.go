// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/aclements/go-census/census"
	"github.com/aclements/go-census/chart"
	"github.com/pkg/errors"
)

// render writes the chart of data under sel to w in the given format.
func render(w io.Writer, data census.Dataset, sel chart.Selection, format string, trend bool) error {
	lay := chart.DefaultLayout()
	marks, labels := chart.NewMarks(data), &chart.Labels{}
	ctl, err := chart.New(data, lay.Config(sel), marks, labels)
	if err != nil {
		return err
	}

	switch format {
	case "svg":
		return chart.WriteSVG(w, lay, ctl.Selection(), marks, labels)
	case "gg":
		return chart.Plot(ctl, chart.PlotOptions{Trend: trend}).WriteSVG(w, lay.Width, lay.Height)
	case "png":
		return chart.WritePNG(w, ctl, float64(lay.Width), float64(lay.Height))
	}
	return errors.Errorf("unknown format %q", format)
}
