// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aclements/go-census/axis"
	"github.com/aclements/go-census/census"
	"github.com/aclements/go-census/chart"
	"github.com/olekukonko/tablewriter"
)

// printTable prints each record's plotted values and the pixel
// position of its mark.
func printTable(w io.Writer, data census.Dataset, sel chart.Selection) error {
	lay := chart.DefaultLayout()
	marks := chart.NewMarks(data)
	ctl, err := chart.New(data, lay.Config(sel), marks, &chart.Labels{})
	if err != nil {
		return err
	}
	sel = ctl.Selection()

	out := tablewriter.NewWriter(w)
	out.SetHeader([]string{"state", string(sel.X), string(sel.Y), "cx", "cy"})
	out.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, m := range marks.List() {
		x, _ := m.Record.Value(sel.X)
		y, _ := m.Record.Value(sel.Y)
		out.Append([]string{
			m.Record.State,
			strconv.FormatFloat(x, 'g', -1, 64),
			strconv.FormatFloat(y, 'g', -1, 64),
			fmt.Sprintf("%.1f", m.Pos[axis.X]),
			fmt.Sprintf("%.1f", m.Pos[axis.Y]),
		})
	}
	out.Render()
	for _, k := range []axis.Kind{axis.X, axis.Y} {
		lo, hi := ctl.Scale(k).Domain()
		fmt.Fprintf(w, "%v domain: [%g, %g]\n", k, lo, hi)
	}
	return nil
}
