// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aclements/go-census/axis"
	"github.com/aclements/go-census/census"
)

var axisLabels = map[census.Attribute]string{
	census.Poverty:    "In Poverty %",
	census.Age:        "Age (Median)",
	census.Income:     "Household Income",
	census.Obesity:    "Obese (%)",
	census.Smokes:     "Smokes (%)",
	census.Healthcare: "Lacks Healthcare (%)",
}

var tooltipPrefixes = map[census.Attribute]string{
	census.Poverty:    "In Poverty %:",
	census.Age:        "Age:",
	census.Income:     "Median Income: $",
	census.Obesity:    "Obese %:",
	census.Smokes:     "% Smokers:",
	census.Healthcare: "% Lack Healthcare",
}

// AxisLabel returns the caption of the axis label that selects a.
func AxisLabel(a census.Attribute) string {
	if l, ok := axisLabels[a]; ok {
		return l
	}
	return string(a)
}

// Tooltip returns the hover text of r's mark under selection sel:
// the state name followed by one line per axis.
func Tooltip(r *census.Record, sel Selection) string {
	var b strings.Builder
	b.WriteString(r.State)
	for _, a := range []census.Attribute{sel.X, sel.Y} {
		b.WriteByte('\n')
		prefix := tooltipPrefixes[a]
		b.WriteString(prefix)
		if !strings.HasSuffix(prefix, "$") {
			b.WriteByte(' ')
		}
		if v, ok := r.Value(a); ok {
			b.WriteString(formatValue(v))
		} else {
			b.WriteString("n/a")
		}
	}
	return b.String()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Label is one clickable axis label.
type Label struct {
	Kind   axis.Kind
	Attr   census.Attribute
	Text   string
	Active bool
}

// Class returns the CSS class of l: "active" or "inactive".
func (l Label) Class() string {
	if l.Active {
		return "active"
	}
	return "inactive"
}

// Href returns the path that selects l's attribute.
func (l Label) Href() string {
	return fmt.Sprintf("/select?axis=%v&attr=%s", l.Kind, l.Attr)
}

// Labels tracks which axis label is emphasized. It implements
// LabelMarker.
type Labels struct {
	active [2]census.Attribute
}

// Activate marks a as the active label of axis k and all other
// labels of k as inactive.
func (ls *Labels) Activate(k axis.Kind, a census.Attribute) {
	ls.active[k] = a
}

// Active returns the active attribute of axis k, or "" if none has
// been activated.
func (ls *Labels) Active(k axis.Kind) census.Attribute {
	return ls.active[k]
}

// List returns the labels of axis k in drawing order.
func (ls *Labels) List(k axis.Kind) []Label {
	var out []Label
	for _, a := range choices[k] {
		out = append(out, Label{k, a, AxisLabel(a), a == ls.active[k]})
	}
	return out
}
