// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package census

import "github.com/aclements/go-gg/table"

// Table returns d as a go-gg table. It has a "state" and an "abbr"
// column of strings, followed by one float64 column per Attribute
// named after the attribute. Missing values are NaN.
func (d Dataset) Table() *table.Table {
	states := make([]string, len(d))
	abbrs := make([]string, len(d))
	for i, r := range d {
		states[i] = r.State
		abbrs[i] = r.Abbr
	}

	tab := new(table.Builder).
		Add("state", states).
		Add("abbr", abbrs)
	for _, a := range attributes {
		tab.Add(string(a), d.column(a))
	}
	return tab.Done()
}
