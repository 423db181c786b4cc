// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aclements/go-census/axis"
	"github.com/aclements/go-census/census"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeChart(t *testing.T, data census.Dataset, sel ...census.Attribute) (string, *Marks) {
	lay := DefaultLayout()
	marks, labels := NewMarks(data), &Labels{}
	c, err := New(data, lay.Config(DefaultSelection()), marks, labels)
	require.NoError(t, err)
	for _, a := range sel {
		k := axis.X
		if Allowed(axis.Y, a) {
			k = axis.Y
		}
		_, err := c.Select(k, a)
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, lay, c.Selection(), marks, labels))
	return buf.String(), marks
}

func TestWriteSVG(t *testing.T) {
	data, err := census.ParseFile("testdata/data.csv")
	require.NoError(t, err)

	out, _ := writeChart(t, data)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="960"`)
	assert.Contains(t, out, "translate(100,20)")
	assert.Equal(t, data.Len(), strings.Count(out, `class="mark"`))
	assert.Contains(t, out, "<title>Alabama")
	assert.Contains(t, out, "In Poverty %: 19.3")
	assert.Contains(t, out, "Obese %: 33.5")
	assert.Contains(t, out, ">AL</text>")
	assert.Contains(t, out, `/select?axis=x&amp;attr=age`)
	assert.Contains(t, out, `class="active" data-value="poverty"`)
	assert.Contains(t, out, `class="inactive" data-value="income"`)
	assert.Contains(t, out, `class="active" data-value="obesity"`)
	assert.Contains(t, out, `id="x-axis"`)
	assert.Contains(t, out, `id="y-axis"`)
	assert.NotContains(t, out, "<animate")
}

func TestWriteSVGTransition(t *testing.T) {
	data, err := census.ParseFile("testdata/data.csv")
	require.NoError(t, err)

	out, marks := writeChart(t, data, census.Smokes)
	assert.Contains(t, out, `attributeName="cy"`)
	assert.NotContains(t, out, `attributeName="cx"`)
	// Only the rebound axis fades in.
	assert.Contains(t, out, `href="#y-axis" attributeName="opacity" from="0" to="1"`)
	assert.NotContains(t, out, `href="#x-axis"`)
	assert.Contains(t, out, `class="active" data-value="smokes"`)
	assert.Contains(t, out, `class="inactive" data-value="obesity"`)

	marks.Settle()
	var buf bytes.Buffer
	labels := &Labels{}
	labels.Activate(axis.X, census.Poverty)
	labels.Activate(axis.Y, census.Smokes)
	require.NoError(t, WriteSVG(&buf, DefaultLayout(), Selection{census.Poverty, census.Smokes}, marks, labels))
	assert.NotContains(t, buf.String(), "<animate")
}

func TestLayout(t *testing.T) {
	w, h := DefaultLayout().PlotSize()
	assert.Equal(t, 820.0, w)
	assert.Equal(t, 400.0, h)
	cfg := DefaultLayout().Config(Selection{})
	assert.Equal(t, Config{Width: 820, Height: 400}, cfg)
}
