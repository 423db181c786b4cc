// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart implements an interactive scatter plot of a census
// dataset.
//
// A Controller owns the attribute shown on each axis and the scales
// derived from them. Selecting a different attribute for an axis
// rebuilds that axis's scale and then notifies two collaborators: a
// Renderer, which re-maps every mark through the new scale, and a
// LabelMarker, which moves the "active" emphasis to the new label.
// Marks and Labels are the standard implementations of these, and
// WriteSVG, Plot, and WritePNG draw the resulting chart.
package chart

import (
	"github.com/aclements/go-census/axis"
	"github.com/aclements/go-census/census"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Selection is the attribute shown on each axis.
type Selection struct {
	X, Y census.Attribute
}

// DefaultSelection returns the selection a chart starts with.
func DefaultSelection() Selection {
	return Selection{X: census.Poverty, Y: census.Obesity}
}

// Get returns the attribute selected for axis k.
func (s Selection) Get(k axis.Kind) census.Attribute {
	if k == axis.Y {
		return s.Y
	}
	return s.X
}

func (s *Selection) set(k axis.Kind, a census.Attribute) {
	if k == axis.Y {
		s.Y = a
	} else {
		s.X = a
	}
}

var choices = map[axis.Kind][]census.Attribute{
	axis.X: {census.Poverty, census.Age, census.Income},
	axis.Y: {census.Obesity, census.Smokes, census.Healthcare},
}

// Choices returns the attributes that may be selected for axis k, in
// the order their labels are drawn.
func Choices(k axis.Kind) []census.Attribute {
	return append([]census.Attribute(nil), choices[k]...)
}

// Allowed reports whether a may be selected for axis k.
func Allowed(k axis.Kind, a census.Attribute) bool {
	for _, c := range choices[k] {
		if c == a {
			return true
		}
	}
	return false
}

// ErrNotAllowed is returned when an attribute is selected for an
// axis that does not offer it.
var ErrNotAllowed = errors.New("attribute not selectable for axis")

// A Renderer draws the marks of a chart. Remap is called after the
// scale for axis k has been rebuilt; the Renderer must re-map every
// mark's k coordinate through s.
type Renderer interface {
	Remap(k axis.Kind, s *axis.Scale)
}

// A LabelMarker emphasizes the label of the active attribute of each
// axis.
type LabelMarker interface {
	Activate(k axis.Kind, a census.Attribute)
}

// Config gives the plot area and initial selection of a Controller.
type Config struct {
	// Width and Height are the size of the plot area in pixels,
	// not including margins.
	Width, Height float64

	// Initial is the starting selection. If it is the zero
	// Selection, DefaultSelection is used.
	Initial Selection
}

// Controller is the selection state machine of a chart.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	data   census.Dataset
	cfg    Config
	sel    Selection
	scales [2]*axis.Scale

	render Renderer
	labels LabelMarker
}

// New returns a Controller for data. It builds the scales for the
// initial selection and reports both axes to r and l so they can
// draw the initial chart.
func New(data census.Dataset, cfg Config, r Renderer, l LabelMarker) (*Controller, error) {
	if cfg.Initial == (Selection{}) {
		cfg.Initial = DefaultSelection()
	}
	c := &Controller{data: data, cfg: cfg, sel: cfg.Initial, render: r, labels: l}
	for _, k := range []axis.Kind{axis.X, axis.Y} {
		a := c.sel.Get(k)
		if !Allowed(k, a) {
			return nil, errors.Wrapf(ErrNotAllowed, "%s on %v", a, k)
		}
		s, err := axis.Build(data, a, c.pixels(k), k)
		if err != nil {
			return nil, errors.Wrapf(err, "building %v scale", k)
		}
		c.scales[k] = s
	}
	for _, k := range []axis.Kind{axis.X, axis.Y} {
		c.render.Remap(k, c.scales[k])
		c.labels.Activate(k, c.sel.Get(k))
	}
	return c, nil
}

// pixels returns the pixel range of axis k. Y grows downward in
// pixel space, so larger values map to smaller pixel coordinates.
func (c *Controller) pixels(k axis.Kind) axis.Range {
	if k == axis.Y {
		return axis.Range{c.cfg.Height, 0}
	}
	return axis.Range{0, c.cfg.Width}
}

// Select shows attribute a on axis k.
//
// If a is already shown on k, Select does nothing and returns false.
// Otherwise it rebuilds the scale for k, then asks the Renderer to
// re-map the marks, then asks the LabelMarker to activate a, and
// returns true. If the scale cannot be built, the selection is left
// unchanged and no collaborator is called.
func (c *Controller) Select(k axis.Kind, a census.Attribute) (bool, error) {
	if !Allowed(k, a) {
		return false, errors.Wrapf(ErrNotAllowed, "%s on %v", a, k)
	}
	old := c.sel.Get(k)
	if a == old {
		return false, nil
	}

	s, err := axis.Build(c.data, a, c.pixels(k), k)
	if err != nil {
		return false, errors.Wrapf(err, "building %v scale", k)
	}
	c.sel.set(k, a)
	c.scales[k] = s

	lo, hi := s.Domain()
	log.WithFields(log.Fields{
		"axis": k, "from": old, "to": a, "lo": lo, "hi": hi,
	}).Debug("axis rebound")

	c.render.Remap(k, s)
	c.labels.Activate(k, a)
	return true, nil
}

// Selection returns the current selection.
func (c *Controller) Selection() Selection {
	return c.sel
}

// Scale returns the current scale of axis k.
func (c *Controller) Scale(k axis.Kind) *axis.Scale {
	return c.scales[k]
}

// Data returns the dataset plotted by c.
func (c *Controller) Data() census.Dataset {
	return c.data
}

// Size returns the size of the plot area.
func (c *Controller) Size() (width, height float64) {
	return c.cfg.Width, c.cfg.Height
}
