// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis builds the linear scales that place census records on
// a chart's X and Y axes.
package axis

import (
	"fmt"

	"github.com/aclements/go-census/census"
	"github.com/aclements/go-moremath/scale"
	"github.com/pkg/errors"
)

// Kind identifies a chart axis.
type Kind int

const (
	X Kind = iota
	Y
)

func (k Kind) String() string {
	switch k {
	case X:
		return "x"
	case Y:
		return "y"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ErrUnknownKind is returned by ParseKind.
var ErrUnknownKind = errors.New("unknown axis")

// ParseKind parses "x" or "y".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "x", "X":
		return X, nil
	case "y", "Y":
		return Y, nil
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
}

// Padding factors applied to the data bounds of each kind of axis.
// The lower bound of a Y axis is deliberately left unpadded.
var padding = [...]struct{ lo, hi float64 }{
	X: {0.8, 1.2},
	Y: {1.0, 1.2},
}

// ErrEmptyDataset is returned by Build for a dataset with no records.
var ErrEmptyDataset = errors.New("empty dataset")

// Range is a pixel interval. Range[0] is the pixel that the low end
// of the domain maps to and Range[1] the pixel for the high end;
// Range[0] may be greater than Range[1].
type Range [2]float64

// Scale maps values of one attribute linearly to pixels.
type Scale struct {
	attr census.Attribute
	kind Kind
	lin  scale.Linear
	rng  Range
}

// Build returns the scale for attr over data, mapped onto rng.
//
// The domain is [min*0.8, max*1.2] for X axes and [min, max*1.2] for
// Y axes, where min and max are taken over attr in data. Values
// outside the domain map outside rng; nothing is clamped.
//
// Build fails with ErrEmptyDataset if data has no records and with a
// *census.MissingAttributeError if any record has no value for attr.
func Build(data census.Dataset, attr census.Attribute, rng Range, kind Kind) (*Scale, error) {
	if kind != X && kind != Y {
		return nil, errors.Wrapf(ErrUnknownKind, "%v", kind)
	}
	if data.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	col, err := data.Column(attr)
	if err != nil {
		return nil, err
	}

	lo, hi := col[0], col[0]
	for _, v := range col[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	pad := padding[kind]
	return &Scale{
		attr: attr,
		kind: kind,
		lin:  scale.Linear{Min: lo * pad.lo, Max: hi * pad.hi},
		rng:  rng,
	}, nil
}

// Map returns the pixel coordinate of v. If the domain is a single
// point, every value maps to the middle of the range.
func (s *Scale) Map(v float64) float64 {
	if s.lin.Min == s.lin.Max {
		return (s.rng[0] + s.rng[1]) / 2
	}
	return s.rng[0] + s.lin.Map(v)*(s.rng[1]-s.rng[0])
}

// Domain returns the bounds of the data interval mapped onto the
// pixel range.
func (s *Scale) Domain() (lo, hi float64) {
	return s.lin.Min, s.lin.Max
}

// Range returns the pixel range of s.
func (s *Scale) Range() Range {
	return s.rng
}

// Attr returns the attribute s was built for.
func (s *Scale) Attr() census.Attribute {
	return s.attr
}

// Kind returns the axis kind s was built for.
func (s *Scale) Kind() Kind {
	return s.kind
}

// Ticks returns at most max "nice" values in the domain of s, in
// increasing order, suitable for labeling the axis.
func (s *Scale) Ticks(max int) []float64 {
	if max < 1 {
		return nil
	}
	lo, hi := s.Domain()
	if lo > hi {
		// Padding all-negative data inverts the domain.
		lo, hi = hi, lo
	}
	lin := s.lin
	lin.Min, lin.Max = lo, hi
	major, _ := lin.Ticks(scale.TickOptions{Max: max})
	var ticks []float64
	for _, t := range major {
		if t >= lo && t <= hi {
			ticks = append(ticks, t)
		}
	}
	return ticks
}
