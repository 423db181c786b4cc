// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package census holds per-state health and demographic records.
//
// A dataset is loaded once from a delimited text file (see Parse) and
// is never modified afterwards. Each record carries a state name and
// a numeric value for each Attribute that was present in the file.
package census

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Attribute names one numeric column of the dataset.
type Attribute string

const (
	Poverty    Attribute = "poverty"
	Age        Attribute = "age"
	Income     Attribute = "income"
	Obesity    Attribute = "obesity"
	Smokes     Attribute = "smokes"
	Healthcare Attribute = "healthcare"
)

var attributes = []Attribute{Poverty, Age, Income, Obesity, Smokes, Healthcare}

// Attributes returns all known attributes in column order.
func Attributes() []Attribute {
	return append([]Attribute(nil), attributes...)
}

// ErrUnknownAttribute is returned by ParseAttribute for names that
// are not one of Attributes.
var ErrUnknownAttribute = errors.New("unknown attribute")

// ParseAttribute returns the Attribute named s.
func ParseAttribute(s string) (Attribute, error) {
	for _, a := range attributes {
		if string(a) == s {
			return a, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownAttribute, "%q", s)
}

// Record is one row of the dataset.
type Record struct {
	// State is the full state name. It identifies the record.
	State string

	// Abbr is the postal abbreviation, or "" if the dataset did
	// not have one.
	Abbr string

	values map[Attribute]float64
}

// NewRecord returns a Record with the given values. values is
// copied.
func NewRecord(state, abbr string, values map[Attribute]float64) *Record {
	r := &Record{State: state, Abbr: abbr, values: make(map[Attribute]float64, len(values))}
	for k, v := range values {
		r.values[k] = v
	}
	return r
}

// Value returns r's value for attribute a and whether r has one.
func (r *Record) Value(a Attribute) (float64, bool) {
	v, ok := r.values[a]
	return v, ok
}

// Dataset is an ordered sequence of records.
type Dataset []*Record

// Len returns the number of records in d.
func (d Dataset) Len() int {
	return len(d)
}

// MissingAttributeError reports that a record has no value for an attribute.
type MissingAttributeError struct {
	Index int
	State string
	Attr  Attribute
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("record %d (%s) has no value for %s", e.Index, e.State, e.Attr)
}

// Column returns a's value for every record of d, in order. It fails
// with a *MissingAttributeError if any record lacks a.
func (d Dataset) Column(a Attribute) ([]float64, error) {
	col := make([]float64, len(d))
	for i, r := range d {
		v, ok := r.Value(a)
		if !ok {
			return nil, &MissingAttributeError{i, r.State, a}
		}
		col[i] = v
	}
	return col, nil
}

// column is like Column, but fills missing values with NaN.
func (d Dataset) column(a Attribute) []float64 {
	col := make([]float64, len(d))
	for i, r := range d {
		v, ok := r.Value(a)
		if !ok {
			v = math.NaN()
		}
		col[i] = v
	}
	return col
}
