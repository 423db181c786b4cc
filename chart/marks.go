// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"time"

	"github.com/aclements/go-census/axis"
	"github.com/aclements/go-census/census"
)

// TransitionDuration is how long a mark takes to move to its new
// position after an axis is rebound.
const TransitionDuration = time.Second

// Mark is the drawn circle of one record.
type Mark struct {
	Record *census.Record

	// Pos is the current pixel position, indexed by axis.Kind.
	Pos [2]float64

	// From is the position the mark is moving away from. It is
	// only meaningful on axes where Moving is set.
	From   [2]float64
	Moving [2]bool
}

// Marks holds the marks of a chart. It implements Renderer.
type Marks struct {
	marks  []Mark
	scales [2]*axis.Scale
}

// NewMarks returns one unpositioned mark per record of data.
func NewMarks(data census.Dataset) *Marks {
	ms := &Marks{marks: make([]Mark, len(data))}
	for i, r := range data {
		ms.marks[i].Record = r
	}
	return ms
}

// Remap moves every mark's k coordinate to its position under s. If
// the marks were already positioned on k, the move is recorded as a
// pending transition.
func (ms *Marks) Remap(k axis.Kind, s *axis.Scale) {
	placed := ms.scales[k] != nil
	ms.scales[k] = s
	for i := range ms.marks {
		m := &ms.marks[i]
		v, ok := m.Record.Value(s.Attr())
		if !ok {
			// Cannot happen for a scale built over the
			// same dataset.
			continue
		}
		if placed {
			m.From[k], m.Moving[k] = m.Pos[k], true
		}
		m.Pos[k] = s.Map(v)
	}
}

// Settle completes all pending transitions.
func (ms *Marks) Settle() {
	for i := range ms.marks {
		ms.marks[i].Moving = [2]bool{}
	}
}

// Transitioning reports whether any mark has a pending move on axis k.
func (ms *Marks) Transitioning(k axis.Kind) bool {
	for i := range ms.marks {
		if ms.marks[i].Moving[k] {
			return true
		}
	}
	return false
}

// List returns the marks in dataset order. The caller must not
// modify them.
func (ms *Marks) List() []Mark {
	return ms.marks
}

// Scale returns the scale most recently passed to Remap for axis k.
func (ms *Marks) Scale(k axis.Kind) *axis.Scale {
	return ms.scales[k]
}
