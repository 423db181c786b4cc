// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package census

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoStateColumn is returned by Parse when the header row has no
// "state" column.
var ErrNoStateColumn = errors.New("no state column")

// Parse reads a comma-separated dataset from r.
//
// The first line is a header naming each column. The "state" column
// is required and "abbr" is optional. Columns named after an
// Attribute are parsed as numbers; all other columns are ignored. An
// empty cell, or a missing attribute column, leaves that attribute
// unset on the record. A cell that is not a finite number is an
// error.
func Parse(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrNoStateColumn, "empty input")
	} else if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}

	stateCol, abbrCol := -1, -1
	attrCols := map[int]Attribute{}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "state":
			stateCol = i
		case "abbr":
			abbrCol = i
		default:
			if a, err := ParseAttribute(name); err == nil {
				attrCols[i] = a
			}
		}
	}
	if stateCol < 0 {
		return nil, ErrNoStateColumn
	}

	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	d := Dataset{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "reading dataset")
		}
		line, _ := cr.FieldPos(0)

		rec := &Record{
			State:  cell(row, stateCol),
			Abbr:   cell(row, abbrCol),
			values: make(map[Attribute]float64, len(attrCols)),
		}
		for i, a := range attrCols {
			raw := cell(row, i)
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Errorf("line %d: bad %s value %q", line, a, raw)
			}
			rec.values[a] = v
		}
		d = append(d, rec)
	}
	return d, nil
}

// ParseFile reads a dataset from the file at path.
func ParseFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loading dataset")
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return d, nil
}
