// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package census

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		want  []*Record
	}{
		{"basic", `state,poverty,obesity
A,10,20
B,30,40`,
			[]*Record{
				NewRecord("A", "", map[Attribute]float64{Poverty: 10, Obesity: 20}),
				NewRecord("B", "", map[Attribute]float64{Poverty: 30, Obesity: 40}),
			},
		},

		// Unknown columns are ignored and headers are
		// case-insensitive.
		{"extra columns", `id,State,ABBR,povertyMoe,age
1,Ohio,OH,0.3,39.3`,
			[]*Record{
				NewRecord("Ohio", "OH", map[Attribute]float64{Age: 39.3}),
			},
		},

		// Empty cells leave the attribute unset.
		{"empty cell", `state,smokes,healthcare
X, 12.5 ,`,
			[]*Record{
				NewRecord("X", "", map[Attribute]float64{Smokes: 12.5}),
			},
		},

		{"header only", `state,income`, []*Record{}},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(test.input))
			require.NoError(t, err)
			assert.Equal(t, Dataset(test.want), got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Equal(t, ErrNoStateColumn, errors.Cause(err))

	_, err = Parse(strings.NewReader("name,poverty\nA,1\n"))
	assert.Equal(t, ErrNoStateColumn, errors.Cause(err))

	_, err = Parse(strings.NewReader("state,poverty\nA,1\nB,lots\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"lots"`)

	for _, bad := range []string{"NaN", "Inf", "+Inf", "-inf"} {
		_, err = Parse(strings.NewReader("state,poverty\nA," + bad + "\nB,10\n"))
		require.Error(t, err, bad)
		assert.Contains(t, err.Error(), "line 2", bad)
		assert.Contains(t, err.Error(), `"`+bad+`"`, bad)
	}
}

func TestParseFile(t *testing.T) {
	d, err := ParseFile("testdata/data.csv")
	require.NoError(t, err)
	require.Equal(t, 8, d.Len())

	assert.Equal(t, "Alabama", d[0].State)
	assert.Equal(t, "AL", d[0].Abbr)
	for _, a := range Attributes() {
		_, ok := d[0].Value(a)
		assert.True(t, ok, "attribute %s", a)
	}
	v, _ := d[4].Value(Income)
	assert.Equal(t, 61933.0, v)

	_, err = ParseFile("testdata/does-not-exist.csv")
	assert.Error(t, err)
}
