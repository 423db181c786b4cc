// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aclements/go-census/census"
	"github.com/aclements/go-census/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *server {
	data, err := census.ParseFile("testdata/data.csv")
	require.NoError(t, err)
	s, err := newServer(data, chart.DefaultLayout())
	require.NoError(t, err)
	return s
}

func get(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", url, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServeMain(t *testing.T) {
	h := testServer(t).handler()

	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Obese (%) vs. In Poverty %</h1>")
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, `class="active" data-value="poverty"`)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/nope").Code)
}

func TestServeSelect(t *testing.T) {
	s := testServer(t)
	h := s.handler()

	rec := get(t, h, "/select?axis=x&attr=income")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, census.Income, s.ctl.Selection().X)

	// The first render after a change animates the marks; later
	// renders do not.
	body := get(t, h, "/chart.svg").Body.String()
	assert.Contains(t, body, `attributeName="cx"`)
	assert.Contains(t, body, `class="active" data-value="income"`)
	assert.Contains(t, body, `class="inactive" data-value="poverty"`)
	assert.NotContains(t, get(t, h, "/chart.svg").Body.String(), "<animate")

	// Selecting the current attribute changes nothing.
	get(t, h, "/select?axis=x&attr=income")
	assert.NotContains(t, get(t, h, "/chart.svg").Body.String(), "<animate")
}

func TestServeSelectErrors(t *testing.T) {
	s := testServer(t)
	h := s.handler()
	for _, url := range []string{
		"/select?axis=z&attr=income",
		"/select?axis=x&attr=height",
		"/select?axis=x&attr=smokes",
		"/select",
	} {
		assert.Equal(t, http.StatusBadRequest, get(t, h, url).Code, url)
	}
	assert.Equal(t, chart.DefaultSelection(), s.ctl.Selection())
}

func TestServeImages(t *testing.T) {
	h := testServer(t).handler()

	rec := get(t, h, "/chart.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))

	rec = get(t, h, "/chart.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestRender(t *testing.T) {
	data, err := census.ParseFile("testdata/data.csv")
	require.NoError(t, err)
	sel := chart.Selection{X: census.Age, Y: census.Smokes}

	for _, format := range []string{"svg", "gg"} {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, data, sel, format, true), format)
		assert.Contains(t, buf.String(), "Age (Median)", format)
	}

	var buf bytes.Buffer
	require.NoError(t, render(&buf, data, sel, "png", false))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	assert.Error(t, render(&buf, data, sel, "pdf", false))
	assert.Error(t, render(&buf, census.Dataset{}, sel, "svg", false))
}

func TestPrintTable(t *testing.T) {
	data, err := census.ParseFile("testdata/data.csv")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printTable(&buf, data, chart.DefaultSelection()))
	out := buf.String()
	assert.Contains(t, out, "POVERTY")
	assert.Contains(t, out, "Alabama")
	assert.Contains(t, out, "x domain: [")
	assert.Equal(t, 1, strings.Count(out, "Delaware"))
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "CENSUSPLOT_HTTP", envName("http"))
	assert.Equal(t, "CENSUSPLOT_LOG_LEVEL", envName("log-level"))
}
