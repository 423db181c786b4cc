// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"html/template"
	"net"
	"net/http"
	"sync"

	"github.com/aclements/go-census/axis"
	"github.com/aclements/go-census/census"
	"github.com/aclements/go-census/chart"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// server serves one interactive chart. All chart state is guarded by
// mu, so requests are handled one at a time just like UI events.
type server struct {
	mu     sync.Mutex
	lay    chart.Layout
	ctl    *chart.Controller
	marks  *chart.Marks
	labels *chart.Labels
}

func newServer(data census.Dataset, lay chart.Layout) (*server, error) {
	s := &server{lay: lay, marks: chart.NewMarks(data), labels: &chart.Labels{}}
	ctl, err := chart.New(data, lay.Config(chart.DefaultSelection()), s.marks, s.labels)
	if err != nil {
		return nil, err
	}
	s.ctl = ctl
	return s, nil
}

func (s *server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.httpMain)
	mux.HandleFunc("/chart.svg", s.httpSVG)
	mux.HandleFunc("/chart.png", s.httpPNG)
	mux.HandleFunc("/select", s.httpSelect)
	return logRequests(mux)
}

func (s *server) serve(addr string) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to create server socket: %v", err)
	}
	log.Infof("Listening on http://%s", ln.Addr())
	err = http.Serve(ln, s.handler())
	log.Fatalf("failed to start HTTP server: %v", err)
}

func logRequests(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{"method": r.Method, "url": r.URL.String()}).Info("request")
		h.ServeHTTP(w, r)
	})
}

// writeSVG draws the current chart and completes any transitions it
// animated.
func (s *server) writeSVG() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var buf bytes.Buffer
	if err := chart.WriteSVG(&buf, s.lay, s.ctl.Selection(), s.marks, s.labels); err != nil {
		return nil, err
	}
	s.marks.Settle()
	return buf.Bytes(), nil
}

func (s *server) httpMain(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	svg, err := s.writeSVG()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.mu.Lock()
	sel := s.ctl.Selection()
	s.mu.Unlock()

	err = tmplMain.Execute(w, struct {
		X, Y string
		SVG  template.HTML
	}{chart.AxisLabel(sel.X), chart.AxisLabel(sel.Y), template.HTML(svg)})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

var tmplMain = template.Must(template.New("").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Y}} vs. {{.X}}</title>
<style>
body { font-family: sans-serif; }
#scatter svg { display: block; margin: auto; }
</style>
</head>
<body>
<h1>{{.Y}} vs. {{.X}}</h1>
<div id="scatter">{{.SVG}}</div>
</body>
</html>
`))

func (s *server) httpSVG(w http.ResponseWriter, r *http.Request) {
	svg, err := s.writeSVG()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

func (s *server) httpPNG(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	s.mu.Lock()
	err := chart.WritePNG(&buf, s.ctl, float64(s.lay.Width), float64(s.lay.Height))
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (s *server) httpSelect(w http.ResponseWriter, r *http.Request) {
	k, err := axis.ParseKind(r.FormValue("axis"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	a, err := census.ParseAttribute(r.FormValue("attr"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	changed, err := s.ctl.Select(k, a)
	s.mu.Unlock()
	if errors.Cause(err) == chart.ErrNotAllowed {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.WithFields(log.Fields{"axis": k, "attr": a, "changed": changed}).Info("select")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
