// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command censusplot plots state census data as an interactive
// scatter plot.
//
// censusplot reads a comma-separated dataset with a "state" column
// and the numeric columns poverty, age, income, obesity, smokes, and
// healthcare. Any of the first three can be shown on the X axis and
// any of the last three on the Y axis.
//
// Usage:
//
//	censusplot [--data file] [--log level] serve [--http addr]
//	censusplot [--data file] render [-x attr] [-y attr] [--format svg|gg|png] [--trend] [-o file]
//	censusplot [--data file] table [-x attr] [-y attr]
//
// serve starts an HTTP server showing the chart. Clicking an axis
// label rebinds that axis to the label's attribute. render writes the
// chart to a file and table prints the plotted values.
//
// Every flag may also be given as an environment variable named
// CENSUSPLOT_ followed by the upper-cased flag name, for example
// CENSUSPLOT_HTTP=:8080.
package main

import (
	"os"
	"strings"

	"github.com/aclements/go-census/axis"
	"github.com/aclements/go-census/census"
	"github.com/aclements/go-census/chart"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

type flagger interface {
	Flag(name, help string) *kingpin.FlagClause
}

// flag defines a flag that can also be set from the environment.
func flag(f flagger, name, help string) *kingpin.FlagClause {
	return f.Flag(name, help).Envar(envName(name))
}

func envName(flag string) string {
	return "CENSUSPLOT_" + strings.ToUpper(strings.Replace(flag, "-", "_", -1))
}

func attrNames(k axis.Kind) []string {
	var names []string
	for _, a := range chart.Choices(k) {
		names = append(names, string(a))
	}
	return names
}

// selectionFlags adds -x and -y flags to cmd.
func selectionFlags(cmd *kingpin.CmdClause) (x, y *string) {
	def := chart.DefaultSelection()
	x = flag(cmd, "x", "Attribute on the X axis.").Short('x').Default(string(def.X)).Enum(attrNames(axis.X)...)
	y = flag(cmd, "y", "Attribute on the Y axis.").Short('y').Default(string(def.Y)).Enum(attrNames(axis.Y)...)
	return
}

var (
	app = kingpin.New("censusplot", "Scatter plot of state census data.")

	flagLog  = flag(app, "log", "Log level: debug, info, warn, error, fatal, panic.").Default("info").Enum("debug", "info", "warn", "error", "fatal", "panic")
	flagData = flag(app, "data", "Read the dataset from FILE.").PlaceHolder("FILE").Default("data.csv").String()

	cmdServe      = app.Command("serve", "Serve the interactive chart over HTTP.")
	flagServeHTTP = flag(cmdServe, "http", "HTTP service address (e.g., ':8080').").Default("localhost:8080").String()

	cmdRender                = app.Command("render", "Write the chart to a file.")
	flagRenderX, flagRenderY = selectionFlags(cmdRender)
	flagRenderFormat         = flag(cmdRender, "format", "Output format.").Default("svg").Enum("svg", "gg", "png")
	flagRenderTrend          = flag(cmdRender, "trend", "Add a least-squares trend line (gg format only).").Bool()
	flagRenderOut            = flag(cmdRender, "out", "Write output to FILE (default: stdout).").Short('o').PlaceHolder("FILE").String()

	cmdTable               = app.Command("table", "Print the plotted values as a table.")
	flagTableX, flagTableY = selectionFlags(cmdTable)
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	level, err := log.ParseLevel(*flagLog)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	data, err := census.ParseFile(*flagData)
	if err != nil {
		log.WithError(err).Fatal("cannot load dataset")
	}
	log.WithFields(log.Fields{"path": *flagData, "records": data.Len()}).Info("loaded dataset")

	switch cmd {
	case cmdServe.FullCommand():
		s, err := newServer(data, chart.DefaultLayout())
		if err != nil {
			log.WithError(err).Fatal("cannot build chart")
		}
		s.serve(*flagServeHTTP)

	case cmdRender.FullCommand():
		sel := chart.Selection{X: census.Attribute(*flagRenderX), Y: census.Attribute(*flagRenderY)}
		f := os.Stdout
		if *flagRenderOut != "" {
			f, err = os.Create(*flagRenderOut)
			if err != nil {
				log.Fatal(err)
			}
		}
		err = render(f, data, sel, *flagRenderFormat, *flagRenderTrend)
		if f != os.Stdout {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
		if err != nil {
			log.WithError(err).Fatal("cannot render chart")
		}

	case cmdTable.FullCommand():
		sel := chart.Selection{X: census.Attribute(*flagTableX), Y: census.Attribute(*flagTableY)}
		if err := printTable(os.Stdout, data, sel); err != nil {
			log.WithError(err).Fatal("cannot build chart")
		}
	}
}
