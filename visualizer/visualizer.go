// Copyright 2026 The exstatic Authors
// This file is part of exstatic.
//
// exstatic is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// exstatic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with exstatic. If not, see <http://www.gnu.org/licenses/>.

// Package visualizer renders density and probability curves of a distribution
// as go-echarts pages, either into a writer or through a small web server.
package visualizer

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/exstatic/exstatic/distribution"
	"github.com/exstatic/exstatic/logger"
	"github.com/exstatic/exstatic/native"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// HTML references for the rendered pages.
const densityRef = "density"
const logDensityRef = "log-density"
const probabilityRef = "probability"

// MainHtml is the index page; it takes the distribution name and the query
// string forwarded to the chart pages.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>exstatic: %[1]v</title>
  </head>
  <body>
    <h1>%[1]v</h1>
    <ul>
    <li> <h3> <a href="/` + densityRef + `%[2]v"> Density </a> </h3> </li>
    <li> <h3> <a href="/` + logDensityRef + `%[2]v"> Log-Density </a> </h3> </li>
    <li> <h3> <a href="/` + probabilityRef + `%[2]v"> Cumulative and Survival Probability </a> </h3> </li>
    </ul>
</body>
</html>
`

// series samples f at the given points.
func series(points []float64, f func(float64) float64) []opts.LineData {
	items := []opts.LineData{}
	for _, x := range points {
		items = append(items, opts.LineData{Value: [2]float64{x, f(x)}})
	}
	return items
}

// newChart creates an empty line chart with a numeric x-axis.
func newChart(title string, subtitle string) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: title,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value"}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}))
	return chart
}

// NewDensityChart plots the probability density of d.
func NewDensityChart(d distribution.Continuous, points []float64) *charts.Line {
	chart := newChart("Probability Density", d.String())
	chart.AddSeries("pdf", series(points, d.Pdf))
	return chart
}

// NewLogDensityChart plots the log-density of d.
func NewLogDensityChart(d distribution.Continuous, points []float64) *charts.Line {
	chart := newChart("Log-Density", d.String())
	chart.AddSeries("ln pdf", series(points, d.LnPdf))
	return chart
}

// NewProbabilityChart plots the cumulative and the survival probability of d.
func NewProbabilityChart(d distribution.Continuous, points []float64) *charts.Line {
	chart := newChart("Cumulative and Survival Probability", d.String())
	chart.AddSeries("cdf", series(points, d.Cdf)).AddSeries("sf", series(points, d.Sf))
	return chart
}

// Render writes a single page containing all charts of d into w.
func Render(w io.Writer, d distribution.Continuous, points []float64) error {
	page := components.NewPage()
	page.PageTitle = d.String()
	page.AddCharts(
		NewDensityChart(d, points),
		NewLogDensityChart(d, points),
		NewProbabilityChart(d, points),
	)
	return page.Render(w)
}

// Parameters select the distribution shown by the chart server. Requests may
// override Mean, StdDev and Df with the mean, std_dev and df query values.
type Parameters struct {
	Family native.Family
	Mean   float64
	StdDev float64
	Df     float64
}

// withQuery returns p overridden by the parameters present in q.
func (p Parameters) withQuery(q url.Values) (Parameters, error) {
	for name, v := range map[string]*float64{"mean": &p.Mean, "std_dev": &p.StdDev, "df": &p.Df} {
		s := q.Get(name)
		if s == "" {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return p, fmt.Errorf("invalid %v %q; %v", name, s, err)
		}
		*v = f
	}
	return p, nil
}

// NewHandler serves the index page and one page per chart. The distribution of
// every request is resolved through e, so repeated requests for the same
// parameters share one validated distribution.
func NewHandler(e *native.Evaluator, defaults Parameters, points []float64, log logger.Logger) http.Handler {
	resolve := func(w http.ResponseWriter, r *http.Request) (distribution.Continuous, bool) {
		p, err := defaults.withQuery(r.URL.Query())
		if err != nil {
			log.Warningf("bad chart request; %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
		d, err := e.Distribution(p.Family, p.Mean, p.StdDev, p.Df)
		if err != nil {
			log.Warningf("bad chart request; %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
		return d, true
	}

	render := func(name string, chart func(distribution.Continuous, []float64) *charts.Line) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			d, ok := resolve(w, r)
			if !ok {
				return
			}
			log.Infof("Render %v chart of %v", name, d)
			if err := chart(d, points).Render(w); err != nil {
				log.Errorf("cannot render %v chart; %v", name, err)
			}
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		d, ok := resolve(w, r)
		if !ok {
			return
		}
		query := ""
		if r.URL.RawQuery != "" {
			query = "?" + r.URL.Query().Encode()
		}
		fmt.Fprintf(w, MainHtml, html.EscapeString(d.String()), html.EscapeString(query))
	})
	mux.HandleFunc("/"+densityRef, render(densityRef, NewDensityChart))
	mux.HandleFunc("/"+logDensityRef, render(logDensityRef, NewLogDensityChart))
	mux.HandleFunc("/"+probabilityRef, render(probabilityRef, NewProbabilityChart))
	return mux
}

// FireUpWeb serves the charts on the given port until the server fails.
func FireUpWeb(e *native.Evaluator, defaults Parameters, points []float64, port string, log logger.Logger) error {
	return http.ListenAndServe(":"+port, NewHandler(e, defaults, points, log))
}
