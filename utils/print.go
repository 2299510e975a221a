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

package utils

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/exstatic/exstatic/distribution"
	"github.com/exstatic/exstatic/native"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrintResult sends a formatted evaluation result into the output writer. The
// result is printed with full precision.
func PrintResult(w io.Writer, f native.Function, args []float64, result float64) {
	bold := color.New(color.Bold).SprintfFunc()
	colored := color.New(color.FgBlue, color.Bold).SprintfFunc()

	named := make([]string, len(args))
	for i, a := range args {
		named[i] = f.Args[i] + "=" + strconv.FormatFloat(a, 'g', -1, 64)
	}
	output(w, "%s(%s) = %s\n", colored(f.Name), strings.Join(named, ", "), bold(strconv.FormatFloat(result, 'g', -1, 64)))
}

// PrintError sends a formatted evaluation failure, including its kind, into the output writer.
func PrintError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold).SprintfFunc()
	if kind := distribution.Kind(err); kind != nil {
		output(w, "%s %v\n", red("[%v]", kind), err)
		return
	}
	output(w, "%s\n", red("%v", err))
}

// PrintTable sends a formatted table of density, log-density, cumulative and
// survival probability of d at the given points into the output writer.
func PrintTable(w io.Writer, d distribution.Continuous, points []float64) {
	m := message.NewPrinter(language.English)

	tbl := tablewriter.NewWriter(w)
	tbl.SetCaption(true, d.String())
	tbl.SetHeader([]string{"x", "pdf", "ln pdf", "cdf", "sf"})
	tbl.SetBorder(true)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, x := range points {
		tbl.Append([]string{
			m.Sprintf("%0.6f", x),
			formatValue(d.Pdf(x)),
			formatValue(d.LnPdf(x)),
			formatValue(d.Cdf(x)),
			formatValue(d.Sf(x)),
		})
	}

	tbl.Render()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// output the given message with formatting.
func output(w io.Writer, format string, a ...any) {
	_, err := fmt.Fprintf(w, format, a...)
	if err != nil {
		log.Println("output error", err.Error())
	}
}
