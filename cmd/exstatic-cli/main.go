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

package main

import (
	"os"

	"github.com/exstatic/exstatic/cmd/exstatic-cli/exstatic"
	"github.com/exstatic/exstatic/utils"
	"github.com/urfave/cli/v2"
)

// initExstaticApp initializes an exstatic app. This function is
// called by the main function and unit tests.
func initExstaticApp() *cli.App {
	return &cli.App{
		Name:      "Exstatic Distribution Evaluator",
		HelpName:  "exstatic",
		Usage:     "evaluates density, probabilities, quantiles and moments of the normal and Student's t distributions",
		Copyright: "(c) 2026 The exstatic Authors",
		Flags:     []cli.Flag{},
		Commands: []*cli.Command{
			&exstatic.NormalCommand,
			&exstatic.StudentsTCommand,
			&exstatic.TableCommand,
			&exstatic.VisualizeCommand,
		},
	}
}

// main implements "exstatic" cli application.
func main() {
	app := initExstaticApp()
	if err := app.Run(os.Args); err != nil {
		code := 1
		utils.PrintError(os.Stderr, err)
		os.Exit(code)
	}
}
