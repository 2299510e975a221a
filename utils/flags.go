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
	"github.com/urfave/cli/v2"
)

// Command line options for distribution parameters and evaluation grids.
var (
	FamilyFlag = cli.StringFlag{
		Name:    "family",
		Aliases: []string{"f"},
		Usage:   "distribution family (\"normal\" or \"t\")",
		Value:   "normal",
	}
	MeanFlag = cli.Float64Flag{
		Name:    "mean",
		Aliases: []string{"m"},
		Usage:   "location of the distribution",
		Value:   0,
	}
	StdDevFlag = cli.Float64Flag{
		Name:    "std-dev",
		Aliases: []string{"s"},
		Usage:   "scale of the distribution, must be positive",
		Value:   1,
	}
	DfFlag = cli.Float64Flag{
		Name:  "df",
		Usage: "degrees of freedom of the Student's t distribution, must be positive (\"+Inf\" for the normal limit)",
		Value: 1,
	}
	FromFlag = cli.Float64Flag{
		Name:  "from",
		Usage: "first point of the evaluation grid (default: mean - 4 std-dev)",
	}
	ToFlag = cli.Float64Flag{
		Name:  "to",
		Usage: "last point of the evaluation grid (default: mean + 4 std-dev)",
	}
	StepsFlag = cli.IntFlag{
		Name:  "steps",
		Usage: "number of intervals of the evaluation grid",
		Value: 40,
	}
	CacheFlag = cli.IntFlag{
		Name:  "cache",
		Usage: "number of validated distributions kept for reuse",
		Value: 128,
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output path",
	}
	PortFlag = cli.StringFlag{
		Name:        "port",
		Aliases:     []string{"v"},
		Usage:       "enable visualization on `PORT`",
		DefaultText: "8080",
	}
)
