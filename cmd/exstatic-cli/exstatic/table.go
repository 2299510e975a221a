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

package exstatic

import (
	"github.com/exstatic/exstatic/logger"
	"github.com/exstatic/exstatic/utils"
	"github.com/urfave/cli/v2"
)

// TableCommand data structure for the table app.
var TableCommand = cli.Command{
	Action: tableAction,
	Name:   "table",
	Usage:  "prints density and probabilities of a distribution over a range of points",
	Flags: []cli.Flag{
		&utils.FamilyFlag,
		&utils.MeanFlag,
		&utils.StdDevFlag,
		&utils.DfFlag,
		&utils.FromFlag,
		&utils.ToFlag,
		&utils.StepsFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The table command evaluates pdf, ln pdf, cdf and sf at --steps+1 evenly spaced
points between --from and --to (default: mean ± 4 std-dev).`,
}

// tableAction implements the table command.
func tableAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, "", utils.GridArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Table")

	d, err := cfg.Distribution()
	if err != nil {
		return err
	}

	log.Infof("Tabulate %v", d)
	utils.PrintTable(ctx.App.Writer, d, cfg.Grid())
	return nil
}
