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
	"fmt"
	"os"

	"github.com/exstatic/exstatic/distribution"
	"github.com/exstatic/exstatic/logger"
	"github.com/exstatic/exstatic/native"
	"github.com/exstatic/exstatic/utils"
	"github.com/exstatic/exstatic/visualizer"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand data structure for the visualize app.
var VisualizeCommand = cli.Command{
	Action: visualizeAction,
	Name:   "visualize",
	Usage:  "produces a graphical view of density and probabilities of a distribution",
	Flags: []cli.Flag{
		&utils.FamilyFlag,
		&utils.MeanFlag,
		&utils.StdDevFlag,
		&utils.DfFlag,
		&utils.FromFlag,
		&utils.ToFlag,
		&utils.StepsFlag,
		&utils.CacheFlag,
		&utils.OutputFlag,
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command renders the charts into the HTML file given by --output,
or serves them on --port if no output file is given. The server shows the
distribution of the flags by default; the mean, std_dev and df query parameters
select other distributions, of which the last --cache are kept.`,
}

// visualizeAction implements the visualize command.
func visualizeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, "", utils.GridArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Visualize")

	if cfg.Output != "" {
		d, err := cfg.Distribution()
		if err != nil {
			return err
		}
		log.Noticef("Write charts of %v to %v", d, cfg.Output)
		return writeCharts(cfg, d)
	}

	evaluator, err := native.NewEvaluator(cfg.Cache)
	if err != nil {
		return err
	}
	defaults := visualizer.Parameters{Family: cfg.Family, Mean: cfg.Mean, StdDev: cfg.StdDev, Df: cfg.Df}
	if _, err = evaluator.Distribution(defaults.Family, defaults.Mean, defaults.StdDev, defaults.Df); err != nil {
		return err
	}

	log.Noticef("Open web browser with http://localhost:%v", cfg.Port)
	log.Infof("Keep up to %v distributions requested with ?mean=, ?std_dev= and ?df=", cfg.Cache)
	log.Notice("Cancel visualize with ^C")
	return visualizer.FireUpWeb(evaluator, defaults, cfg.Grid(), cfg.Port, log)
}

// writeCharts renders all charts into the output file.
func writeCharts(cfg *utils.Config, d distribution.Continuous) (err error) {
	file, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("cannot create output file %v; %v", cfg.Output, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close output file %v; %v", cfg.Output, cerr)
		}
	}()
	return visualizer.Render(file, d, cfg.Grid())
}
