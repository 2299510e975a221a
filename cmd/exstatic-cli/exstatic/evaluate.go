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
	"strings"

	"github.com/exstatic/exstatic/logger"
	"github.com/exstatic/exstatic/native"
	"github.com/exstatic/exstatic/utils"
	"github.com/urfave/cli/v2"
)

// function describes a subcommand evaluating one exported function.
type function struct {
	name  string             // subcommand name
	usage string             // one line description
	mode  utils.ArgumentMode // positional argument of the function
}

var normalFunctions = []function{
	{"pdf", "probability density at <x>", utils.PointArg},
	{"ln-pdf", "log-density at <x>", utils.PointArg},
	{"cdf", "cumulative probability at <x>", utils.PointArg},
	{"sf", "survival probability at <x>", utils.PointArg},
	{"inverse-cdf", "quantile of probability <p>", utils.PointArg},
	{"entropy", "differential entropy", utils.NoArgs},
	{"variance", "variance", utils.NoArgs},
}

var studentsFunctions = []function{
	{"pdf", "probability density at <x>", utils.PointArg},
	{"ln-pdf", "log-density at <x>", utils.PointArg},
	{"cdf", "cumulative probability at <x>", utils.PointArg},
	{"sf", "survival probability at <x>", utils.PointArg},
	{"inverse-cdf", "quantile of probability <p>", utils.PointArg},
	{"variance", "variance; fails for df ≤ 2", utils.NoArgs},
}

// NormalCommand evaluates functions of the normal distribution.
var NormalCommand = cli.Command{
	Name:        "normal",
	Usage:       "evaluates a function of the normal distribution",
	Subcommands: newFunctionCommands(native.NormalFamily, "normal", normalFunctions),
	Description: `
The normal command evaluates a single function of the normal distribution
parameterized by --mean and --std-dev, e.g.

    exstatic normal cdf --mean 0 --std-dev 1 1.96
    exstatic normal cdf --mean 0 --std-dev 1 -- -1.96`,
}

// StudentsTCommand evaluates functions of the Student's t distribution.
var StudentsTCommand = cli.Command{
	Name:        "t",
	Usage:       "evaluates a function of the Student's t distribution",
	Subcommands: newFunctionCommands(native.StudentsFamily, "t", studentsFunctions),
	Description: `
The t command evaluates a single function of the location-scale Student's t
distribution parameterized by --mean, --std-dev and --df, e.g.

    exstatic t pdf --df 5 0`,
}

func newFunctionCommands(family native.Family, prefix string, functions []function) []*cli.Command {
	flags := []cli.Flag{
		&utils.MeanFlag,
		&utils.StdDevFlag,
		&logger.LogLevelFlag,
	}
	if family == native.StudentsFamily {
		flags = append(flags, &utils.DfFlag)
	}

	commands := make([]*cli.Command, 0, len(functions))
	for _, f := range functions {
		argsUsage, description := "", ""
		if f.mode == utils.PointArg {
			argsUsage = "[--] <x>"
			if f.name == "inverse-cdf" {
				argsUsage = "[--] <p>"
			}
			// a leading minus would be parsed as a flag
			description = fmt.Sprintf(`
Flags go before the argument. A negative argument must follow --, e.g.

    exstatic %v %v --mean 1 -- -2.5`, prefix, f.name)
		}
		commands = append(commands, &cli.Command{
			Action:      evaluateAction(family, prefix+"_"+strings.ReplaceAll(f.name, "-", "_"), f.mode),
			Name:        f.name,
			Usage:       f.usage,
			ArgsUsage:   argsUsage,
			Description: description,
			Flags:       flags,
		})
	}
	return commands
}

// evaluateAction evaluates the exported function name with the parameters given as flags.
func evaluateAction(family native.Family, name string, mode utils.ArgumentMode) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		f, err := native.Lookup(name)
		if err != nil {
			return err
		}

		cfg, err := utils.NewConfig(ctx, family, mode)
		if err != nil {
			return err
		}
		log := logger.NewLogger(cfg.LogLevel, "Evaluate")

		args, err := cfg.Arguments(f)
		if err != nil {
			return err
		}

		log.Debugf("Evaluate %v%v", f.Name, args)
		result, err := f.Call(args...)
		if err != nil {
			return fmt.Errorf("%v failed; %w", f.Name, err)
		}

		utils.PrintResult(ctx.App.Writer, f, args, result)
		return nil
	}
}
