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
	"math"
	"strconv"

	"github.com/exstatic/exstatic/distribution"
	"github.com/exstatic/exstatic/logger"
	"github.com/exstatic/exstatic/native"
	"github.com/urfave/cli/v2"
)

type ArgumentMode int

// Argument modes of the commands.
const (
	NoArgs   ArgumentMode = iota // requires no arguments
	PointArg                     // requires 1 argument: query point or probability
	GridArgs                     // requires no arguments, evaluates on the grid of the range flags
)

// gridHalfWidth is the default half width of the evaluation grid in units of std-dev.
const gridHalfWidth = 4

// Config holds the parameters of one command invocation.
type Config struct {
	AppName     string
	CommandName string

	Family   native.Family // distribution family
	Mean     float64       // location
	StdDev   float64       // scale
	Df       float64       // degrees of freedom (Student's t only)
	Arg      float64       // query point or probability given as argument
	From     float64       // first grid point
	To       float64       // last grid point
	Steps    int           // number of grid intervals
	Cache    int           // size of the distribution cache of the chart server
	Output   string        // output file, empty for stdout or web server
	Port     string        // port of the chart server
	LogLevel string        // level of the logging of the app action
}

type configContext struct {
	cfg  *Config       // run configuration
	log  logger.Logger // logger for printing logs in config functions
	ctx  *cli.Context  // command line context for accessing flags and command line arguments
	mode ArgumentMode  // expected positional arguments
}

func newConfigContext(cfg *Config, ctx *cli.Context, mode ArgumentMode, log logger.Logger) *configContext {
	return &configContext{
		cfg:  cfg,
		log:  log,
		ctx:  ctx,
		mode: mode,
	}
}

// NewConfig creates and initializes Config with commandline arguments. An empty
// family is taken from the family flag.
func NewConfig(ctx *cli.Context, family native.Family, mode ArgumentMode) (*Config, error) {
	cfg := createConfigFromFlags(ctx, family)
	cc := newConfigContext(cfg, ctx, mode, logger.NewLogger(cfg.LogLevel, "Config"))

	if err := cc.parseArguments(ctx.Args().Slice()); err != nil {
		return nil, fmt.Errorf("unable to parse cli arguments; %v", err)
	}
	if err := cc.adjustMissingConfigValues(); err != nil {
		return nil, fmt.Errorf("cannot adjust missing config values; %v", err)
	}
	if mode == GridArgs {
		if err := cc.validateGrid(); err != nil {
			return nil, err
		}
	}
	cc.reportNewConfig()
	return cfg, nil
}

// createConfigFromFlags returns Config instance with user specified values or the default ones.
func createConfigFromFlags(ctx *cli.Context, family native.Family) *Config {
	cfg := &Config{
		AppName:  ctx.App.HelpName,
		Family:   family,
		Mean:     ctx.Float64(MeanFlag.Name),
		StdDev:   ctx.Float64(StdDevFlag.Name),
		Df:       ctx.Float64(DfFlag.Name),
		From:     ctx.Float64(FromFlag.Name),
		To:       ctx.Float64(ToFlag.Name),
		Steps:    ctx.Int(StepsFlag.Name),
		Cache:    ctx.Int(CacheFlag.Name),
		Output:   ctx.Path(OutputFlag.Name),
		Port:     ctx.String(PortFlag.Name),
		LogLevel: ctx.String(logger.LogLevelFlag.Name),
	}
	if cfg.Family == "" {
		cfg.Family = native.Family(ctx.String(FamilyFlag.Name))
	}
	if ctx.Command != nil {
		cfg.CommandName = ctx.Command.Name
	}
	return cfg
}

// parseArguments reads the positional arguments required by the argument mode.
func (cc *configContext) parseArguments(args []string) error {
	switch cc.mode {
	case PointArg:
		if len(args) != 1 {
			return fmt.Errorf("command requires exactly 1 argument, got %d", len(args))
		}
		arg, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid argument %q; %v", args[0], err)
		}
		cc.cfg.Arg = arg
	case NoArgs, GridArgs:
		if len(args) != 0 {
			return fmt.Errorf("command takes no arguments, got %d", len(args))
		}
	default:
		return fmt.Errorf("unknown argument mode %v", cc.mode)
	}
	return nil
}

// adjustMissingConfigValues fills in defaults and centers the grid on the
// distribution if no range was given.
func (cc *configContext) adjustMissingConfigValues() error {
	cfg := cc.cfg
	if cfg.Family == "" {
		cfg.Family = native.NormalFamily
	}
	if cfg.Family != native.NormalFamily && cfg.Family != native.StudentsFamily {
		return fmt.Errorf("unknown distribution family %q", cfg.Family)
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if !cc.ctx.IsSet(FromFlag.Name) {
		cfg.From = cfg.Mean - gridHalfWidth*cfg.StdDev
	}
	if !cc.ctx.IsSet(ToFlag.Name) {
		cfg.To = cfg.Mean + gridHalfWidth*cfg.StdDev
	}
	return nil
}

// validateGrid checks the evaluation grid; distribution parameters are
// validated by the distribution constructors.
func (cc *configContext) validateGrid() error {
	cfg := cc.cfg
	if math.IsNaN(cfg.From) || math.IsNaN(cfg.To) || math.IsInf(cfg.From, 0) || math.IsInf(cfg.To, 0) {
		return fmt.Errorf("grid range must be finite; from %v to %v", cfg.From, cfg.To)
	}
	if !(cfg.From < cfg.To) {
		return fmt.Errorf("invalid grid range; from %v must be less than to %v", cfg.From, cfg.To)
	}
	if cfg.Steps < 1 {
		return fmt.Errorf("invalid number of steps %v; must be at least 1", cfg.Steps)
	}
	return nil
}

// reportNewConfig logs out the state of config in current run.
func (cc *configContext) reportNewConfig() {
	cfg := cc.cfg
	log := cc.log

	log.Noticef("Run config:")
	if cfg.Family == native.StudentsFamily {
		log.Infof("Distribution: Student's t (mean %v, std-dev %v, df %v)", cfg.Mean, cfg.StdDev, cfg.Df)
	} else {
		log.Infof("Distribution: normal (mean %v, std-dev %v)", cfg.Mean, cfg.StdDev)
	}
	switch cc.mode {
	case PointArg:
		log.Infof("Argument: %v", cfg.Arg)
	case GridArgs:
		log.Infof("Grid: %v to %v in %v steps", cfg.From, cfg.To, cfg.Steps)
	}
	if cfg.Output != "" {
		log.Infof("Output file: %v", cfg.Output)
	}
}

// Grid returns Steps+1 evenly spaced points from From to To, both included.
func (cfg *Config) Grid() []float64 {
	points := make([]float64, cfg.Steps+1)
	width := (cfg.To - cfg.From) / float64(cfg.Steps)
	for i := range points {
		points[i] = cfg.From + float64(i)*width
	}
	points[cfg.Steps] = cfg.To
	return points
}

// Distribution constructs the configured distribution.
func (cfg *Config) Distribution() (distribution.Continuous, error) {
	return native.NewDistribution(cfg.Family, cfg.Mean, cfg.StdDev, cfg.Df)
}

// Arguments maps the argument names of an exported function onto the config.
func (cfg *Config) Arguments(f native.Function) ([]float64, error) {
	args := make([]float64, len(f.Args))
	for i, name := range f.Args {
		switch name {
		case "mean":
			args[i] = cfg.Mean
		case "std_dev":
			args[i] = cfg.StdDev
		case "df":
			args[i] = cfg.Df
		case "x", "p":
			args[i] = cfg.Arg
		default:
			return nil, fmt.Errorf("no value for argument %v of %v", name, f.Name)
		}
	}
	return args, nil
}
