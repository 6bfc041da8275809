package io

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gointerp/math/interpolate"
)

const ExampleConfigFile = `[Interpolator]

#######################
# Required Parameters #
#######################

# The grid data. Exactly one of Table and Snapshot must be set.

# Table is a whitespace separated text file in long format: every line holds
# Dims coordinates followed by the value at that grid point. Lines starting
# with # are ignored. Grid points which are never listed are NaN, and
# queries which need them fail. Such tables need Strategy Linear or Nearest.
Table = path/to/grid.txt
# Snapshot is a .json, .yaml or .yml file written by 'gointerp convert'. A
# snapshot already records its strategy and extrapolation, so the optional
# parameters below are ignored when it is used.
# Snapshot = path/to/interpolator.yaml

# Number of coordinate columns in Table.
Dims = 2

#######################
# Optional Parameters #
#######################

# Strategy must be one of [ Linear | Nearest | LeftNearest | RightNearest |
# Cubic ]. LeftNearest, RightNearest and Cubic only work with Dims = 1.
# Default is Linear.
# Strategy = Linear

# Settings for Cubic. Boundary is one of [ Natural | Clamped | NotAKnot |
# Periodic ]. LeftSlope and RightSlope are the end slopes of Clamped splines.
# CubicExtrapolate is one of [ Linear | Spline | Wrap ] and decides how the
# spline is continued when Extrapolate = Enable.
# Boundary = Natural
# LeftSlope = 0
# RightSlope = 0
# CubicExtrapolate = Linear

# What to do with points outside the grid. One of [ Error | Enable | Fill |
# Clamp | Wrap ]. Enable only works with Linear and Cubic. Fill returns the
# value of Fill. Default is Error.
# Extrapolate = Error
# Fill = nan

[Plot]

# Used by 'gointerp plot', which draws the interpolator along one axis.

# Index of the axis to vary.
Axis = 0

# The point the slice passes through. Give one Origin line per dimension.
# The coordinate along Axis is ignored. Defaults to the center of the grid.
# Origin = 0.5
# Origin = 0.5

# Range of the slice along Axis. Defaults to the grid range.
# Lo = 0
# Hi = 1

# Number of evaluations. Default is 200.
# Points = 200

# Output image. Default is slice.png.
# Output = slice.png
# Title = Interpolated slice`

type InterpolatorConfig struct {
	// Required
	Table, Snapshot string
	Dims            int

	// Optional
	Strategy              string
	Boundary              string
	LeftSlope, RightSlope float64
	CubicExtrapolate      string
	Extrapolate           string
	Fill                  float64
}

func (con *InterpolatorConfig) ValidTable() bool    { return con.Table != "" }
func (con *InterpolatorConfig) ValidSnapshot() bool { return con.Snapshot != "" }
func (con *InterpolatorConfig) ValidDims() bool     { return con.Dims > 0 }

// CheckInit checks that the configuration describes a buildable
// interpolator, short of reading any files.
func (con *InterpolatorConfig) CheckInit() error {
	if con.ValidTable() == con.ValidSnapshot() {
		return fmt.Errorf("Exactly one of 'Table' and 'Snapshot' must be set.")
	} else if con.ValidSnapshot() {
		return nil
	}

	if !con.ValidDims() {
		return fmt.Errorf("'Dims' must be positive, but is %d.", con.Dims)
	}
	kind, err := interpolate.ParseStrategyKind(con.Strategy)
	if err != nil {
		return fmt.Errorf("Unrecognized 'Strategy' value '%s'.", con.Strategy)
	} else if con.Dims > 1 && kind != interpolate.StrategyLinear &&
		kind != interpolate.StrategyNearest {
		return fmt.Errorf(
			"Strategy '%s' requires 'Dims' = 1, but 'Dims' is %d.",
			con.Strategy, con.Dims,
		)
	}
	if _, err := interpolate.ParseCubicBC(con.Boundary); err != nil {
		return fmt.Errorf("Unrecognized 'Boundary' value '%s'.", con.Boundary)
	} else if _, err := interpolate.ParseCubicExtrapolate(con.CubicExtrapolate); err != nil {
		return fmt.Errorf(
			"Unrecognized 'CubicExtrapolate' value '%s'.", con.CubicExtrapolate,
		)
	} else if _, err := interpolate.ParseExtrapolateMode(con.Extrapolate); err != nil {
		return fmt.Errorf("Unrecognized 'Extrapolate' value '%s'.", con.Extrapolate)
	}
	return nil
}

// strategySnapshot describes the configured strategy in snapshot form.
// Cubic parameters are only recorded for the Cubic strategy.
func (con *InterpolatorConfig) strategySnapshot() interpolate.StrategySnapshot {
	s := interpolate.StrategySnapshot{Kind: con.Strategy}
	if strings.EqualFold(con.Strategy, interpolate.StrategyCubic.String()) {
		s.Boundary = con.Boundary
		s.Left, s.Right = con.LeftSlope, con.RightSlope
		s.Extrapolate = con.CubicExtrapolate
	}
	return s
}

// Load builds the configured interpolator. con must have passed CheckInit.
func (con *InterpolatorConfig) Load() (*interpolate.InterpolatorEnum[float64], error) {
	if con.ValidSnapshot() {
		return ReadInterpolator(con.Snapshot)
	}

	data, err := ReadTable(con.Table, con.Dims)
	if err != nil {
		return nil, err
	}

	// Missing grid points are NaN. Only the N-D engine checks for them, so
	// gappy tables always go through it.
	missing := floats.HasNaN(data.Values.Vals)
	if missing && !con.checksNaN() {
		return nil, fmt.Errorf(
			"Table %s has missing grid points, which the '%s' strategy "+
				"cannot detect. Use Linear or Nearest, or fill the table.",
			con.Table, con.Strategy,
		)
	}

	snap := interpolate.Snapshot{
		Variant:     variantOf(con.Dims, missing),
		Shape:       data.Values.Shape(),
		Values:      data.Values.Flat(),
		Grid:        data.Grid,
		Strategy:    con.strategySnapshot(),
		Extrapolate: interpolate.ExtrapolateSnapshot{Mode: con.Extrapolate, Fill: con.Fill},
	}
	ie, err := interpolate.FromSnapshot[float64](snap)
	if err != nil {
		return nil, errors.Wrapf(err, "building interpolator from %s", con.Table)
	}
	return ie, nil
}

func (con *InterpolatorConfig) checksNaN() bool {
	kind, err := interpolate.ParseStrategyKind(con.Strategy)
	return err == nil &&
		(kind == interpolate.StrategyLinear || kind == interpolate.StrategyNearest)
}

// variantOf picks the fixed-dimension interpolators where they exist and
// the data is complete.
func variantOf(dims int, missing bool) string {
	if dims <= 3 && !missing {
		return fmt.Sprintf("%dD", dims)
	}
	return "ND"
}

type PlotConfig struct {
	Axis   int
	Origin []float64
	Lo, Hi float64
	Points int
	Output string
	Title  string
}

func (con *PlotConfig) ValidRange() bool  { return con.Lo != 0 || con.Hi != 0 }
func (con *PlotConfig) ValidOrigin() bool { return len(con.Origin) > 0 }

// CheckInit checks the plot settings against an interpolator of dimension
// ndim.
func (con *PlotConfig) CheckInit(ndim int) error {
	if con.Axis < 0 || con.Axis >= ndim {
		return fmt.Errorf(
			"'Axis' must be in range [0, %d), but is %d.", ndim, con.Axis,
		)
	} else if con.ValidOrigin() && len(con.Origin) != ndim {
		return fmt.Errorf(
			"%d 'Origin' values were given, but the interpolator is %d-D.",
			len(con.Origin), ndim,
		)
	} else if con.ValidRange() && con.Lo >= con.Hi {
		return fmt.Errorf("'Lo' (%g) must be smaller than 'Hi' (%g).", con.Lo, con.Hi)
	} else if con.Points < 2 {
		return fmt.Errorf("'Points' must be at least 2, but is %d.", con.Points)
	} else if con.Output == "" {
		return fmt.Errorf("'Output' must be set.")
	}
	return nil
}

type ConfigWrapper struct {
	Interpolator InterpolatorConfig
	Plot         PlotConfig
}

func DefaultConfigWrapper() *ConfigWrapper {
	ic := InterpolatorConfig{}
	ic.Strategy = "Linear"
	ic.Boundary = "Natural"
	ic.CubicExtrapolate = "Linear"
	ic.Extrapolate = "Error"

	pc := PlotConfig{}
	pc.Points = 200
	pc.Output = "slice.png"
	return &ConfigWrapper{ic, pc}
}

// ReadConfig reads a config file on top of the defaults and checks the
// [Interpolator] section. [Plot] can only be checked once the interpolator
// has been loaded.
func ReadConfig(fname string) (*ConfigWrapper, error) {
	wrap := DefaultConfigWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, errors.Wrapf(err, "reading config %s", fname)
	}
	if err := wrap.Interpolator.CheckInit(); err != nil {
		return nil, errors.Wrapf(err, "config %s", fname)
	}
	return wrap, nil
}
