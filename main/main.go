package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phil-mansfield/gointerp/io"
	"github.com/phil-mansfield/gointerp/math/interpolate"
)

type options struct {
	config  string
	verbose bool
	logFile string

	log *zap.SugaredLogger
}

func main() {
	opts := &options{log: zap.NewNop().Sugar()}
	if err := newRootCommand(opts).Execute(); err != nil {
		opts.log.Fatal(err.Error())
	}
}

func newRootCommand(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "gointerp",
		Short: "gointerp evaluates functions sampled on rectilinear grids.",
		Long: "gointerp builds an interpolator from a gcfg config file and " +
			"evaluates, converts or plots it. Run 'gointerp example-config' " +
			"for a documented config file.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose, opts.logFile)
			if err != nil {
				return err
			}
			opts.log = logger.Sugar()
			interpolate.SetLogger(logger)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.config, "config", "", "Configuration file with an [Interpolator] section.")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log at debug level.")
	flags.StringVar(&opts.logFile, "log", "", "Write logs to this file instead of stderr.")

	root.AddCommand(
		newEvalCommand(opts), newConvertCommand(opts),
		newPlotCommand(opts), newExampleConfigCommand(),
	)
	return root
}

func newLogger(verbose bool, logFile string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	if logFile != "" {
		cfg.OutputPaths = []string{logFile}
		cfg.ErrorOutputPaths = []string{logFile}
	}
	return cfg.Build()
}

// load reads the config file and builds its interpolator.
func (opts *options) load() (*io.ConfigWrapper, *interpolate.InterpolatorEnum[float64], error) {
	if opts.config == "" {
		return nil, nil, fmt.Errorf("The --config flag must be set.")
	}
	wrap, err := io.ReadConfig(opts.config)
	if err != nil {
		return nil, nil, err
	}
	ie, err := wrap.Interpolator.Load()
	if err != nil {
		return nil, nil, err
	}
	opts.log.Debugw("loaded interpolator",
		"config", opts.config, "variant", ie.Variant().String(),
		"strategy", ie.Strategy().String(), "extrapolate", ie.Extrapolate().String(),
	)
	return wrap, ie, nil
}

func newEvalCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [point...]",
		Short: "Evaluate the interpolator at points.",
		Long: "Evaluate the interpolator at each point, given as comma or " +
			"space separated coordinates. With no arguments, points are read " +
			"from stdin, one per line, skipping blank lines and # comments. " +
			"Pass \"\" to evaluate a 0-D interpolator. Values are printed " +
			"one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ie, err := opts.load()
			if err != nil {
				return err
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()

			if len(args) > 0 {
				for _, arg := range args {
					if err := evalPoint(out, ie, arg); err != nil {
						return err
					}
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for line := 1; scanner.Scan(); line++ {
				text := strings.TrimSpace(scanner.Text())
				if text == "" || strings.HasPrefix(text, "#") {
					continue
				}
				if err := evalPoint(out, ie, text); err != nil {
					return errors.Wrapf(err, "line %d", line)
				}
			}
			return scanner.Err()
		},
	}
}

func evalPoint(out *bufio.Writer, ie *interpolate.InterpolatorEnum[float64], text string) error {
	point, err := parsePoint(text)
	if err != nil {
		return err
	}
	v, err := ie.Interpolate(point)
	if err != nil {
		return errors.Wrapf(err, "evaluating %v", point)
	}
	_, err = fmt.Fprintln(out, strconv.FormatFloat(v, 'g', -1, 64))
	return err
}

// parsePoint reads coordinates separated by commas and/or whitespace. The
// empty string is the 0-D point.
func parsePoint(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	point := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("Coordinate '%s' of point '%s' is not a number.", f, text)
		}
		point[i] = x
	}
	return point, nil
}

func newConvertCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert output",
		Short: "Write the interpolator to a .json, .yaml or .yml snapshot.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ie, err := opts.load()
			if err != nil {
				return err
			}
			if err := io.WriteSnapshot(args[0], ie.Snapshot()); err != nil {
				return err
			}
			opts.log.Infow("wrote snapshot", "file", args[0])
			return nil
		},
	}
}

func newPlotCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plot",
		Short: "Plot a 1-D slice of the interpolator, as set by the [Plot] section.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wrap, ie, err := opts.load()
			if err != nil {
				return err
			}
			pc := &wrap.Plot
			if err := pc.CheckInit(ie.NDim()); err != nil {
				return errors.Wrapf(err, "config %s", opts.config)
			}

			xs, ys, err := slice(ie, pc)
			if err != nil {
				return err
			}

			plt.Figure()
			plt.Plot(xs, ys, "k", plt.LW(2))
			if pc.Title != "" {
				plt.Title(pc.Title)
			}
			plt.XLabel(fmt.Sprintf("$x_%d$", pc.Axis), plt.FontSize(16))
			plt.YLabel("$f$", plt.FontSize(16))
			plt.SaveFig(pc.Output)
			plt.Execute()

			opts.log.Infow("wrote plot", "file", pc.Output, "points", len(xs))
			return nil
		},
	}
}

// slice evaluates ie along pc.Axis. Unset ranges default to the grid's
// extent and unset origins to the grid's center.
func slice(
	ie *interpolate.InterpolatorEnum[float64], pc *io.PlotConfig,
) (xs, ys []float64, err error) {
	grid := ie.Snapshot().Grid
	axis := grid[pc.Axis]

	lo, hi := axis[0], axis[len(axis)-1]
	if pc.ValidRange() {
		lo, hi = pc.Lo, pc.Hi
	}

	point := make([]float64, len(grid))
	for i, g := range grid {
		if pc.ValidOrigin() {
			point[i] = pc.Origin[i]
		} else {
			point[i] = (g[0] + g[len(g)-1]) / 2
		}
	}

	xs, ys = make([]float64, pc.Points), make([]float64, pc.Points)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(pc.Points-1)
		point[pc.Axis] = xs[i]
		if ys[i], err = ie.Interpolate(point); err != nil {
			return nil, nil, errors.Wrapf(err, "evaluating slice at %v", point)
		}
	}
	return xs, ys, nil
}

func newExampleConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config",
		Short: "Print a documented example config file to stdout.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), io.ExampleConfigFile)
		},
	}
}
