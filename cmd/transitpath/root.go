package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/transitpath/compare"
	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/geo"
	"github.com/katalvlaran/transitpath/loader"
	"github.com/katalvlaran/transitpath/render"
	"github.com/katalvlaran/transitpath/runner"
)

func newRootCmd() *cobra.Command {
	var (
		flags      = defaultConfig()
		configPath string
		showPaths  bool
	)

	cmd := &cobra.Command{
		Use:   "transitpath <start> <end>",
		Short: "Compare shortest-path algorithms between two stations",
		Long: `transitpath loads a station network, runs Dijkstra's algorithm, A* and
Bellman-Ford (optionally a fewest-stops search) from <start> to <end>, and
reports each algorithm's running time and path length together with which
algorithm found the shortest or longest path.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags, configPath)
			if err != nil {
				return err
			}

			return runQuery(cmd, cfg, args[0], args[1], showPaths)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&flags.Network, "network", "n", "", "network file (YAML or JSON)")
	fs.StringVar(&configPath, "config", "", "YAML config file; explicit flags override it")
	fs.StringVar(&flags.Metric, "metric", flags.Metric, "link metric: euclidean or haversine")
	fs.StringSliceVar(&flags.Algorithms, "algorithms", flags.Algorithms, "engines to run: dijkstra, astar, bellman-ford, bfs")
	fs.Float64Var(&flags.Tolerance, "tolerance", flags.Tolerance, "absolute tolerance when comparing lengths")
	fs.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&flags.Dot, "dot", "", "write a Graphviz rendering of the best path to this file")
	fs.StringVar(&flags.Metrics, "metrics", "", "write Prometheus text-format engine metrics to this file")
	fs.BoolVar(&showPaths, "paths", false, "print the path each algorithm found")

	cmd.AddCommand(newGenerateCmd(), newValidateCmd(), newDiffCmd())

	return cmd
}

func runQuery(cmd *cobra.Command, cfg config, start, end string, showPaths bool) error {
	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	metric, ok := geo.MetricByName(cfg.Metric)
	if !ok {
		return fmt.Errorf("unknown metric %q", cfg.Metric)
	}
	engines, err := runner.EnginesByName(cfg.Algorithms, metric)
	if err != nil {
		return err
	}

	g, err := loader.LoadFile(cfg.Network)
	if err != nil {
		return err
	}
	log.Info("network loaded",
		zap.String("file", cfg.Network),
		zap.Int("stations", g.StationCount()),
		zap.Int("links", g.LinkCount()),
	)

	reg := prometheus.NewRegistry()
	metrics, err := runner.NewMetrics(reg)
	if err != nil {
		return err
	}

	r := runner.New(
		runner.WithLogger(log),
		runner.WithMetric(metric),
		runner.WithEngines(engines...),
		runner.WithMetrics(metrics),
	)
	ms, err := r.Run(g, start, end)
	if err != nil {
		return err
	}
	if cfg.Metrics != "" {
		if err := prometheus.WriteToTextfile(cfg.Metrics, reg); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	outcome, err := compare.Compare(ms, compare.WithTolerance(cfg.Tolerance))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := compare.WriteReport(out, ms, outcome); err != nil {
		return err
	}
	if showPaths {
		for _, m := range ms {
			fmt.Fprintf(out, "%s: %s\n", m.Algorithm, m.Path)
		}
	}

	if cfg.Dot != "" {
		return writeDOT(cfg.Dot, g, bestPath(ms, outcome))
	}

	return nil
}

// bestPath picks the winner's path for a Shortest verdict, otherwise the
// first non-empty path.
func bestPath(ms []compare.Measurement, o compare.Outcome) core.Path {
	if o.Verdict == compare.Shortest {
		for _, m := range ms {
			if m.Algorithm == o.Algorithm {
				return m.Path
			}
		}
	}
	for _, m := range ms {
		if !m.Path.Empty() {
			return m.Path
		}
	}

	return nil
}

func writeDOT(path string, g *core.Graph, route core.Path) error {
	dot, err := render.DOT(g, route)
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(dot), 0o644)
}
