package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphplay/builder"
	"github.com/katalvlaran/graphplay/config"
	"github.com/katalvlaran/graphplay/logger"
	"github.com/katalvlaran/graphplay/parse"
	"github.com/katalvlaran/graphplay/workspace"
)

// globals are the persistent flags shared by every subcommand.
type globals struct {
	configPath string
	logLevel   string
	sample     int
	recipe     builder.Recipe

	cfg *config.Config
	log *logrus.Logger
}

func newRootCommand(ctx context.Context, version string) *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:          "graphplay",
		Short:        "Trace, lay out and animate BFS, DFS and Dijkstra on small graphs",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}
	root.SetContext(ctx)

	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVar(&g.logLevel, "log-level", "", "log level (overrides config)")
	pf.IntVarP(&g.sample, "sample", "s", -1, "use gallery sample N instead of FILE")
	pf.StringVarP(&g.recipe.Topology, "gen", "g", "", "generate the graph instead of FILE, e.g. cycle:6+star:4")
	pf.StringVar(&g.recipe.Weights, "weights", "", "weights of generated edges: W or A..B")
	pf.Int64Var(&g.recipe.Seed, "seed", 1, "seed for generated graphs")
	pf.BoolVar(&g.recipe.Directed, "gen-directed", false, "generate one edge per connection instead of a pair")

	root.AddCommand(
		newTraceCommand(g),
		newLayoutCommand(g),
		newPlayCommand(g),
		newServeCommand(g),
		newSamplesCommand(),
		newTopologiesCommand(),
	)

	return root
}

func (g *globals) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	log, err := logger.NewWithOutput(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.log = log
	cmd.SetContext(logger.WithLogger(cmd.Context(), log))
	log.WithField("config", g.configPath).Debug("configuration loaded")

	return nil
}

// load fills w from --sample, --gen or the FILE argument ("-" reads stdin).
func (g *globals) load(cmd *cobra.Command, args []string, w *workspace.Workspace) error {
	if g.sample >= 0 && g.recipe.Topology != "" {
		return fmt.Errorf("--sample and --gen are mutually exclusive")
	}
	if g.sample >= 0 {
		return w.LoadSample(g.sample)
	}
	if g.recipe.Topology != "" {
		return w.Generate(g.recipe)
	}
	if len(args) == 0 {
		return fmt.Errorf("missing FILE (or --sample N, --gen TOPOLOGY)")
	}

	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("reading graph: %w", err)
		}
		defer f.Close()
		r = f
	}
	in, err := parse.Read(r)
	if err != nil {
		return err
	}

	return w.LoadInput(in)
}
