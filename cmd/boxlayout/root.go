package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/grindlemire/go-boxlayout"
	"github.com/grindlemire/go-boxlayout/internal/config"
	"github.com/grindlemire/go-boxlayout/internal/debug"
	"github.com/grindlemire/go-boxlayout/internal/treefile"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:               "boxlayout",
		Short:             "Compute flexbox layout for YAML box trees",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return debug.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./boxlayout.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Float64("width", 800, "available width; 0 means max-content")
	flags.Float64("height", 600, "available height; 0 means max-content")
	flags.Bool("round", true, "round final layout to whole pixels")
	a.bind("log.level", flags.Lookup("log-level"))
	a.bind("layout.width", flags.Lookup("width"))
	a.bind("layout.height", flags.Lookup("height"))
	a.bind("layout.rounding", flags.Lookup("round"))

	root.AddCommand(a.newLayoutCmd(), a.newRenderCmd(), newVersionCmd())
	return root
}

// init loads configuration and starts logging before any subcommand runs.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if err := debug.Init(cfg.Log.Debug()); err != nil {
		return fmt.Errorf("failed to start logging: %w", err)
	}
	a.cfg = cfg
	a.log = debug.Logger().Named(cmd.Name())
	return nil
}

func (a *app) bind(key string, flag *pflag.Flag) {
	// BindPFlag only fails for a nil flag, which is a programming error.
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// available converts the configured size to root available space.
func (a *app) available() boxlayout.Size[boxlayout.AvailableSpace] {
	axis := func(v float64) boxlayout.AvailableSpace {
		if v == 0 {
			return boxlayout.MaxContent()
		}
		return boxlayout.Definite(v)
	}
	return boxlayout.Size[boxlayout.AvailableSpace]{Width: axis(a.cfg.Layout.Width), Height: axis(a.cfg.Layout.Height)}
}

// loadTree parses path into a fresh tree and computes its layout.
func (a *app) loadTree(path string) (*boxlayout.Tree, *treefile.Built, error) {
	f, err := treefile.ParseFile(path)
	if err != nil {
		return nil, nil, err
	}
	tree := boxlayout.New(
		boxlayout.WithLogger(a.log.With(zap.String("file", path))),
		boxlayout.WithRounding(a.cfg.Layout.Rounding),
	)
	built, err := treefile.Build(tree, f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := tree.ComputeLayout(built.Root, a.available()); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, built, nil
}
