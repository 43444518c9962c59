package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-boxlayout/internal/render"
)

func (a *app) newRenderCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw the computed layout of a tree file as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if output == "" {
				output = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
			}
			return a.runRender(path, output)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "output file (default is FILE with a .png extension)")
	flags.Float64("scale", 1, "pixels per layout unit")
	flags.String("background", "#ffffff", "background color as #rgb or #rrggbb")
	flags.Bool("labels", true, "draw node labels")
	a.bind("render.scale", flags.Lookup("scale"))
	a.bind("render.background", flags.Lookup("background"))
	a.bind("render.labels", flags.Lookup("labels"))
	return cmd
}

func (a *app) runRender(path, output string) error {
	tree, built, err := a.loadTree(path)
	if err != nil {
		return err
	}

	r, err := render.NewRenderer(tree, built.Root, render.Options{
		Scale:      a.cfg.Render.Scale,
		Background: a.cfg.Render.Background,
		Labels:     a.cfg.Render.Labels,
	})
	if err != nil {
		return err
	}
	if err := r.Render(built.Root); err != nil {
		return err
	}
	if err := r.SavePNG(output); err != nil {
		return err
	}
	a.log.Info("wrote image", zap.String("file", output))
	return nil
}
