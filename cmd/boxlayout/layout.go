package main

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-boxlayout/internal/treefile"
)

func (a *app) newLayoutCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "layout FILE...",
		Short: "Print the computed layout of each tree file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "tree" && format != "yaml" {
				return fmt.Errorf("unknown format %q: want tree or yaml", format)
			}
			return a.runLayout(cmd, args, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "tree", "output format: tree or yaml")
	return cmd
}

// runLayout lays out every file on its own tree in parallel and prints the
// results in argument order.
func (a *app) runLayout(cmd *cobra.Command, paths []string, format string) error {
	outputs := make([][]byte, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := a.layoutFile(path, format)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, out := range outputs {
		if len(paths) > 1 {
			fmt.Fprintf(w, "# %s\n", paths[i])
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	a.log.Info("laid out files", zap.Int("files", len(paths)))
	return nil
}

func (a *app) layoutFile(path, format string) ([]byte, error) {
	tree, built, err := a.loadTree(path)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case "yaml":
		boxes, err := built.Boxes(tree)
		if err != nil {
			return nil, err
		}
		if err := treefile.WriteBoxes(&buf, boxes); err != nil {
			return nil, err
		}
	default:
		if err := tree.PrintTree(built.Root, &buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
