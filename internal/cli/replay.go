package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchboard/pkg/cache"
	"github.com/matzehuels/sketchboard/pkg/document"
	"github.com/matzehuels/sketchboard/pkg/errors"
	"github.com/matzehuels/sketchboard/pkg/render"
	"github.com/matzehuels/sketchboard/pkg/replay"
)

type replayOpts struct {
	out string // final document path
	svg string // final scene SVG path
}

func (c *CLI) replayCommand() *cobra.Command {
	var opts replayOpts

	cmd := &cobra.Command{
		Use:   "replay [script.yaml]",
		Short: "Run an event script against the controller",
		Long: `Replay feeds a YAML script of pointer, wheel and key events to a fresh
controller and checks the expectations attached to each step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "write the final document to this file")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "write the final scene as SVG to this file")

	return cmd
}

func (c *CLI) runReplay(ctx context.Context, path string, opts replayOpts) error {
	logger := loggerFromContext(ctx)
	sw := startStopwatch(logger)

	for _, p := range []string{opts.out, opts.svg} {
		if p == "" {
			continue
		}
		if err := errors.ValidatePath(p); err != nil {
			return err
		}
	}

	script, err := replay.Load(path)
	if err != nil {
		return err
	}

	res, err := replay.NewRunner(logger).Run(ctx, script, c.cfg().Sizes())
	if err != nil {
		printError("Replay %s stopped after %d of %d steps", script.Name, res.Steps, len(script.Steps))
		return err
	}

	printSuccess("Replayed %s", script.Name)
	printKeyValue("Steps", res.Steps)
	printKeyValue("Mode", res.Mode)
	printKeyValue("Selection", len(res.Selection))
	printKeyValue("Scale", res.Scale)

	doc := res.Document()
	if opts.out != "" {
		if err := document.Export(doc, opts.out); err != nil {
			return err
		}
		printFile(opts.out)
	}
	if opts.svg != "" {
		vp := c.cfg().Viewport
		if script.Viewport.Width > 0 && script.Viewport.Height > 0 {
			vp.Width, vp.Height = script.Viewport.Width, script.Viewport.Height
		}
		data, err := render.Artifact(doc, cache.ArtifactOpts{
			Format:   render.FormatSVG,
			Width:    vp.Width,
			Height:   vp.Height,
			FontSize: c.cfg().Text.FontSize,
		}, c.cfg().TextOptions()...)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.svg, data, 0o644); err != nil {
			return err
		}
		printFile(opts.svg)
	}
	if opts.out != "" {
		printNextStep("Open in the editor", appName+" edit "+opts.out)
	}

	sw.done("Replay complete")
	return nil
}
