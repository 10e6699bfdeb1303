package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchboard/internal/tui"
	"github.com/matzehuels/sketchboard/pkg/document"
	"github.com/matzehuels/sketchboard/pkg/errors"
)

type editOpts struct {
	readonly bool
	create   bool
	logFile  string
}

func (c *CLI) editCommand() *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "edit [doc.json]",
		Short: "Edit a document in the terminal",
		Long: `Edit opens a document in a full-screen terminal editor driven by the mouse.

Drag items to move them, drag the corner and edge handles to resize, drag
from the canvas to marquee-select. Hold space (toggled) or use the wheel to
pan, ctrl+wheel to zoom.

Keys: w write, y copy selected keys, r toggle read-only, 0 reset view,
f fit content, esc cancel, q quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.readonly, "readonly", false, "open without editing")
	cmd.Flags().BoolVar(&opts.create, "new", false, "start an empty document when the file does not exist")
	cmd.Flags().StringVar(&opts.logFile, "log", "", "write debug logs to this file (the screen is taken by the editor)")

	return cmd
}

func (c *CLI) runEdit(ctx context.Context, path string, opts editOpts) error {
	doc, err := document.Import(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) && opts.create {
		doc, err = &document.Document{Viewport: document.Viewport{Scale: 1}}, nil
	}
	if err != nil {
		return err
	}

	tuiOpts := []tui.Option{
		tui.WithSizes(c.cfg().Sizes()),
		tui.WithTextOptions(c.cfg().TextOptions()...),
		tui.WithReadonly(opts.readonly),
	}
	if opts.logFile != "" {
		l, closer, err := openLogFile(opts.logFile)
		if err != nil {
			return err
		}
		defer closer.Close()
		tuiOpts = append(tuiOpts, tui.WithLogger(l))
	}

	final, err := tui.Run(ctx, tui.New(doc, path, tuiOpts...))
	if err != nil {
		return err
	}
	if s := final.Status(); s != "" {
		printInfo("%s", s)
	}
	return nil
}
