package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchboard/pkg/buildinfo"
	"github.com/matzehuels/sketchboard/pkg/cache"
	"github.com/matzehuels/sketchboard/pkg/document"
	"github.com/matzehuels/sketchboard/pkg/errors"
	"github.com/matzehuels/sketchboard/pkg/render"
	"github.com/matzehuels/sketchboard/pkg/textlayout"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file path (or base path for multiple outputs)
	formats   []string // output formats: "svg", "png", "json"
	width     float64  // viewport width in pixels
	height    float64  // viewport height in pixels
	ratio     float64  // PNG device pixel ratio
	embedFont bool     // embed the label font into SVG output
	noCache   bool     // bypass the artifact cache
	watch     bool     // re-render whenever the document changes
}

func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{ratio: 2}

	cmd := &cobra.Command{
		Use:   "render [file|glob]...",
		Short: "Render documents to SVG, PNG or JSON",
		Long: `Render draws documents at their saved viewport.

Arguments may be glob patterns, including ** for nested directories:

  sketchboard render 'diagrams/**/*.json' -f svg,png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			if opts.width == 0 {
				opts.width = c.cfg().Viewport.Width
			}
			if opts.height == 0 {
				opts.height = c.cfg().Viewport.Height
			}
			inputs, err := expandInputs(args)
			if err != nil {
				return err
			}
			if len(inputs) > 1 && opts.output != "" {
				return errors.New(errors.ErrCodeInvalidInput, "--output cannot be used with %d documents", len(inputs))
			}
			if opts.watch && len(inputs) != 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--watch needs exactly one document, got %d", len(inputs))
			}
			return c.runRender(cmd.Context(), inputs, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "viewport width (default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "viewport height (default from config)")
	cmd.Flags().Float64Var(&opts.ratio, "ratio", opts.ratio, "PNG pixel ratio")
	cmd.Flags().BoolVar(&opts.embedFont, "embed-font", false, "embed the label font into SVG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render when the document changes")

	return cmd
}

// expandInputs resolves glob arguments. Plain paths are kept as given so a
// missing file is reported by name; a pattern without matches is an error.
func expandInputs(args []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			add(arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "pattern %q", arg)
		}
		if len(matches) == 0 {
			return nil, errors.New(errors.ErrCodeFileNotFound, "no documents match %q", arg)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return out, nil
}

// validateFormats checks that all requested formats are supported.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !slices.Contains(render.Formats, f) {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be %s)", f, strings.Join(render.Formats, ", "))
		}
	}
	return nil
}

// outputPath derives the file written for one format. A single format uses
// --output as given; several formats share its base name. A derived path
// never replaces the input document.
func outputPath(output, input, format string, single bool) string {
	if single && output != "" {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else if ext := strings.TrimPrefix(filepath.Ext(base), "."); slices.Contains(render.Formats, ext) {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if p := base + "." + format; filepath.Clean(p) != filepath.Clean(input) {
		return p
	}
	return base + ".scene." + format
}

func (c *CLI) runRender(ctx context.Context, inputs []string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	sw := startStopwatch(logger)

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()
	r := &renderer{
		store:   store,
		keyer:   cache.NewScopedKeyer(nil, buildinfo.Version+":"),
		opts:    opts,
		text:    c.cfg().TextOptions(),
		font:    c.cfg().Text.FontSize,
		logger:  logger,
		animate: !opts.watch,
	}

	for _, input := range inputs {
		raw, err := os.ReadFile(input)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.New(errors.ErrCodeFileNotFound, "document not found: %s", input)
			}
			return err
		}
		if err := r.render(ctx, input, raw); err != nil {
			return err
		}
	}
	if len(inputs) > 1 {
		sw.done("Rendered documents", "count", len(inputs))
	} else {
		sw.done("Render complete")
	}
	if !opts.watch {
		return nil
	}

	w, err := document.NewWatcher(inputs[0])
	if err != nil {
		return fmt.Errorf("watch %s: %w", inputs[0], err)
	}
	printInfo("Watching %s (ctrl+c to stop)", inputs[0])
	return w.Run(ctx, func(ch document.Change) {
		if ch.Err != nil {
			printError("%s", errors.UserMessage(ch.Err))
			return
		}
		if err := r.render(ctx, inputs[0], ch.Raw); err != nil {
			printError("%s", errors.UserMessage(err))
		}
	})
}

// renderer renders one document revision into every requested format.
type renderer struct {
	store   cache.Cache
	keyer   cache.Keyer
	opts    *renderOpts
	text    []textlayout.Option
	font    float64
	logger  *log.Logger
	animate bool
}

func (r *renderer) render(ctx context.Context, input string, raw []byte) error {
	doc, err := document.Read(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	r.logger.Infof("Rendering %s", input)

	var sp *spinner
	if r.animate {
		sp = newSpinner(ctx, os.Stderr, "Rendering "+strings.Join(r.opts.formats, ", "))
		sp.Start()
		defer sp.Stop()
	}

	allCached := true
	var written []string
	single := len(r.opts.formats) == 1
	for _, format := range r.opts.formats {
		path := outputPath(r.opts.output, input, format, single)
		if err := errors.ValidatePath(path); err != nil {
			return err
		}
		data, hit, err := render.Cached(ctx, r.store, r.keyer, raw, artifactOpts(format, r.opts, r.font), r.text...)
		if err != nil && data == nil {
			return fmt.Errorf("render %s: %w", format, err)
		}
		if err != nil {
			r.logger.Warn("Cache write failed", "error", err)
		}
		allCached = allCached && hit
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		r.logger.Debug("Wrote artifact", "format", format, "path", path, "bytes", len(data), "cached", hit)
		written = append(written, path)
	}
	if sp != nil {
		sp.Stop()
	}

	printSuccess("Rendered %s", input)
	printStats(len(doc.Items), len(doc.Connections), allCached)
	for _, p := range written {
		printFile(p)
	}
	return nil
}

func artifactOpts(format string, opts *renderOpts, fontSize float64) cache.ArtifactOpts {
	a := cache.ArtifactOpts{
		Format:    format,
		Width:     opts.width,
		Height:    opts.height,
		FontSize:  fontSize,
		EmbedFont: opts.embedFont && format == render.FormatSVG,
	}
	if format == render.FormatPNG {
		a.PixelRatio = opts.ratio
	}
	return a
}
