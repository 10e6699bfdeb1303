package render

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/sketchboard/pkg/cache"
	"github.com/matzehuels/sketchboard/pkg/document"
	"github.com/matzehuels/sketchboard/pkg/errors"
	"github.com/matzehuels/sketchboard/pkg/render/sink"
	"github.com/matzehuels/sketchboard/pkg/textlayout"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// Formats lists the supported formats.
var Formats = []string{FormatSVG, FormatPNG, FormatJSON}

// ArtifactTTL is how long cached artifacts live.
const ArtifactTTL = 24 * time.Hour

var contentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatJSON: "application/json",
}

// ContentType returns the media type of a format.
func ContentType(format string) (string, bool) {
	ct, ok := contentTypes[format]
	return ct, ok
}

// Artifact renders doc in the format named by opts.
func Artifact(doc *document.Document, opts cache.ArtifactOpts, text ...textlayout.Option) ([]byte, error) {
	scene := sink.FromDocument(doc, opts.Width, opts.Height)
	ropts := []sink.Option{sink.WithTextOptions(text...)}
	if opts.FontSize > 0 {
		ropts = append(ropts, sink.WithFontSize(opts.FontSize))
	}

	switch opts.Format {
	case FormatSVG:
		if opts.EmbedFont {
			ropts = append(ropts, sink.WithEmbeddedFont())
		}
		return sink.RenderSVG(scene, ropts...), nil
	case FormatPNG:
		if opts.PixelRatio > 0 {
			ropts = append(ropts, sink.WithPixelRatio(opts.PixelRatio))
		}
		return sink.RenderPNG(scene, ropts...)
	case FormatJSON:
		return sink.RenderJSON(scene, ropts...)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", opts.Format)
}

// Cached renders the document encoded in raw, serving and filling c. The
// key covers the raw bytes and opts, so text options must be fixed for the
// lifetime of the cache.
func Cached(ctx context.Context, c cache.Cache, k cache.Keyer, raw []byte, opts cache.ArtifactOpts, text ...textlayout.Option) (data []byte, hit bool, err error) {
	key := k.ArtifactKey(cache.Hash(raw), opts)
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		return data, true, nil
	}

	doc, err := document.Read(bytes.NewReader(raw))
	if err != nil {
		return nil, false, err
	}
	data, err = Artifact(doc, opts, text...)
	if err != nil {
		return nil, false, err
	}
	return data, false, c.Set(ctx, key, data, ArtifactTTL)
}
