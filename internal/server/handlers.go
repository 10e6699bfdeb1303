package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/sketchboard/pkg/cache"
	sberrors "github.com/matzehuels/sketchboard/pkg/errors"
	"github.com/matzehuels/sketchboard/pkg/render"
	"github.com/matzehuels/sketchboard/pkg/replay"
	"github.com/matzehuels/sketchboard/pkg/textlayout"
)

// handleRender renders a document. Query parameters: width, height,
// ratio (PNG pixel ratio), embed (embed the font into SVG).
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	ctype, ok := render.ContentType(format)
	if !ok {
		s.writeError(w, r, sberrors.New(sberrors.ErrCodeUnsupported, "unsupported format %q", format))
		return
	}
	opts, err := s.artifactOpts(r, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, hit, err := render.Cached(r.Context(), s.cache, s.keyer, body, opts, s.cfg.TextOptions()...)
	if err != nil && data == nil {
		s.writeError(w, r, err)
		return
	}
	if err != nil {
		s.logger.Warn("Cache write failed", "error", err)
	}
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	writeBytes(w, ctype, data)
}

func (s *Server) artifactOpts(r *http.Request, format string) (cache.ArtifactOpts, error) {
	q := r.URL.Query()
	opts := cache.ArtifactOpts{
		Format:     format,
		Width:      s.cfg.Viewport.Width,
		Height:     s.cfg.Viewport.Height,
		PixelRatio: 2,
		FontSize:   s.cfg.Text.FontSize,
	}
	for name, dst := range map[string]*float64{"width": &opts.Width, "height": &opts.Height, "ratio": &opts.PixelRatio} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return opts, sberrors.New(sberrors.ErrCodeInvalidInput, "%s must be a positive number", name)
		}
		*dst = f
	}
	if v := q.Get("embed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, sberrors.New(sberrors.ErrCodeInvalidInput, "embed must be a boolean")
		}
		opts.EmbedFont = b
	}
	if format != render.FormatPNG {
		opts.PixelRatio = 0
	}
	return opts, nil
}

func writeBytes(w http.ResponseWriter, ctype string, data []byte) {
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// LayoutRequest is the body of POST /text/layout. Unset fields take the
// configured defaults.
type LayoutRequest struct {
	Text       string   `json:"text"`
	Width      float64  `json:"width"`
	FontSize   float64  `json:"font_size,omitempty"`
	MaxLines   int      `json:"max_lines,omitempty"`
	Overflow   *string  `json:"overflow,omitempty"`
	TextEndGap *float64 `json:"text_end_gap,omitempty"`
	Align      string   `json:"align,omitempty"`
	// Measurer is "face" (default), "cells" or "fixed".
	Measurer string  `json:"measurer,omitempty"`
	Advance  float64 `json:"advance,omitempty"`
}

// LayoutResponse is the result of POST /text/layout.
type LayoutResponse struct {
	Lines []textlayout.Line `json:"lines"`
	Text  string            `json:"text"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req LayoutRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, r, sberrors.Wrap(sberrors.ErrCodeInvalidFormat, err, "decode layout request"))
		return
	}

	m, err := measurer(req.Measurer, req.Advance)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts := s.cfg.TextOptions()
	if req.FontSize > 0 {
		opts = append(opts, textlayout.WithFontSize(req.FontSize))
	}
	if req.MaxLines > 0 {
		opts = append(opts, textlayout.WithMaxLines(req.MaxLines))
	}
	if req.Overflow != nil {
		opts = append(opts, textlayout.WithOverflow(*req.Overflow))
	}
	if req.TextEndGap != nil {
		opts = append(opts, textlayout.WithTextEndGap(*req.TextEndGap))
	}
	if req.Align != "" {
		a, err := textlayout.ParseAlign(req.Align)
		if err != nil {
			s.writeError(w, r, sberrors.Wrap(sberrors.ErrCodeInvalidInput, err, "align"))
			return
		}
		opts = append(opts, textlayout.WithAlign(a))
	}

	lines := textlayout.Layout(m, req.Text, req.Width, opts...)
	writeJSON(w, http.StatusOK, LayoutResponse{Lines: lines, Text: textlayout.Join(lines)})
}

func measurer(name string, advance float64) (textlayout.Measurer, error) {
	switch name {
	case "", "face":
		return textlayout.DefaultFaceMeasurer(), nil
	case "cells":
		if advance <= 0 {
			advance = 10
		}
		return textlayout.CellMeasurer{CellWidth: advance}, nil
	case "fixed":
		if advance <= 0 {
			return nil, sberrors.New(sberrors.ErrCodeInvalidInput, "fixed measurer needs a positive advance")
		}
		return textlayout.FixedWidth(advance), nil
	}
	return nil, sberrors.New(sberrors.ErrCodeInvalidInput, "unknown measurer %q", name)
}

// replayResponse carries the partial result of a failed replay.
type replayResponse struct {
	*replay.Result
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleReplay(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	script, err := replay.Parse(bytes.NewReader(body))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Run(r.Context(), script, s.cfg.Sizes())
	if err != nil {
		if res == nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, statusOf(err), replayResponse{
			Result: res,
			Error:  sberrors.UserMessage(err),
			Code:   string(sberrors.GetCode(err)),
		})
		return
	}
	writeJSON(w, http.StatusOK, replayResponse{Result: res})
}
