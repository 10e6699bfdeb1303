// Package pkg provides the core libraries of sketchboard, a diagram editing
// engine for box-and-connector drawings.
//
// # Overview
//
// The pkg directory is organized from the controller outwards:
//
//  1. [editor] - Pointer, wheel and key handling over a slice of items
//  2. [geom] and [textlayout] - Geometry helpers and label wrapping
//  3. [document] and [replay] - Diagram files and deterministic event scripts
//  4. [render] - SVG, PNG and JSON output plus the artifact cache
//  5. [config], [errors], [observability] - Shared infrastructure
//
// # Architecture
//
// A host (the terminal editor, the live websocket session or a replay
// script) hit-tests pointer input and forwards it to the controller:
//
//	Pointer / wheel / key events
//	         ↓
//	    [editor] Controller (modes, selection, viewport)
//	         ↓
//	    [render/sink] Scene (boxes, links, handles, marquee)
//	         ↓
//	    SVG/PNG/JSON output
//
// # Quick Start
//
//	doc, _ := document.Import("flow.json")
//	c := doc.Controller(editor.WithSizes(editor.FixedSizes{}))
//
//	c.PointerDown(editor.PointerEvent{X: 10, Y: 10, OffsetX: 10, OffsetY: 10, Target: editor.OnItem("a")})
//	c.PointerMove(editor.PointerEvent{X: 30, Y: 10, OffsetX: 30, OffsetY: 10})
//	c.PointerUp(editor.PointerEvent{})
//
//	svg := sink.RenderSVG(sink.SceneOf(c, doc.Connections, 1200, 800))
//
// [editor]: github.com/matzehuels/sketchboard/pkg/editor
// [geom]: github.com/matzehuels/sketchboard/pkg/geom
// [textlayout]: github.com/matzehuels/sketchboard/pkg/textlayout
// [document]: github.com/matzehuels/sketchboard/pkg/document
// [replay]: github.com/matzehuels/sketchboard/pkg/replay
// [render]: github.com/matzehuels/sketchboard/pkg/render
// [config]: github.com/matzehuels/sketchboard/pkg/config
// [errors]: github.com/matzehuels/sketchboard/pkg/errors
// [observability]: github.com/matzehuels/sketchboard/pkg/observability
package pkg
