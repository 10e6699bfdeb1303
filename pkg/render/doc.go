// Package render groups the diagram renderers.
//
// The sink subpackage turns an editor state into output formats:
//
//	scene := sink.SceneOf(ctrl, doc.Connections, 1200, 800)
//	svg := sink.RenderSVG(scene)
//	img, err := sink.RenderPNG(scene, sink.WithPixelRatio(2))
//	dump, err := sink.RenderJSON(scene)
//
// All formats share the same label layout, produced by
// [github.com/matzehuels/sketchboard/pkg/textlayout], so a label wraps at
// the same rune in every output that measures with the same font.
package render
