// Package sink renders canvas scenes to output formats.
//
// A [Scene] is a snapshot of what a host would draw: the items with their
// selection and hover state, the links between them, the viewport and the
// live marquee or connector of an ongoing gesture. [SceneOf] captures one
// from an editor controller.
//
// Three renderers consume scenes:
//
//   - [RenderSVG]: a standalone SVG document. Items carry the editor's hit
//     classes and data attributes, so a browser host can feed clicks back
//     through [editor.Resolve].
//   - [RenderPNG]: a raster image drawn with gg. The same TrueType font is
//     used to lay out and to draw labels.
//   - [RenderJSON]: the scene with laid out label lines, for tooling.
//
// All renderers share [Option]s. Labels are read from an item's meta under
// [document.LabelKey] unless [WithLabelKey] names another key, and fall back
// to the item key.
package sink
