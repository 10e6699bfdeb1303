// Package document provides JSON import and export of diagram documents.
//
// # JSON Format
//
// A document holds the items of a canvas, the connections between them and
// the last viewport:
//
//	{
//	  "items": [
//	    {"key": "a", "x": 0, "y": 0, "w": 120, "h": 60, "type": "box",
//	     "meta": {"label": "Database"}},
//	    {"key": "b", "x": 200, "y": 0, "w": 120, "h": 60, "type": "box"}
//	  ],
//	  "connections": [
//	    {"from": "a", "to": "b"}
//	  ],
//	  "viewport": {"offset_x": 0, "offset_y": 0, "scale": 1}
//	}
//
// # Item Fields
//
// Required:
//   - x, y, w, h: geometry in virtual coordinates
//
// Optional:
//   - key: unique identity; a random UUID is assigned when missing
//   - type: item type used to look up minimum and default sizes
//   - meta: freeform object carried through untouched; the renderers read
//     the "label" key
//
// # Validation
//
// [Read] rejects duplicate keys ([errors.ErrCodeDuplicateKey]) and
// connections naming keys that do not exist ([errors.ErrCodeUnknownKey]).
// Nothing else about connections is checked: self links and parallel links
// are kept as written. A missing or zero viewport scale reads as 1; other
// scales are clamped to the editor's zoom range.
//
// # Round Trips
//
// [Write] emits every field [Read] understands, so a document read, edited
// and written back keeps its keys, order and metadata.
package document
