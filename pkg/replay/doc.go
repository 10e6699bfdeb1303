// Package replay runs scripted input sequences against an editor controller.
//
// A script is YAML. It names the items to start from, an optional viewport
// and an ordered list of steps. Each step carries exactly one action and an
// optional expectation checked right after the action:
//
//	name: drag a box
//	items:
//	  - {key: a, x: 0, y: 0, w: 40, h: 40, type: box}
//	steps:
//	  - down: {x: 10, y: 10, target: "item:a"}
//	    expect: {mode: moving, selection: [a]}
//	  - move: {x: 30, y: 10}
//	    expect:
//	      items:
//	        a: {x: 20}
//	  - up:
//	    expect: {mode: idle}
//	  - wheel: {dy: -100, zoom: true}
//	    expect: {scale: 1.1}
//
// # Actions
//
//   - down, move, up: pointer events; x/y are page coordinates, offset_x and
//     offset_y default to them
//   - wheel: dx, dy, zoom and the pointer position x/y
//   - keydown, keyup: a key code such as "Space"
//   - reset: ends any gesture and clears the selection
//
// # Targets
//
// Pointer targets are written as "canvas" (the default), "none",
// "item:<key>", "handle:<key>:<dir>", "scrollbar-x" or "scrollbar-y".
//
// # Expectations
//
// Unset fields are not checked. Numbers compare with a small tolerance. The
// first failed expectation stops the run with an
// [errors.ErrCodeExpectation] error naming the step.
package replay
