package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	e := NoopEditorHooks{}
	e.OnModeChange("idle", "moving")
	e.OnSelectionChange(3)

	r := NoopReplayHooks{}
	r.OnReplayStart(ctx, "drag", 4)
	r.OnReplayComplete(ctx, "drag", 4, time.Second, nil)

	rh := NoopRenderHooks{}
	rh.OnRenderStart(ctx, "svg", 10)
	rh.OnRenderComplete(ctx, "svg", 2048, time.Millisecond, nil)
}

type recordingEditorHooks struct {
	transitions []string
	selections  []int
}

func (h *recordingEditorHooks) OnModeChange(from, to string) {
	h.transitions = append(h.transitions, from+">"+to)
}

func (h *recordingEditorHooks) OnSelectionChange(n int) { h.selections = append(h.selections, n) }

type countingReplayHooks struct{ started, completed int }

func (h *countingReplayHooks) OnReplayStart(context.Context, string, int) { h.started++ }
func (h *countingReplayHooks) OnReplayComplete(context.Context, string, int, time.Duration, error) {
	h.completed++
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Editor().(NoopEditorHooks); !ok {
		t.Error("Editor() should return NoopEditorHooks by default")
	}
	if _, ok := Replay().(NoopReplayHooks); !ok {
		t.Error("Replay() should return NoopReplayHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	editor := &recordingEditorHooks{}
	SetEditorHooks(editor)
	replay := &countingReplayHooks{}
	SetReplayHooks(replay)

	Editor().OnModeChange("idle", "walking")
	Editor().OnSelectionChange(1)
	Replay().OnReplayStart(context.Background(), "x", 1)

	if len(editor.transitions) != 1 || editor.transitions[0] != "idle>walking" {
		t.Errorf("transitions = %v", editor.transitions)
	}
	if len(editor.selections) != 1 || editor.selections[0] != 1 {
		t.Errorf("selections = %v", editor.selections)
	}
	if replay.started != 1 {
		t.Errorf("started = %d, want 1", replay.started)
	}

	// nil registrations are ignored
	SetEditorHooks(nil)
	if Editor() != EditorHooks(editor) {
		t.Error("SetEditorHooks(nil) should keep the registered hooks")
	}

	Reset()
	if _, ok := Editor().(NoopEditorHooks); !ok {
		t.Error("Reset() should restore NoopEditorHooks")
	}
}
