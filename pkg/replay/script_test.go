package replay

import (
	"strings"
	"testing"

	"github.com/matzehuels/sketchboard/pkg/editor"
	"github.com/matzehuels/sketchboard/pkg/errors"
)

func TestLoad(t *testing.T) {
	s, err := Load("testdata/drag.yaml")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Name != "drag and zoom" || len(s.Items) != 2 || len(s.Steps) != 6 {
		t.Fatalf("script = %+v", s)
	}
	if s.Steps[0].Kind != KindDown || s.Steps[0].Pointer.Target != "item:a" {
		t.Errorf("step 1 = %+v", s.Steps[0])
	}
	if s.Steps[2].Kind != KindUp || s.Steps[2].Expect == nil || s.Steps[2].Expect.Mode != "idle" {
		t.Errorf("step 3 = %+v", s.Steps[2])
	}
	if sel := s.Steps[4].Expect.Selection; sel == nil || len(*sel) != 0 {
		t.Errorf("step 5 selection = %v, want empty", sel)
	}

	unnamed, err := Load("testdata/resize.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if unnamed.Name != "resize" {
		t.Errorf("Name = %q, want file name", unnamed.Name)
	}

	if _, err := Load("testdata/missing.yaml"); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"empty", "", errors.ErrCodeInvalidScript},
		{"unknown field", "nme: x\n", errors.ErrCodeInvalidScript},
		{"two actions", "steps:\n  - {up: {}, down: {}}\n", errors.ErrCodeInvalidScript},
		{"no action", "steps:\n  - expect: {mode: idle}\n", errors.ErrCodeInvalidScript},
		{"unknown action", "steps:\n  - jump: {}\n", errors.ErrCodeInvalidScript},
		{"bad target", "steps:\n  - down: {target: \"knob:a\"}\n", errors.ErrCodeInvalidScript},
		{"bad button", "steps:\n  - down: {button: fourth}\n", errors.ErrCodeInvalidScript},
		{"bad mode", "steps:\n  - reset:\n    expect: {mode: flying}\n", errors.ErrCodeInvalidScript},
		{"duplicate key", "items:\n  - {key: a}\n  - {key: a}\n", errors.ErrCodeDuplicateKey},
		{"unknown expect item", "items:\n  - {key: a}\nsteps:\n  - reset:\n    expect: {items: {b: {x: 1}}}\n", errors.ErrCodeUnknownKey},
		{"unknown connection", "items:\n  - {key: a}\nconnections:\n  - {from: a, to: z}\n", errors.ErrCodeUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    editor.HitTarget
		wantErr bool
	}{
		{"", editor.HitTarget{Kind: editor.HitCanvas}, false},
		{"canvas", editor.HitTarget{Kind: editor.HitCanvas}, false},
		{"none", editor.HitTarget{Kind: editor.HitNone}, false},
		{"item:a", editor.OnItem("a"), false},
		{"handle:a:SE", editor.OnHandle("a", editor.DirSE), false},
		{"scrollbar-x", editor.HitTarget{Kind: editor.HitScrollbarX}, false},
		{"scrollbar-y", editor.HitTarget{Kind: editor.HitScrollbarY}, false},
		{"item:", editor.HitTarget{}, true},
		{"handle:a", editor.HitTarget{}, true},
		{"handle:a:up", editor.HitTarget{}, true},
		{"button", editor.HitTarget{}, true},
	}

	for _, tt := range tests {
		got, err := ParseTarget(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTarget(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTarget(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
