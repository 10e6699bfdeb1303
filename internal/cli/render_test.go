package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/sketchboard/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "svg"},
		{"png", "png"},
		{"svg,png,json", "svg|png|json"},
	}
	for _, tt := range tests {
		if got := strings.Join(parseFormats(tt.input), "|"); got != tt.want {
			t.Errorf("parseFormats(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		formats []string
		wantErr bool
	}{
		{[]string{"svg"}, false},
		{[]string{"svg", "png", "json"}, false},
		{[]string{"pdf"}, true},
		{[]string{"svg", "bogus"}, true},
		{nil, false},
	}
	for _, tt := range tests {
		err := validateFormats(tt.formats)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("validateFormats(%v) code = %v", tt.formats, errors.GetCode(err))
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		format string
		single bool
		want   string
	}{
		{"derived from input", "", "svg", true, "diagrams/flow.svg"},
		{"explicit single", "out.image", "png", true, "out.image"},
		{"base for many", "out", "png", false, "out.png"},
		{"known extension stripped", "out.svg", "json", false, "out.json"},
		{"derived json keeps input", "", "json", false, "diagrams/flow.scene.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, "diagrams/flow.json", tt.format, tt.single); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CACHE_HOME", dir)

	input := filepath.Join(dir, "flow.json")
	doc := `{"items":[{"key":"a","w":40,"h":40},{"key":"b","x":100,"w":40,"h":40}],"connections":[{"from":"a","to":"b"}]}`
	if err := os.WriteFile(input, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", input, "-f", "svg,json", "--width", "300", "--height", "200"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render error = %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "flow.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), `viewBox="0 0 300 200"`) {
		t.Error("svg does not use the requested size")
	}
	scene, err := os.ReadFile(filepath.Join(dir, "flow.scene.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(scene), `"key": "b"`) {
		t.Errorf("scene json = %s", scene)
	}
	if in, _ := os.ReadFile(input); string(in) != doc {
		t.Error("render overwrote the input document")
	}
	if !strings.Contains(logs.String(), "Render complete") {
		t.Errorf("logs = %q", logs.String())
	}
}

func TestRenderCommandMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"render", filepath.Join(t.TempDir(), "nope.json"), "--no-cache"})
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	for _, p := range []string{"a.json", "nested/b.json", "nested/deep/c.json", "notes.txt"} {
		full := filepath.Join(dir, p)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := expandInputs([]string{filepath.Join(dir, "**", "*.json"), filepath.Join(dir, "a.json")})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("expandInputs() = %v, want 3 documents without duplicates", got)
	}

	if got, _ := expandInputs([]string{"missing.json"}); len(got) != 1 || got[0] != "missing.json" {
		t.Errorf("plain paths should be kept as given, got %v", got)
	}
	if _, err := expandInputs([]string{filepath.Join(dir, "*.yaml")}); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("empty pattern error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestRenderCommandFlagConflicts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(`{"items":[]}`), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	glob := filepath.Join(dir, "*.json")
	tests := []struct {
		name string
		args []string
	}{
		{"output with many", []string{"render", glob, "-o", "out.svg"}},
		{"watch with many", []string{"render", glob, "--watch"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error = %v, want INVALID_INPUT", err)
			}
		})
	}
}
