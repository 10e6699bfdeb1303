package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/sketchboard/pkg/document"
	"github.com/matzehuels/sketchboard/pkg/errors"
)

const dragScript = `name: drag
items:
  - {key: a, x: 0, y: 0, w: 40, h: 40}
steps:
  - down: {x: 10, y: 10, target: "item:a"}
  - move: {x: 30, y: 10}
  - up:
    expect: {mode: idle, selection: [a]}
`

// execute runs the root command with args under an isolated config and
// cache directory, returning the command output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CACHE_HOME", dir)

	var out bytes.Buffer
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTextCommand(t *testing.T) {
	out, err := execute(t, "text", "abcdef", "--cells", "--width", "4", "--max-lines", "1", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var res struct {
		Lines []struct {
			Text string  `json:"text"`
			Left float64 `json:"left"`
		} `json:"lines"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(res.Lines) != 1 || res.Text != "abc…" {
		t.Errorf("result = %+v, want one truncated line", res)
	}
}

func TestTextCommandFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr errors.Code
	}{
		{"wraps with config max lines", []string{"abcdef", "--cells", "--width", "3"}, "abcdef", ""},
		{"overflow disabled", []string{"abcdef", "--cells", "--width", "4", "--max-lines", "1", "--overflow", ""}, "abcd", ""},
		{"bad align", []string{"abc", "--align", "justify"}, "", errors.ErrCodeInvalidInput},
		{"bad width", []string{"abc", "--width", "0"}, "", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append(append([]string{"text"}, tt.args...), "--json")...)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out, `"text": "`+tt.want+`"`) {
				t.Errorf("output = %s, want joined text %q", out, tt.want)
			}
		})
	}
}

func TestReplayCommand(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "drag.yaml")
	if err := os.WriteFile(script, []byte(dragScript), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "final.json")
	svg := filepath.Join(dir, "final.svg")

	if _, err := execute(t, "replay", script, "--out", out, "--svg", svg); err != nil {
		t.Fatal(err)
	}

	doc, err := document.Import(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Items) != 1 || doc.Items[0].X != 20 {
		t.Errorf("items = %+v, want a moved to x 20", doc.Items)
	}
	data, err := os.ReadFile(svg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `data-key="a"`) {
		t.Error("svg is missing item a")
	}
}

func TestReplayCommandExpectation(t *testing.T) {
	script := filepath.Join(t.TempDir(), "drag.yaml")
	failing := strings.Replace(dragScript, "mode: idle", "mode: moving", 1)
	if err := os.WriteFile(script, []byte(failing), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "replay", script)
	if !errors.Is(err, errors.ErrCodeExpectation) {
		t.Errorf("error = %v, want EXPECTATION_FAILED", err)
	}
}

func TestCachePathCommand(t *testing.T) {
	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), appName) {
		t.Errorf("cache path = %q", out)
	}
}

func TestEditCommandMissingFile(t *testing.T) {
	_, err := execute(t, "edit", filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestBundledExamples(t *testing.T) {
	out := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"replay", []string{"replay", "../../examples/move-and-resize.yaml", "--out", filepath.Join(out, "final.json")}},
		{"render", []string{"render", "../../examples/flow.json", "-f", "svg,png", "-o", filepath.Join(out, "flow"), "--no-cache"}},
		{"config", []string{"--config", "../../examples/config.toml", "text", "Parse and validate", "--json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}
		})
	}
	for _, name := range []string{"final.json", "flow.svg", "flow.png"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing output %s", name)
		}
	}
}

func TestCacheCommands(t *testing.T) {
	for _, sub := range []string{"info", "prune", "clear"} {
		t.Run(sub, func(t *testing.T) {
			if _, err := execute(t, "cache", sub); err != nil {
				t.Errorf("cache %s: %v", sub, err)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1536, "1.5 KiB"},
		{5 << 20, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
