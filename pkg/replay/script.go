package replay

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/sketchboard/pkg/document"
	"github.com/matzehuels/sketchboard/pkg/editor"
	"github.com/matzehuels/sketchboard/pkg/errors"
)

// Step kinds.
const (
	KindDown    = "down"
	KindMove    = "move"
	KindUp      = "up"
	KindWheel   = "wheel"
	KindKeyDown = "keydown"
	KindKeyUp   = "keyup"
	KindReset   = "reset"
)

// Script is a parsed replay script.
type Script struct {
	Name        string                `yaml:"name"`
	Readonly    bool                  `yaml:"readonly"`
	Viewport    Viewport              `yaml:"viewport"`
	Items       []editor.Item         `yaml:"items"`
	Connections []document.Connection `yaml:"connections"`
	Steps       []Step                `yaml:"steps"`
}

// Viewport is the initial view and the element size used for wheel zoom.
type Viewport struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Scale   float64 `yaml:"scale"`
}

// Step is one action plus an optional expectation.
type Step struct {
	Kind    string
	Pointer Pointer
	Wheel   Wheel
	Key     string
	Expect  *Expect
	Line    int
}

// Pointer describes a pointer event.
type Pointer struct {
	X       float64  `yaml:"x"`
	Y       float64  `yaml:"y"`
	OffsetX *float64 `yaml:"offset_x"`
	OffsetY *float64 `yaml:"offset_y"`
	Button  string   `yaml:"button"`
	Shift   bool     `yaml:"shift"`
	Alt     bool     `yaml:"alt"`
	Ctrl    bool     `yaml:"ctrl"`
	Target  string   `yaml:"target"`
}

// Wheel describes a wheel event at pointer position (X, Y).
type Wheel struct {
	DX   float64 `yaml:"dx"`
	DY   float64 `yaml:"dy"`
	Zoom bool    `yaml:"zoom"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Expect holds assertions on controller state.
type Expect struct {
	Mode      string                `yaml:"mode"`
	Selection *[]string             `yaml:"selection"`
	Hover     *string               `yaml:"hover"`
	Scale     *float64              `yaml:"scale"`
	Offset    *[2]float64           `yaml:"offset"`
	Items     map[string]ItemExpect `yaml:"items"`
}

// ItemExpect holds assertions on one item's geometry.
type ItemExpect struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
	W *float64 `yaml:"w"`
	H *float64 `yaml:"h"`
}

// UnmarshalYAML decodes a step mapping with exactly one action key.
func (s *Step) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: step must be a mapping", n.Line)
	}
	s.Line = n.Line
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		if key == "expect" {
			s.Expect = &Expect{}
			if err := val.Decode(s.Expect); err != nil {
				return err
			}
			continue
		}
		if s.Kind != "" {
			return fmt.Errorf("line %d: step has more than one action (%s, %s)", n.Line, s.Kind, key)
		}
		var err error
		switch key {
		case KindDown, KindMove, KindUp:
			err = decodeOptional(val, &s.Pointer)
		case KindWheel:
			err = decodeOptional(val, &s.Wheel)
		case KindKeyDown, KindKeyUp:
			err = val.Decode(&s.Key)
		case KindReset:
		default:
			return fmt.Errorf("line %d: unknown step action %q", val.Line, key)
		}
		if err != nil {
			return err
		}
		s.Kind = key
	}
	if s.Kind == "" {
		return fmt.Errorf("line %d: step has no action", n.Line)
	}
	return nil
}

// decodeOptional decodes val into v unless val is null.
func decodeOptional(val *yaml.Node, v any) error {
	if val.ShortTag() == "!!null" {
		return nil
	}
	return val.Decode(v)
}

// Parse reads a script from r.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.ErrCodeInvalidScript, "empty script")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "parse script")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads the script at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "script %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "open %s", path)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return s, nil
}

// Validate checks item keys, pointer targets and expectations.
func (s *Script) Validate() error {
	keys := make(map[string]bool, len(s.Items))
	for _, it := range s.Items {
		if err := errors.ValidateKey(it.Key); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScript, err, "items")
		}
		if keys[it.Key] {
			return errors.New(errors.ErrCodeDuplicateKey, "duplicate item key %q", it.Key)
		}
		keys[it.Key] = true
	}
	for _, c := range s.Connections {
		if !keys[c.From] || !keys[c.To] {
			return errors.New(errors.ErrCodeUnknownKey, "connection %s->%s names an unknown item", c.From, c.To)
		}
	}

	for i, st := range s.Steps {
		switch st.Kind {
		case KindDown, KindMove, KindUp:
			if _, err := ParseTarget(st.Pointer.Target); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidScript, err, "step %d", i+1)
			}
			if _, err := parseButton(st.Pointer.Button); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidScript, err, "step %d", i+1)
			}
		}
		if st.Expect == nil {
			continue
		}
		if st.Expect.Mode != "" {
			if _, ok := editor.ParseMode(st.Expect.Mode); !ok {
				return errors.New(errors.ErrCodeInvalidScript, "step %d: unknown mode %q", i+1, st.Expect.Mode)
			}
		}
		for key := range st.Expect.Items {
			if !keys[key] {
				return errors.New(errors.ErrCodeUnknownKey, "step %d: expectation names unknown item %q", i+1, key)
			}
		}
	}
	return nil
}

// ParseTarget parses a pointer target such as "item:a" or "handle:a:se".
func ParseTarget(s string) (editor.HitTarget, error) {
	kind, rest, _ := strings.Cut(strings.TrimSpace(s), ":")
	switch kind {
	case "", "canvas":
		return editor.HitTarget{Kind: editor.HitCanvas}, nil
	case "none":
		return editor.HitTarget{Kind: editor.HitNone}, nil
	case "scrollbar-x":
		return editor.HitTarget{Kind: editor.HitScrollbarX}, nil
	case "scrollbar-y":
		return editor.HitTarget{Kind: editor.HitScrollbarY}, nil
	case "item":
		if rest == "" {
			return editor.HitTarget{}, fmt.Errorf("target %q: missing item key", s)
		}
		return editor.OnItem(rest), nil
	case "handle":
		key, dir, ok := strings.Cut(rest, ":")
		if !ok || key == "" {
			return editor.HitTarget{}, fmt.Errorf("target %q: want handle:<key>:<dir>", s)
		}
		d, err := editor.ParseDirection(dir)
		if err != nil {
			return editor.HitTarget{}, fmt.Errorf("target %q: %w", s, err)
		}
		return editor.OnHandle(key, d), nil
	}
	return editor.HitTarget{}, fmt.Errorf("unknown target %q", s)
}

func parseButton(s string) (editor.Button, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return editor.ButtonLeft, nil
	case "middle":
		return editor.ButtonMiddle, nil
	case "right":
		return editor.ButtonRight, nil
	}
	return 0, fmt.Errorf("unknown button %q", s)
}
