package document

import (
	"encoding/json"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/sketchboard/pkg/editor"
	"github.com/matzehuels/sketchboard/pkg/errors"
)

type file struct {
	Items       []editor.Item `json:"items"`
	Connections []Connection  `json:"connections"`
	Viewport    *Viewport     `json:"viewport,omitempty"`
}

// Read decodes a JSON document from r.
//
// Items without a key get a random UUID. Read returns an error if:
//   - The JSON is malformed
//   - A key is invalid or used twice
//   - A connection references an unknown key
//
// Read does not close r.
func Read(r io.Reader) (*Document, error) {
	var data file
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode document")
	}

	doc := &Document{
		Items:       data.Items,
		Connections: data.Connections,
		Viewport:    Viewport{Scale: 1},
	}
	if doc.Items == nil {
		doc.Items = []editor.Item{}
	}

	seen := make(map[string]bool, len(doc.Items))
	for i := range doc.Items {
		it := &doc.Items[i]
		if it.Key == "" {
			it.Key = uuid.NewString()
		}
		if err := errors.ValidateKey(it.Key); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "item %d", i)
		}
		if seen[it.Key] {
			return nil, errors.New(errors.ErrCodeDuplicateKey, "duplicate item key %q", it.Key)
		}
		seen[it.Key] = true
	}

	for _, c := range doc.Connections {
		for _, k := range []string{c.From, c.To} {
			if !seen[k] {
				return nil, errors.New(errors.ErrCodeUnknownKey, "connection %s->%s: unknown item key %q", c.From, c.To, k)
			}
		}
	}

	if data.Viewport != nil {
		doc.Viewport = *data.Viewport
		doc.Viewport.Scale = normalizeScale(doc.Viewport.Scale)
	}
	return doc, nil
}

func normalizeScale(s float64) float64 {
	switch {
	case s == 0:
		return 1
	case s < editor.MinScale:
		return editor.MinScale
	case s > editor.MaxScale:
		return editor.MaxScale
	}
	return s
}

// Import reads the JSON document at path.
func Import(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "document %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}
