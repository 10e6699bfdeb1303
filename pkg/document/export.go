package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/sketchboard/pkg/editor"
)

// Write encodes doc as indented JSON to w.
func Write(doc *Document, w io.Writer) error {
	out := file{
		Items:       doc.Items,
		Connections: doc.Connections,
		Viewport:    &doc.Viewport,
	}
	if out.Items == nil {
		out.Items = []editor.Item{}
	}
	if out.Connections == nil {
		out.Connections = []Connection{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes doc to a JSON file at path.
func Export(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(doc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
