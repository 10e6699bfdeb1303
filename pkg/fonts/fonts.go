// Package fonts provides the font files used for label measurement and
// rendering.
//
// The Go fonts from golang.org/x/image are compiled into the binary, so PNG
// output, SVG output with an embedded font and server-side text layout all
// measure with the same advances.
package fonts

import (
	"encoding/base64"
	"sync"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Regular returns the Go Regular TrueType data.
func Regular() []byte {
	return goregular.TTF
}

// Mono returns the Go Mono TrueType data.
func Mono() []byte {
	return gomono.TTF
}

// Cache for the base64-encoded regular font (computed once on first access).
var (
	regularBase64     string
	regularBase64Once sync.Once
)

// RegularBase64 returns the Go Regular font as a base64 string for
// embedding in an SVG @font-face rule. The result is cached after first
// computation.
func RegularBase64() string {
	regularBase64Once.Do(func() {
		regularBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return regularBase64
}

// FontFamily is the CSS font-family name of the embedded font.
const FontFamily = "Go"

// FallbackFontFamily lists fonts with similar metrics for SVGs rendered
// without the embedded font.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`
