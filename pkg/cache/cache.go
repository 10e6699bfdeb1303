// Package cache stores rendered artifacts keyed by their inputs.
//
// Rendering is pure: the same document, format and options always produce
// the same bytes. [Keyer] derives keys from a hash of those inputs, so a
// cache hit can be served without parsing the document again.
//
// Implementations:
//   - [FileCache]: one file per entry under a directory (CLI)
//   - [MemoryCache]: bounded in-process map (server)
//   - [NullCache]: stores nothing (--no-cache, tests)
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the entry for key. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactOpts are the render options that change the output bytes.
type ArtifactOpts struct {
	Format     string  `json:"format"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	PixelRatio float64 `json:"pixel_ratio,omitempty"`
	FontSize   float64 `json:"font_size,omitempty"`
	EmbedFont  bool    `json:"embed_font,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	ArtifactKey(docHash string, opts ArtifactOpts) string
	LayoutKey(text string, width float64, opts any) string
}

// DefaultKeyer prefixes keys with their kind.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns the key of a rendered document.
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactOpts) string {
	return hashKey("artifact", docHash, opts)
}

// LayoutKey returns the key of a text layout result.
func (DefaultKeyer) LayoutKey(text string, width float64, opts any) string {
	return hashKey("layout", text, width, opts)
}

// ScopedKeyer prepends a prefix to every key of another keyer.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey implements [Keyer].
func (k *ScopedKeyer) ArtifactKey(docHash string, opts ArtifactOpts) string {
	return k.prefix + k.inner.ArtifactKey(docHash, opts)
}

// LayoutKey implements [Keyer].
func (k *ScopedKeyer) LayoutKey(text string, width float64, opts any) string {
	return k.prefix + k.inner.LayoutKey(text, width, opts)
}
