package cover

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"github.com/youruser/covergen/internal/util"
)

var errBadDataURL = errors.New("malformed data url")

// FetchFunc retrieves remote logo bytes. Swappable for tests.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// Renderer runs the cover pipeline. Safe for concurrent use: every
// render owns its own surface and settings snapshot, and the catalogs
// are read-only after startup.
type Renderer struct {
	log   *zap.Logger
	fetch FetchFunc
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger attaches a logger; degraded steps (skipped logos) are
// reported at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(r *Renderer) { r.log = log }
}

// WithFetch overrides how remote logos are fetched.
func WithFetch(fetch FetchFunc) Option {
	return func(r *Renderer) { r.fetch = fetch }
}

// NewRenderer builds a Renderer with a nop logger and HTTP fetching.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		log:   zap.NewNop(),
		fetch: util.GetBytes,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render runs the fixed pipeline: surface, background, pattern, card
// backdrop, icon, text. Sub-step failures degrade (fallback gradient,
// skipped logo); the only fatal error is an unusable surface size.
// Output is deterministic for identical settings without remote inputs.
func (r *Renderer) Render(ctx context.Context, s CoverSettings) (image.Image, error) {
	s = s.Normalize()

	w, h := s.dimensions()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	fw, fh := float64(w), float64(h)
	layout := ResolveLayout(s, fw, fh)

	drawBackground(dc, resolveGradient(s))
	drawPattern(dc, s.Pattern, s.PatternOpacity)

	if layout.CardBackdrop {
		drawCardBackdrop(dc, fw, fh)
	}
	if layout.ShowIcon {
		r.drawIcon(ctx, dc, s, layout)
	}
	r.drawText(dc, s, layout)

	return dc.Image(), nil
}

// RenderPNG renders and encodes in one step for HTTP handlers and the
// CLI.
func (r *Renderer) RenderPNG(ctx context.Context, s CoverSettings) ([]byte, error) {
	img, err := r.Render(ctx, s)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawCardBackdrop paints the translucent rounded rectangle the card
// theme places under the icon and text. Inset 40px, radius 20.
func drawCardBackdrop(dc *gg.Context, w, h float64) {
	const inset = 40.0
	const radius = 20.0
	dc.Push()
	dc.SetRGBA(1, 1, 1, 0.1)
	dc.DrawRoundedRectangle(inset, inset, w-2*inset, h-2*inset, radius)
	dc.Fill()
	dc.Pop()
}
