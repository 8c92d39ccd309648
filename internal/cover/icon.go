package cover

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

// drawIcon paints either the uploaded logo or the built-in badge at the
// layout's icon anchor. A logo that cannot be fetched or decoded is
// skipped silently; the render carries on without it.
func (r *Renderer) drawIcon(ctx context.Context, dc *gg.Context, s CoverSettings, l Layout) {
	if s.CustomLogo != "" {
		img, err := r.loadLogo(ctx, s.CustomLogo)
		if err != nil {
			r.log.Debug("custom logo skipped", zap.Error(err))
			return
		}
		size := int(s.LogoSize)
		fitted := imaging.Fit(img, size, size, imaging.Lanczos)
		dc.DrawImageAnchored(fitted, int(l.IconX), int(l.IconY), 0.5, 0.5)
		return
	}
	r.drawBadge(dc, s, l)
}

// drawBadge draws a translucent circle with the first two letters of the
// dev icon's name. A stand-in for a real glyph set.
func (r *Renderer) drawBadge(dc *gg.Context, s CoverSettings, l Layout) {
	radius := s.LogoSize / 2

	dc.Push()
	dc.SetRGBA(1, 1, 1, 0.25)
	dc.DrawCircle(l.IconX, l.IconY, radius)
	dc.Fill()

	abbrev := badgeAbbrev(s.DevIcon)

	dc.SetFontFace(FaceFor(s.Font, s.LogoSize*0.4))
	c, err := ParseHex(s.TextColor)
	if err == nil {
		dc.SetColor(c)
	} else {
		dc.SetRGB(1, 1, 1)
	}
	dc.DrawStringAnchored(abbrev, l.IconX, l.IconY, 0.5, 0.5)
	dc.Pop()
}

// badgeAbbrev takes the first two runes so multi-byte icon ids never
// get split mid-character.
func badgeAbbrev(id string) string {
	runes := []rune(id)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

// loadLogo accepts a data URL, an http(s) URL, or a local file path.
func (r *Renderer) loadLogo(ctx context.Context, src string) (image.Image, error) {
	var raw []byte
	var err error
	switch {
	case strings.HasPrefix(src, "data:"):
		raw, err = decodeDataURL(src)
	case strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://"):
		raw, err = r.fetch(ctx, src)
	default:
		raw, err = os.ReadFile(src)
	}
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(raw))
}

func decodeDataURL(src string) ([]byte, error) {
	i := strings.IndexByte(src, ',')
	if i < 0 {
		return nil, errBadDataURL
	}
	payload := src[i+1:]
	if strings.Contains(src[:i], ";base64") {
		return base64.StdEncoding.DecodeString(payload)
	}
	return []byte(payload), nil
}
