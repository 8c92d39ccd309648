package cover

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is a catalog entry. The web app's fonts are stood in for by the
// bundled Go font family so renders need no font files on disk.
type Font struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Family string `json:"family"`
	Weight int    `json:"weight"`

	ttf []byte
}

// DefaultFontID is what an unknown font id falls back to.
const DefaultFontID = "inter"

var fontCatalog = []Font{
	{ID: "inter", Name: "Inter", Family: "Inter, sans-serif", Weight: 400, ttf: goregular.TTF},
	{ID: "roboto", Name: "Roboto", Family: "Roboto, sans-serif", Weight: 500, ttf: gomedium.TTF},
	{ID: "poppins", Name: "Poppins", Family: "Poppins, sans-serif", Weight: 700, ttf: gobold.TTF},
	{ID: "playfair", Name: "Playfair Display", Family: "Playfair Display, serif", Weight: 400, ttf: goitalic.TTF},
	{ID: "mono", Name: "JetBrains Mono", Family: "JetBrains Mono, monospace", Weight: 400, ttf: gomono.TTF},
}

var parsedFonts = map[string]*truetype.Font{}

func init() {
	for _, f := range fontCatalog {
		parsed, err := truetype.Parse(f.ttf)
		if err != nil {
			panic(fmt.Errorf("parse bundled font %s: %w", f.ID, err))
		}
		parsedFonts[f.ID] = parsed
	}
}

// Fonts returns the font catalog.
func Fonts() []Font {
	out := make([]Font, len(fontCatalog))
	copy(out, fontCatalog)
	return out
}

// LookupFont resolves a font id, falling back to the default font.
func LookupFont(id string) Font {
	for _, f := range fontCatalog {
		if f.ID == id {
			return f
		}
	}
	return LookupFont(DefaultFontID)
}

type faceKey struct {
	id   string
	size float64
}

var faceCache = struct {
	sync.Mutex
	faces map[faceKey]font.Face
}{faces: map[faceKey]font.Face{}}

// FaceFor returns a cached font.Face for the given font id and pixel
// size. Unknown ids resolve through LookupFont.
func FaceFor(id string, size float64) font.Face {
	id = LookupFont(id).ID
	key := faceKey{id: id, size: size}

	faceCache.Lock()
	defer faceCache.Unlock()
	if face, ok := faceCache.faces[key]; ok {
		return face
	}
	face := truetype.NewFace(parsedFonts[id], &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	faceCache.faces[key] = face
	return face
}
