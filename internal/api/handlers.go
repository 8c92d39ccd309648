package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/covergen/internal/cover"
	"github.com/youruser/covergen/internal/jsonfmt"
	"github.com/youruser/covergen/internal/qr"
	"github.com/youruser/covergen/internal/textcase"
	"github.com/youruser/covergen/internal/textstats"
)

// Handlers carries the shared renderer and logger for every endpoint.
type Handlers struct {
	Log      *zap.Logger
	Renderer *cover.Renderer
}

// NewHandlers wires up the API with its renderer.
func NewHandlers(log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{
		Log:      log,
		Renderer: cover.NewRenderer(cover.WithLogger(log)),
	}
}

func (h *Handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// coverHandler renders a cover image from posted settings and returns
// the PNG. Render failures surface as one generic message; the details
// stay in the log.
func (h *Handlers) coverHandler(c *gin.Context) {
	var settings cover.CoverSettings
	if err := c.BindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.Renderer.RenderPNG(c.Request.Context(), settings)
	if err != nil {
		h.Log.Error("cover render failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate image"})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// presetsHandler lists the catalogs, optionally narrowed by category and
// free-word search.
func (h *Handlers) presetsHandler(c *gin.Context) {
	f := cover.PresetFilter{
		Category:  c.Query("category"),
		FreeWords: c.Query("q"),
	}
	c.JSON(http.StatusOK, gin.H{
		"sizes":     cover.FilterSizes(f),
		"gradients": cover.FilterGradients(f),
		"fonts":     cover.Fonts(),
		"themes":    cover.Themes(),
		"patterns":  cover.Patterns(),
	})
}

// qrHandler returns a PNG QR code for the "text" query param.
func (h *Handlers) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = "https://example.com"
	}
	size := 400
	if sizeStr := c.Query("size"); sizeStr != "" {
		if v, err := strconv.Atoi(sizeStr); err == nil {
			size = v
		}
	}
	b, err := qr.GeneratePNG(text, size)
	if err != nil {
		h.Log.Error("qr generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (h *Handlers) caseHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
		Mode string `json:"mode"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := textcase.Convert(req.Mode, req.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": out})
}

func (h *Handlers) countHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, textstats.Analyze(req.Text))
}

func (h *Handlers) formatHandler(c *gin.Context) {
	var req struct {
		JSON   string `json:"json"`
		Indent int    `json:"indent"`
		Minify bool   `json:"minify"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var out string
	var err error
	if req.Minify {
		out, err = jsonfmt.Minify(req.JSON)
	} else {
		out, err = jsonfmt.Format(req.JSON, req.Indent)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": out})
}
