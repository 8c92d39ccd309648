package cover

import (
	"math"

	"github.com/fogleman/gg"
)

// drawPattern overlays a repeating motif in white at the given paint
// alpha. Unknown ids and PatternNone are no-ops, keeping bad input
// harmless like the gradient fallback.
func drawPattern(dc *gg.Context, id string, opacity float64) {
	fn, ok := patternDrawers[id]
	if !ok {
		return
	}
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.Push()
	dc.SetRGBA(1, 1, 1, opacity)
	fn(dc, w, h)
	dc.Pop()
}

var patternDrawers = map[string]func(dc *gg.Context, w, h float64){
	PatternDots:      drawDots,
	PatternGrid:      drawGrid,
	PatternDiagonal:  drawDiagonal,
	PatternWaves:     drawWaves,
	PatternCircuit:   drawCircuit,
	PatternCrosses:   drawCrosses,
	PatternTriangles: drawTriangles,
}

func drawDots(dc *gg.Context, w, h float64) {
	for y := 10.0; y < h; y += 20 {
		for x := 10.0; x < w; x += 20 {
			dc.DrawCircle(x, y, 3)
			dc.Fill()
		}
	}
}

func drawGrid(dc *gg.Context, w, h float64) {
	dc.SetLineWidth(1)
	for x := 0.0; x <= w; x += 20 {
		dc.DrawLine(x, 0, x, h)
		dc.Stroke()
	}
	for y := 0.0; y <= h; y += 20 {
		dc.DrawLine(0, y, w, y)
		dc.Stroke()
	}
}

func drawDiagonal(dc *gg.Context, w, h float64) {
	dc.SetLineWidth(2)
	for x := -h; x < w; x += 40 {
		dc.DrawLine(x, 0, x+h, h)
		dc.Stroke()
	}
}

func drawWaves(dc *gg.Context, w, h float64) {
	dc.SetLineWidth(2)
	for y := 30.0; y < h; y += 60 {
		dc.NewSubPath()
		dc.MoveTo(0, y)
		for x := 0.0; x <= w; x += 10 {
			dc.LineTo(x, y+10*math.Sin(x/30))
		}
		dc.Stroke()
	}
}

// drawCircuit lays horizontal and vertical traces on an 80px grid with a
// node pad where the parity says so. Deterministic by construction.
func drawCircuit(dc *gg.Context, w, h float64) {
	dc.SetLineWidth(1.5)
	step := 80.0
	for gy := 0; float64(gy)*step < h; gy++ {
		for gx := 0; float64(gx)*step < w; gx++ {
			x := float64(gx) * step
			y := float64(gy) * step
			if (gx+gy)%2 == 0 {
				dc.DrawLine(x, y, x+step*0.6, y)
				dc.Stroke()
				dc.DrawLine(x+step*0.6, y, x+step*0.6, y+step*0.4)
				dc.Stroke()
				dc.DrawCircle(x+step*0.6, y+step*0.4, 3)
				dc.Fill()
			} else {
				dc.DrawLine(x, y, x, y+step*0.6)
				dc.Stroke()
				dc.DrawCircle(x, y+step*0.6, 3)
				dc.Fill()
			}
		}
	}
}

func drawCrosses(dc *gg.Context, w, h float64) {
	dc.SetLineWidth(2)
	arm := 5.0
	for y := 20.0; y < h; y += 40 {
		for x := 20.0; x < w; x += 40 {
			dc.DrawLine(x-arm, y, x+arm, y)
			dc.Stroke()
			dc.DrawLine(x, y-arm, x, y+arm)
			dc.Stroke()
		}
	}
}

func drawTriangles(dc *gg.Context, w, h float64) {
	side := 14.0
	for y := 24.0; y < h; y += 48 {
		for x := 24.0; x < w; x += 48 {
			dc.NewSubPath()
			dc.MoveTo(x, y-side/2)
			dc.LineTo(x+side/2, y+side/2)
			dc.LineTo(x-side/2, y+side/2)
			dc.ClosePath()
			dc.Stroke()
		}
	}
}
