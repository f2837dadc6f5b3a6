package hull

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/hullprune/dbg"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// Draw a boundary and its pruned hull in the terminal (iTerm only). The
// original boundary is stroked dim, the hull on top of it bright, and each
// hull point gets a readable label so it can be matched against debug
// output from the build loop.
func dbgDrawBoundary(original, pruned SearchPointVector, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, sp := range original {
		minX = math.Min(minX, sp.Location.Longitude)
		minY = math.Min(minY, sp.Location.Latitude)
		maxX = math.Max(maxX, sp.Location.Longitude)
		maxY = math.Max(maxY, sp.Location.Latitude)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, with north up
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	tracePath := func(points SearchPointVector) {
		c.MoveTo(points[0].Location.Longitude, points[0].Location.Latitude)
		for _, sp := range points[1:] {
			c.LineTo(sp.Location.Longitude, sp.Location.Latitude)
		}
		c.ClosePath()
	}

	c.SetLineWidth(1)
	tracePath(original)
	c.SetRGB(0, 0.5, 0)
	c.Stroke()

	c.SetLineWidth(2)
	tracePath(pruned)
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// Text would come out mirrored under the flipped transform, so labels are
	// placed in device coordinates instead.
	c.Identity()
	c.SetRGB(1, 1, 0)
	for _, sp := range pruned {
		x := dbgDrawPadding + scale*(sp.Location.Longitude-minX)
		y := float64(height) - (dbgDrawPadding + scale*(sp.Location.Latitude-minY))
		c.DrawStringAnchored(dbg.Name(sp.Location), x, y, 0.5, 0.5)
	}

	c.SavePNG("/tmp/boundary.png")
	imgcat.CatFile("/tmp/boundary.png", os.Stdout)
}
