// Package raster draws still PNG images of the clock face.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/runoshun/classclock/internal/domain"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Ensure ClockFace implements domain.SnapshotRenderer.
var _ domain.SnapshotRenderer = (*ClockFace)(nil)

// arcSegments is the number of straight segments used for a full circle.
const arcSegments = 180

var (
	backgroundColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	faceColor       = color.RGBA{0xf4, 0xf4, 0xf4, 0xff}
	rimColor        = color.RGBA{0x63, 0x6e, 0x72, 0xff}
	handColor       = color.RGBA{0x2d, 0x34, 0x36, 0xff}
	secondHandColor = color.RGBA{0xd6, 0x30, 0x31, 0xff}
	textColor       = color.RGBA{0x2d, 0x34, 0x36, 0xff}
)

// ClockFace renders an analog face with the remaining part of the current
// entry shaded in the entry's colour, the hands, and a caption.
type ClockFace struct {
	ShowSeconds bool
}

// point is a position in image space.
type point struct{ X, Y float32 }

// Render writes a size x size PNG of v to w.
func (c *ClockFace) Render(w io.Writer, v domain.ViewState, size int) error {
	img, err := c.Draw(v, size)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Draw renders v into a new image.
func (c *ClockFace) Draw(v domain.ViewState, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidSize, size)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	cx, cy := float64(size)/2, float64(size)/2
	radius := float64(size) * 0.45
	stroke := math.Max(1, float64(size)/100)

	fillPolygon(img, sector(cx, cy, radius, 0, 1), rimColor)
	fillPolygon(img, sector(cx, cy, radius-stroke, 0, 1), faceColor)

	// Shade what is left of the current entry, as a wedge from the
	// elapsed position round to 12 o'clock.
	if !v.Ended() && !v.BeforeStart() {
		from := v.ElapsedFraction()
		if from < 1 {
			fillPolygon(img, sector(cx, cy, radius-stroke, from, 1), parseHex(domain.EntryColor(v.CurrentEntryIndex)))
		}
	}

	for i := 0; i < 12; i++ {
		inner := 0.88
		if i%3 == 0 {
			inner = 0.8
		}
		f := float64(i) / 12
		fillPolygon(img, radialBar(cx, cy, radius*inner, radius-stroke, f, stroke), rimColor)
	}

	t := v.CurrentTime
	fillPolygon(img, radialBar(cx, cy, 0, radius*0.5, domain.HourHandFraction(t), stroke*3), handColor)
	fillPolygon(img, radialBar(cx, cy, 0, radius*0.75, domain.MinuteHandFraction(t), stroke*2), handColor)
	if c.ShowSeconds {
		fillPolygon(img, radialBar(cx, cy, 0, radius*0.85, domain.SecondHandFraction(t), stroke*0.75), secondHandColor)
	}
	fillPolygon(img, sector(cx, cy, stroke*2.5, 0, 1), handColor)

	drawCaption(img, v.Headline(), int(cy+radius*0.4))
	drawCaption(img, domain.FormatRemaining(v.Remaining), int(cy+radius*0.4)+16)

	return img, nil
}

// sector returns the polygon of a circle wedge between two fractions of a
// revolution. A full revolution yields a plain circle.
func sector(cx, cy, r, from, to float64) []point {
	n := int(math.Ceil((to - from) * arcSegments))
	if n < 1 {
		n = 1
	}
	pts := make([]point, 0, n+2)
	if to-from < 1 {
		pts = append(pts, point{float32(cx), float32(cy)})
	}
	for i := 0; i <= n; i++ {
		f := from + (to-from)*float64(i)/float64(n)
		x, y := domain.FacePoint(f, r)
		pts = append(pts, point{float32(cx + x), float32(cy + y)})
	}
	return pts
}

// radialBar returns a rectangle of the given width running from r0 to r1
// along the direction of fraction f.
func radialBar(cx, cy, r0, r1, f, width float64) []point {
	dx, dy := domain.FacePoint(f, 1)
	// Perpendicular unit vector.
	px, py := -dy*width/2, dx*width/2
	x0, y0 := cx+dx*r0, cy+dy*r0
	x1, y1 := cx+dx*r1, cy+dy*r1
	return []point{
		{float32(x0 + px), float32(y0 + py)},
		{float32(x1 + px), float32(y1 + py)},
		{float32(x1 - px), float32(y1 - py)},
		{float32(x0 - px), float32(y0 - py)},
	}
}

// fillPolygon rasterizes the closed polygon pts onto dst.
func fillPolygon(dst *image.RGBA, pts []point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.LineTo(p.X, p.Y)
	}
	r.ClosePath()
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// drawCaption writes s horizontally centred with its baseline at y.
func drawCaption(dst *image.RGBA, s string, y int) {
	if s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(s).Round()
	d.Dot = fixed.P((dst.Bounds().Dx()-width)/2, y)
	d.DrawString(s)
}

// parseHex parses "#rrggbb". Malformed input yields opaque black.
func parseHex(s string) color.RGBA {
	c := color.RGBA{A: 0xff}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}
