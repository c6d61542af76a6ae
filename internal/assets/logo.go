// Package assets synthesizes and recovers footer logo imagery.
package assets

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Placeholder banner geometry matches the brand logo extracted from branded
// documents (1379x128 px).
const (
	logoWidth  = 1379
	logoHeight = 128

	// Bitmap text is drawn small and upscaled into the banner.
	textScale = 4
)

var (
	navy      = color.RGBA{R: 0x20, G: 0x38, B: 0x64, A: 0xFF}
	lightGray = color.RGBA{R: 0xE8, G: 0xE8, B: 0xE8, A: 0xFF}
)

// PlaceholderLogo draws a stand-in footer banner: a light gray strip with a
// navy wave mark and wordmark. Used when no real logo file is configured.
func PlaceholderLogo() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, logoWidth, logoHeight))
	fill(img, img.Bounds(), lightGray)

	// Stylized wave mark on the left.
	mid := logoHeight / 2
	drawStroke(img, image.Pt(40, mid+15), image.Pt(65, mid-25), 6, navy)
	drawStroke(img, image.Pt(65, mid-25), image.Pt(90, mid+5), 6, navy)

	drawWordmark(img, "RECON", 130, mid-30)
	drawWordmark(img, "ANALYTICS", 130, mid+10)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode placeholder logo: %w", err)
	}
	return buf.Bytes(), nil
}

// drawWordmark renders text with the bitmap face onto a small canvas and
// upscales it into the banner at (x, y).
func drawWordmark(dst *image.RGBA, s string, x, y int) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	h := face.Metrics().Height.Ceil()

	small := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(navy),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	target := image.Rect(x, y, x+w*textScale, y+h*textScale)
	xdraw.NearestNeighbor.Scale(dst, target, small, small.Bounds(), xdraw.Over, nil)
}

// drawStroke draws a thick line segment by stamping squares along it.
func drawStroke(img *image.RGBA, p0, p1 image.Point, width int, c color.Color) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		x := p0.X + dx*i/steps
		y := p0.Y + dy*i/steps
		fill(img, image.Rect(x-width/2, y-width/2, x+width/2, y+width/2), c)
	}
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// maxLogoBytes distinguishes the footer logo from full-page imagery when
// scanning a branded document's media.
const maxLogoBytes = 50000

// ExtractLogo pulls the footer logo out of an existing branded document
// package: the first PNG under word/media/ small enough to be the banner.
func ExtractLogo(docxPath string) ([]byte, error) {
	zr, err := zip.OpenReader(docxPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", docxPath, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if !strings.Contains(f.Name, "word/media/") || !strings.HasSuffix(f.Name, ".png") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}
		if len(data) < maxLogoBytes {
			return data, nil
		}
	}
	return nil, fmt.Errorf("no logo image found in %s", docxPath)
}
