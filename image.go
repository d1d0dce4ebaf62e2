package slider2d

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/slider2d/imop"
	"golang.org/x/image/bmp"
)

// Render draws the current state of the controller into an image of the
// canvas size: the rounded canvas, the crosshair and the handle.
// Invalid blend or composite names in s are ignored, see Style.Validate.
func Render(c *Controller, s Style) *image.NRGBA {
	e := c.Extent()
	w, h := int(math.Round(e.Width)), int(math.Round(e.Height))

	img := imaging.New(w, h, color.Transparent)
	fillRoundedRect(img, s.CanvasColor, s.CornerRadius)

	// The crosshair is 2 units thick and goes through the canvas center.
	cx, cy := w/2, h/2
	cross := &image.Uniform{s.CrossColor}
	draw.Draw(img, image.Rect(cx-1, 0, cx+1, h), cross, image.Point{}, draw.Over)
	draw.Draw(img, image.Rect(0, cy-1, w, cy+1), cross, image.Point{}, draw.Over)

	snap := c.Snapshot()
	layer := image.NewNRGBA(img.Bounds())
	fillEllipse(layer, s.HandleColor, handleRect(e, snap.Offset))

	var blend *imop.Blend
	if s.Blend != "" {
		blend = imop.NewBlend()
		if err := blend.Set(s.Blend); err != nil {
			blend = nil
		}
	}
	comp := imop.InitOp()
	if s.Composite != "" {
		comp.Set(s.Composite)
	}
	comp.Draw(img, layer, handleOpacity(snap, c.State().Dragging), blend)

	return img
}

// RenderVirtual renders the controller like Render, then resamples the image
// to the virtual extent. Without a virtual extent the canvas size is kept.
func RenderVirtual(c *Controller, s Style) *image.NRGBA {
	img := Render(c, s)
	if !c.hasVirtual {
		return img
	}
	w, h := int(math.Round(c.virtual.Width)), int(math.Round(c.virtual.Height))
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// SaveSnapshot renders the controller and saves the image to path.
// The format is chosen from the file extension.
func SaveSnapshot(c *Controller, s Style, path string, virtual bool) error {
	var img *image.NRGBA
	if virtual {
		img = RenderVirtual(c, s)
	} else {
		img = Render(c, s)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeImg(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// encodeImg encodes an image to a destination of type io.Writer.
// Files are encoded by extension, any other writer receives a PNG.
func encodeImg(w io.Writer, img *image.NRGBA) error {
	switch w := w.(type) {
	case *os.File:
		ext := strings.ToLower(filepath.Ext(w.Name()))
		switch ext {
		case "", ".png":
			return png.Encode(w, img)
		case ".jpg", ".jpeg":
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
		case ".bmp":
			return bmp.Encode(w, img)
		default:
			return errors.New("unsupported image format")
		}
	default:
		return png.Encode(w, img)
	}
}

// handleRect returns the bounding box of the handle, in canvas coordinates,
// for a handle offset relative to the canvas center.
func handleRect(e Extent, offset Point) image.Rectangle {
	size := handleSize(e)
	center := e.Center().Add(offset)
	origin := center.SubExtent(size.Div(2))

	return image.Rect(
		int(math.Round(origin.X)),
		int(math.Round(origin.Y)),
		int(math.Round(origin.X+size.Width)),
		int(math.Round(origin.Y+size.Height)),
	)
}

// fillRoundedRect paints the whole image with col, leaving the corners
// outside of the rounding radius untouched.
func fillRoundedRect(img *image.NRGBA, col color.NRGBA, radius float64) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	radius = math.Min(radius, math.Min(w, h)/2)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px, py := float64(x-b.Min.X)+0.5, float64(y-b.Min.Y)+0.5
			// Distance from the nearest corner circle center, if the pixel is in a corner box.
			dx := math.Max(0, math.Max(radius-px, px-(w-radius)))
			dy := math.Max(0, math.Max(radius-py, py-(h-radius)))
			if dx*dx+dy*dy <= radius*radius {
				img.SetNRGBA(x, y, col)
			}
		}
	}
}

// fillEllipse paints the ellipse inscribed in r.
func fillEllipse(img *image.NRGBA, col color.NRGBA, r image.Rectangle) {
	rx, ry := float64(r.Dx())/2, float64(r.Dy())/2
	cx, cy := float64(r.Min.X)+rx, float64(r.Min.Y)+ry
	if rx <= 0 || ry <= 0 {
		return
	}

	b := r.Intersect(img.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			nx := (float64(x) + 0.5 - cx) / rx
			ny := (float64(y) + 0.5 - cy) / ry
			if nx*nx+ny*ny <= 1 {
				img.SetNRGBA(x, y, col)
			}
		}
	}
}
