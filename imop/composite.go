package imop

import (
	"fmt"
	"image"
	"image/color"

	"github.com/esimov/slider2d/utils"
)

const (
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// InitOp returns a Composite with the source-over operation activated.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set activates one of the supported composition operations.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(op.ops, cop) {
		return fmt.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Get returns the active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw composites the layer src onto the backdrop dst, in place. The source
// alpha is multiplied by opacity before the composition. When a blend mode is
// provided the source colors are blended with the backdrop first.
// Both images are expected to share the same bounds.
func (op *Composite) Draw(dst, src *image.NRGBA, opacity float64, blend *Blend) {
	b := dst.Bounds().Intersect(src.Bounds())
	opacity = utils.Clamp(opacity, 0, 1)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s := src.NRGBAAt(x, y)
			d := dst.NRGBAAt(x, y)

			rs, gs, bs := float64(s.R)/255, float64(s.G)/255, float64(s.B)/255
			as := float64(s.A) / 255 * opacity
			rb, gb, bb := float64(d.R)/255, float64(d.G)/255, float64(d.B)/255
			ab := float64(d.A) / 255

			if blend != nil && blend.OpType != "" {
				rs = blend.apply(rs, rb)
				gs = blend.apply(gs, gb)
				bs = blend.apply(bs, bb)
			}

			// fs and fb are the fractions of the source and backdrop
			// contributing to the result.
			var fs, fb float64
			switch op.current {
			case SrcOver:
				fs, fb = 1, 1-as
			case DstOver:
				fs, fb = 1-ab, 1
			case SrcIn:
				fs, fb = ab, 0
			case DstIn:
				fs, fb = 0, as
			case SrcOut:
				fs, fb = 1-ab, 0
			case DstOut:
				fs, fb = 0, 1-as
			case SrcAtop:
				fs, fb = ab, 1-as
			case DstAtop:
				fs, fb = 1-ab, as
			case Xor:
				fs, fb = 1-ab, 1-as
			}

			an := as*fs + ab*fb
			if an == 0 {
				dst.SetNRGBA(x, y, color.NRGBA{})
				continue
			}
			rn := (as*fs*rs + ab*fb*rb) / an
			gn := (as*fs*gs + ab*fb*gb) / an
			bn := (as*fs*bs + ab*fb*bb) / an

			dst.SetNRGBA(x, y, color.NRGBA{
				R: toByte(rn),
				G: toByte(gn),
				B: toByte(bn),
				A: toByte(an),
			})
		}
	}
}

func toByte(v float64) uint8 {
	return uint8(utils.Clamp(v*255+0.5, 0, 255))
}
