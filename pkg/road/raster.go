package road

import (
	"encoding/binary"
	"image"
	"image/color"
	"math"
)

// Color is a packed 0xAABBGGRR pixel. Stored little-endian it lays out as
// R, G, B, A bytes, the order of image.RGBA and ebiten's WritePixels.
type Color uint32

// RGBA implements color.Color. Road colours are opaque or fully clear, so
// premultiplying is a plain scale by alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c>>24) & 0xff
	r = uint32(c) & 0xff * a / 0xff
	g = uint32(c>>8) & 0xff * a / 0xff
	b = uint32(c>>16) & 0xff * a / 0xff
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

// RGBAColor packs 8-bit channels into a Color.
func RGBAColor(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

var _ color.Color = Color(0)

// Band is the pair of tones a road band alternates between.
type Band [2]Color

// Palette colours the road. The centre line has one tone of its own and
// takes the pavement's second tone on alternate stripes.
type Palette struct {
	Background Color `json:"background"`
	CenterLine Color `json:"center_line"`
	Pavement   Band  `json:"pavement"`
	Rumble     Band  `json:"rumble"`
	Offroad    Band  `json:"offroad"`
}

// DefaultPalette returns grey pavement, red and white rumble strips and
// yellow verges.
func DefaultPalette() Palette {
	return Palette{
		Background: 0x00000000,
		CenterLine: 0xFFFFFFFF,
		Pavement:   Band{0xFF303030, 0xFF333333},
		Rumble:     Band{0xFFFFFFFF, 0xFF0000FF},
		Offroad:    Band{0xFF91FFFF, 0xFF91DADA},
	}
}

// PixelBuffer is a row-major RGBA8 image. Row 0 is the top of the image.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer allocates a cleared buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{Width: width, Height: height, Pix: make([]byte, 4*width*height)}
}

// At returns the pixel at column x of image row y.
func (b *PixelBuffer) At(x, y int) Color {
	i := 4 * (y*b.Width + x)
	return Color(binary.LittleEndian.Uint32(b.Pix[i : i+4]))
}

// Image wraps the buffer as an image.RGBA sharing Pix.
func (b *PixelBuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: 4 * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// Rasterizer draws projected road into a persistent PixelBuffer.
type Rasterizer struct {
	pavement   float64
	centerLine float64
	rumble     float64
	interval   float64
	palette    Palette
	buf        *PixelBuffer
}

// NewRasterizer returns a rasterizer with a FieldWidth x MaxDrawRows buffer.
func NewRasterizer(cfg Config) *Rasterizer {
	return &Rasterizer{
		pavement:   cfg.PavementWidth,
		centerLine: cfg.CenterLineWidth,
		rumble:     cfg.RumbleWidth,
		interval:   cfg.ColorSwitchInterval,
		palette:    cfg.Palette,
		buf:        NewPixelBuffer(cfg.FieldWidth, cfg.MaxDrawRows),
	}
}

// Buffer returns the buffer Render writes into.
func (r *Rasterizer) Buffer() *PixelBuffer { return r.buf }

// SetPalette swaps the colours used by later renders.
func (r *Rasterizer) SetPalette(p Palette) { r.palette = p }

// Render overwrites every pixel of the buffer from p. Scanline 0 lands on the
// bottom image row. It does not allocate.
func (r *Rasterizer) Render(p *Projection) *PixelBuffer {
	buf := r.buf
	stride := 4 * buf.Width
	depth := p.table.Depth
	scale := p.table.Scale

	for s := 0; s < buf.Height; s++ {
		line := buf.Pix[(buf.Height-1-s)*stride : (buf.Height-s)*stride]
		row := NoRow
		if s < len(p.ScanlineToRow) {
			row = p.ScanlineToRow[s]
		}
		if row == NoRow {
			fill(line, r.palette.Background)
			continue
		}

		center := p.XOffset[row]
		road := r.pavement * scale[row]
		line2 := r.centerLine * scale[row]
		rumble := road + r.rumble*scale[row]
		phase := int(math.Floor((depth[row]+p.ColorOffset)/r.interval)) & 1

		cl := r.palette.CenterLine
		if phase == 1 {
			cl = r.palette.Pavement[1]
		}
		pave := r.palette.Pavement[phase]
		rum := r.palette.Rumble[phase]
		off := r.palette.Offroad[phase]

		for x := 0; x < buf.Width; x++ {
			dist := math.Abs(float64(x) - center)
			c := off
			switch {
			case dist <= line2:
				c = cl
			case dist <= road:
				c = pave
			case dist <= rumble:
				c = rum
			}
			binary.LittleEndian.PutUint32(line[4*x:], uint32(c))
		}
	}
	return buf
}

func fill(line []byte, c Color) {
	for i := 0; i < len(line); i += 4 {
		binary.LittleEndian.PutUint32(line[i:], uint32(c))
	}
}
