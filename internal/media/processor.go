package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	DefaultMaxSide = 512
	DefaultQuality = 80
	MaxUploadBytes = 5 << 20
)

var ErrInvalidImage = httperr.ErrBusiness("invalid_image")

// Processor normalizes uploads: any decodable image in, a WebP no larger than
// MaxSide on its long edge out.
type Processor struct {
	MaxSide int
	Quality float32
}

func NewProcessor() Processor {
	return Processor{MaxSide: DefaultMaxSide, Quality: DefaultQuality}
}

func (p Processor) Process(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(io.LimitReader(r, MaxUploadBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w (%v)", ErrInvalidImage, err)
	}

	img := p.fit(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: p.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func (p Processor) fit(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if p.MaxSide <= 0 || (w <= p.MaxSide && h <= p.MaxSide) {
		return src
	}

	if w >= h {
		h = h * p.MaxSide / w
		w = p.MaxSide
	} else {
		w = w * p.MaxSide / h
		h = p.MaxSide
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
