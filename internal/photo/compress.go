package photo

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Defaults applied to photos before upload.
const (
	DefaultMaxWidth = 800
	DefaultQuality  = 80
)

// Compress decodes a JPEG or PNG image, downscales it so neither dimension
// exceeds maxWidth (aspect ratio preserved, images already within bounds are
// not upscaled), and re-encodes it as JPEG at the given quality.
func Compress(data []byte, maxWidth, quality int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	ratio := 1.0
	if w > maxWidth || h > maxWidth {
		rw := float64(maxWidth) / float64(w)
		rh := float64(maxWidth) / float64(h)
		if rw < rh {
			ratio = rw
		} else {
			ratio = rh
		}
	}

	dw := int(float64(w) * ratio)
	dh := int(float64(h) * ratio)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
