package texture

import (
	"image"
	"image/color"
	"math/rand"
)

// Default procedural paper texture size.
const (
	DefaultPaperSize = 512
	paperFibers      = 900
)

// GeneratePaper creates a procedural paper texture: a warm off-white base
// with subtle per-pixel grain and darker horizontal fibers. Used when no
// texture file is configured so the binary runs asset-free.
func GeneratePaper(size int, seed int64) *image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Base tint with grain.
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			grain := uint8(rng.Intn(12))
			img.SetRGBA(x, y, color.RGBA{
				R: 238 - grain,
				G: 233 - grain,
				B: 222 - grain,
				A: 255,
			})
		}
	}

	// Short horizontal fibers, slightly darker than the base.
	fibers := paperFibers * size * size / (DefaultPaperSize * DefaultPaperSize)
	for i := 0; i < fibers; i++ {
		fx := rng.Intn(size)
		fy := rng.Intn(size)
		length := 4 + rng.Intn(20)
		shade := uint8(200 + rng.Intn(25))
		for dx := 0; dx < length && fx+dx < size; dx++ {
			c := img.RGBAAt(fx+dx, fy)
			c.R = min8(c.R, shade+10)
			c.G = min8(c.G, shade+6)
			c.B = min8(c.B, shade)
			img.SetRGBA(fx+dx, fy, c)
		}
	}

	return img
}

func min8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
