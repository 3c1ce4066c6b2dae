package assets

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/onboarding/internal/geometry"
)

// HalfBlocks draws img with one upper half block per cell: the foreground
// is the top pixel and the background the bottom one, which makes pixels
// roughly square. The image is scaled with nearest-neighbour sampling to fit
// box, keeping its aspect ratio.
func HalfBlocks(img image.Image, box geometry.Size) string {
	b := img.Bounds()
	if b.Empty() || box.Empty() {
		return ""
	}
	cols, rows := fitPixels(b.Dx(), b.Dy(), box.Width, box.Height*2)
	if cols == 0 || rows == 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < rows; y += 2 {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			top := sample(img, x, y, cols, rows)
			style := lipgloss.NewStyle().Foreground(top)
			if y+1 < rows {
				style = style.Background(sample(img, x, y+1, cols, rows))
			}
			out.WriteString(style.Render("▀"))
		}
	}
	return out.String()
}

// fitPixels scales w×h to fit inside maxW×maxH keeping the aspect ratio.
func fitPixels(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	// Compare w/maxW and h/maxH without floats.
	if w*maxH >= h*maxW {
		return maxW, max(1, h*maxW/w)
	}
	return max(1, w*maxH/h), maxH
}

func sample(img image.Image, x, y, cols, rows int) lipgloss.Color {
	b := img.Bounds()
	sx := b.Min.X + x*b.Dx()/cols
	sy := b.Min.Y + y*b.Dy()/rows
	return hexColor(img.At(sx, sy))
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
