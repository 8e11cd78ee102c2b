package raster

import (
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// Size is the side length of a Grid in pixels.
const Size = 28

// Grid is a Size×Size intensity raster with values in [0, 1].
// A Grid returned by Rasterize is indexed [row][col] = [y][x].
type Grid [Size][Size]float64

// Transpose returns g with rows and columns swapped.
func (g *Grid) Transpose() Grid {
	var t Grid
	for i := range Size {
		for j := range Size {
			t[j][i] = g[i][j]
		}
	}
	return t
}

// Max returns the largest value in g.
func (g *Grid) Max() float64 {
	m := 0.0
	for i := range Size {
		for j := range Size {
			if g[i][j] > m {
				m = g[i][j]
			}
		}
	}
	return m
}

// IsZero reports whether every value in g is zero.
func (g *Grid) IsZero() bool {
	return *g == Grid{}
}

// maxInto raises every cell of g to at least the matching cell of o.
// NaN never wins the comparison.
func (g *Grid) maxInto(o *Grid) {
	for i := range Size {
		for j := range Size {
			if o[i][j] > g[i][j] {
				g[i][j] = o[i][j]
			}
		}
	}
}

// Image converts g into an 8-bit grayscale image: column index is x, row
// index is y, intensity 1.0 maps to 255.
func (g *Grid) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, Size, Size))
	for y := range Size {
		for x := range Size {
			v := g[y][x]
			switch {
			case !(v > 0):
				v = 0
			case v > 1:
				v = 1
			}
			img.Pix[y*img.Stride+x] = uint8(v*255 + 0.5)
		}
	}
	return img
}

// Scaled returns the grid image enlarged by an integer factor with
// nearest-neighbour sampling, so every grid cell stays a sharp square.
// Factors below 1 are treated as 1.
func (g *Grid) Scaled(factor int) *image.Gray {
	src := g.Image()
	if factor <= 1 {
		return src
	}
	dst := image.NewGray(image.Rect(0, 0, Size*factor, Size*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// EncodePNG writes g as a PNG enlarged by factor.
func EncodePNG(w io.Writer, g *Grid, factor int) error {
	return png.Encode(w, g.Scaled(factor))
}
