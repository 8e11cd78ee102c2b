package geom

import (
	"errors"
	"fmt"
)

// ErrShape is returned when an array handed to Deserialize is not N×2.
var ErrShape = errors.New("geom: array must have exactly 2 columns")

// Serialize exports the drawing as an N×2 array: column 0 is x, column 1
// is y, rows in drawing order.
func (d *Drawing) Serialize() [][]float64 {
	rows := make([][]float64, len(d.pts))
	for i, p := range d.pts {
		rows[i] = []float64{p.X, p.Y}
	}
	return rows
}

// Deserialize builds a drawing from an N×2 array. Any row whose width is
// not 2 rejects the whole input with an error wrapping ErrShape; no partial
// drawing is returned.
func Deserialize(rows [][]float64) (*Drawing, error) {
	for i, r := range rows {
		if len(r) != 2 {
			return nil, fmt.Errorf("row %d has %d columns: %w", i, len(r), ErrShape)
		}
	}
	d := &Drawing{pts: make([]Point, len(rows))}
	for i, r := range rows {
		d.pts[i] = Point{X: r[0], Y: r[1]}
	}
	return d, nil
}
