package geom

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV reads a drawing stored as a two-column x,y CSV. An optional first
// record naming the columns ("x,y", any case) is skipped. A record with any
// other number of fields fails with an error wrapping ErrShape.
func ReadCSV(r io.Reader) (*Drawing, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if len(recs) > 0 && isHeader(recs[0]) {
		recs = recs[1:]
	}
	rows := make([][]float64, len(recs))
	for i, rec := range recs {
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("csv: record %d: %w", i+1, err)
			}
			row[j] = v
		}
		rows[i] = row
	}
	d, err := Deserialize(rows)
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return d, nil
}

func isHeader(rec []string) bool {
	return len(rec) == 2 &&
		strings.EqualFold(strings.TrimSpace(rec[0]), "x") &&
		strings.EqualFold(strings.TrimSpace(rec[1]), "y")
}

// WriteCSV writes the drawing as an x,y header followed by one record per
// point. Values are written with full precision so ReadCSV restores them
// exactly.
func WriteCSV(w io.Writer, d *Drawing) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, row := range d.Serialize() {
		rec := []string{
			strconv.FormatFloat(row[0], 'g', -1, 64),
			strconv.FormatFloat(row[1], 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
