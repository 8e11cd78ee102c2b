package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKT reads a single stroke from well-known text.
// Supported: LINESTRING(x y, ...), MULTIPOINT(x y, ...) and POINT(x y);
// the vertices become the drawing's points in the order written.
// Tuples that do not hold two numbers are skipped.
func ParseWKT(wkt string) (*Drawing, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var kind string
	switch {
	case strings.HasPrefix(up, "LINESTRING"):
		kind = "linestring"
	case strings.HasPrefix(up, "MULTIPOINT"):
		kind = "multipoint"
	case strings.HasPrefix(up, "POINT"):
		kind = "point"
	default:
		return nil, errors.New("unsupported wkt type")
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return nil, errors.New("wkt " + kind + ": invalid")
	}

	d := New()
	// MULTIPOINT may wrap each tuple in its own parentheses.
	block := strings.NewReplacer("(", "", ")", "").Replace(s[i+1 : j])
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		d.Append(x, y)
	}
	if d.Len() == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}

// WKT renders the drawing as a LINESTRING.
func (d *Drawing) WKT() string {
	var sb strings.Builder
	sb.WriteString("LINESTRING(")
	for i, p := range d.pts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}
