package scene

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"toryn/internal/geom"
)

// ParseWKT parses one geometry per line. Blank lines and lines starting
// with # are skipped.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...),
// POLYGON((x y, ...), ...), CIRCLE(x y, r) and BEZIER[steps](x y, ...)
// where [steps] is optional.
func ParseWKT(text string) (Scene, error) {
	var sc Scene
	s := bufio.NewScanner(strings.NewReader(text))
	n := 0
	for s.Scan() {
		n++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := parseGeometry(line, &sc); err != nil {
			return Scene{}, fmt.Errorf("wkt line %d: %w", n, err)
		}
	}
	if err := s.Err(); err != nil {
		return Scene{}, err
	}
	if sc.Empty() {
		return Scene{}, errors.New("empty wkt")
	}
	return sc, nil
}

func parseGeometry(s string, sc *Scene) error {
	kw := s
	if i := strings.IndexAny(s, "(["); i >= 0 {
		kw = s[:i]
	}
	kw = strings.ToUpper(strings.TrimSpace(kw))

	body := func() (string, error) {
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return "", errors.New(strings.ToLower(kw) + ": invalid")
		}
		return s[i+1 : j], nil
	}

	switch kw {
	case "POINT", "MULTIPOINT":
		b, err := body()
		if err != nil {
			return err
		}
		// MULTIPOINT((1 2), (3 4)) is as valid as MULTIPOINT(1 2, 3 4)
		pts := parseTuples(strings.NewReplacer("(", "", ")", "").Replace(b))
		if len(pts) == 0 {
			return errors.New(strings.ToLower(kw) + ": no coordinates parsed")
		}
		sc.Points = append(sc.Points, pts...)
	case "LINESTRING":
		b, err := body()
		if err != nil {
			return err
		}
		pts := parseTuples(b)
		if len(pts) < 2 {
			return errors.New("linestring: need at least two points")
		}
		for i := 1; i < len(pts); i++ {
			sc.Lines = append(sc.Lines, geom.NewLine(pts[i-1], pts[i]))
		}
	case "POLYGON":
		i := strings.Index(s, "((")
		j := strings.LastIndex(s, "))")
		if i < 0 || j <= i {
			return errors.New("polygon: invalid")
		}
		// every ring is a closed outline; holes are drawn as shapes too
		for _, rp := range strings.Split(s[i+2:j], ")") {
			rp = strings.TrimLeft(strings.TrimSpace(rp), ", (")
			if rp == "" {
				continue
			}
			ring := closeRing(parseTuples(rp))
			if len(ring) < 3 {
				return errors.New("polygon: ring needs at least three points")
			}
			sc.Shapes = append(sc.Shapes, geom.NewShape(ring...))
		}
	case "CIRCLE":
		b, err := body()
		if err != nil {
			return err
		}
		parts := strings.Split(b, ",")
		if len(parts) != 2 {
			return errors.New("circle: want CIRCLE(x y, r)")
		}
		centre := parseTuples(parts[0])
		r, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if len(centre) != 1 || err != nil || r < 0 || r > math.MaxUint32 {
			return errors.New("circle: invalid centre or radius")
		}
		sc.Circles = append(sc.Circles, geom.NewCircle(centre[0], uint32(math.Round(r))))
	case "BEZIER":
		steps := DefaultSteps
		if i := strings.Index(s, "["); i >= 0 && i < strings.Index(s, "(") {
			j := strings.Index(s, "]")
			if j < i {
				return errors.New("bezier: unterminated step count")
			}
			v, err := strconv.Atoi(strings.TrimSpace(s[i+1 : j]))
			if err != nil || v < 1 {
				return errors.New("bezier: invalid step count")
			}
			steps = v
		}
		b, err := body()
		if err != nil {
			return err
		}
		pts := parseTuples(b)
		if len(pts) < 3 {
			return errors.New("bezier: need at least three control points")
		}
		sc.Curves = append(sc.Curves, Curve{Points: pts, Steps: steps})
	default:
		return errors.New("unsupported wkt type: " + kw)
	}
	return nil
}

// parseTuples reads "x y, x y, ..." rounding to the raster grid. Malformed
// tuples are skipped.
func parseTuples(block string) []geom.Point2d {
	var out []geom.Point2d
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
		out = append(out, roundPt(x, y))
	}
	return out
}

// closeRing drops the repeated closing vertex of a WKT or GeoJSON ring.
func closeRing(ring []geom.Point2d) []geom.Point2d {
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		return ring[:n-1]
	}
	return ring
}
