package scene

import (
	"encoding/json"
	"errors"
	"math"

	"toryn/internal/geom"
)

// ParseGeoJSON reads Point, MultiPoint, LineString, MultiLineString,
// Polygon and MultiPolygon geometries, bare or wrapped in a Feature or
// FeatureCollection. Feature properties select the raster primitive:
// a Point with "radius" is a circle, a LineString with "bezier": true is a
// curve sampled "steps" times.
func ParseGeoJSON(data []byte) (Scene, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Scene{}, err
	}
	var sc Scene
	parsePoint := func(v any) (pt geom.Point2d, ok bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			x, xok := a[0].(float64)
			y, yok := a[1].(float64)
			if xok && yok {
				return roundPt(x, y), true
			}
		}
		return geom.Point2d{}, false
	}
	parseArrayPoints := func(v any) (pts []geom.Point2d, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				pts = append(pts, pt)
			}
		}
		return pts, true
	}
	parseNested := func(v any) (out [][]geom.Point2d, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, el := range arr {
			if pts, ok := parseArrayPoints(el); ok {
				out = append(out, pts)
			}
		}
		return out, true
	}
	addLine := func(ls []geom.Point2d, props map[string]any) {
		if b, _ := props["bezier"].(bool); b {
			if len(ls) >= 3 {
				sc.Curves = append(sc.Curves, Curve{Points: ls, Steps: stepsProp(props)})
			}
			return
		}
		for i := 1; i < len(ls); i++ {
			sc.Lines = append(sc.Lines, geom.NewLine(ls[i-1], ls[i]))
		}
	}
	addPoly := func(rings [][]geom.Point2d) {
		for _, ring := range rings {
			if ring = closeRing(ring); len(ring) >= 3 {
				sc.Shapes = append(sc.Shapes, geom.NewShape(ring...))
			}
		}
	}
	addPoint := func(pt geom.Point2d, props map[string]any) {
		if r, ok := props["radius"].(float64); ok && r >= 0 && r <= math.MaxUint32 {
			sc.Circles = append(sc.Circles, geom.NewCircle(pt, uint32(math.Round(r))))
			return
		}
		sc.Points = append(sc.Points, pt)
	}

	walkGeom := func(g map[string]any, props map[string]any) {
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			if pt, ok := parsePoint(g["coordinates"]); ok {
				addPoint(pt, props)
			}
		case "MultiPoint":
			if pts, ok := parseArrayPoints(g["coordinates"]); ok {
				for _, p := range pts {
					addPoint(p, props)
				}
			}
		case "LineString":
			if ls, ok := parseArrayPoints(g["coordinates"]); ok {
				addLine(ls, props)
			}
		case "MultiLineString":
			if mls, ok := parseNested(g["coordinates"]); ok {
				for _, ls := range mls {
					addLine(ls, props)
				}
			}
		case "Polygon":
			if poly, ok := parseNested(g["coordinates"]); ok {
				addPoly(poly)
			}
		case "MultiPolygon":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if poly, ok := parseNested(el); ok {
						addPoly(poly)
					}
				}
			}
		}
	}
	walkFeature := func(fm map[string]any) {
		props, _ := fm["properties"].(map[string]any)
		if g, ok := fm["geometry"].(map[string]any); ok {
			walkGeom(g, props)
		}
	}

	t, _ := raw["type"].(string)
	switch t {
	case "":
		return Scene{}, errors.New("invalid geojson: missing type")
	case "Feature":
		walkFeature(raw)
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					walkFeature(fm)
				}
			}
		}
	default:
		walkGeom(raw, nil)
	}
	if sc.Empty() {
		return Scene{}, errors.New("no geometries found")
	}
	return sc, nil
}

func stepsProp(props map[string]any) int {
	if v, ok := props["steps"].(float64); ok && v >= 1 {
		return int(v)
	}
	return DefaultSteps
}
