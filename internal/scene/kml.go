package scene

import (
	"encoding/xml"
	"errors"
	"strconv"
	"strings"

	"toryn/internal/geom"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer kmlCoords `xml:"outerBoundaryIs>LinearRing"`
}

type kmlPlacemark struct {
	Point      *kmlCoords  `xml:"Point"`
	LineString *kmlCoords  `xml:"LineString"`
	Polygon    *kmlPolygon `xml:"Polygon"`
}

type kmlDoc struct {
	Placemarks []kmlPlacemark `xml:"Document>Placemark"`
	Bare       []kmlPlacemark `xml:"Placemark"`
}

// ParseKML extracts Placemark points, line strings and polygon outer rings.
// KML coordinates are "x,y[,z]"; z is ignored.
func ParseKML(data []byte) (Scene, error) {
	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return Scene{}, err
	}
	var sc Scene
	for _, pm := range append(doc.Placemarks, doc.Bare...) {
		switch {
		case pm.Point != nil:
			sc.Points = append(sc.Points, kmlTuples(pm.Point.Coordinates)...)
		case pm.LineString != nil:
			ls := kmlTuples(pm.LineString.Coordinates)
			for i := 1; i < len(ls); i++ {
				sc.Lines = append(sc.Lines, geom.NewLine(ls[i-1], ls[i]))
			}
		case pm.Polygon != nil:
			if ring := closeRing(kmlTuples(pm.Polygon.Outer.Coordinates)); len(ring) >= 3 {
				sc.Shapes = append(sc.Shapes, geom.NewShape(ring...))
			}
		}
	}
	if sc.Empty() {
		return Scene{}, errors.New("kml: no geometries found")
	}
	return sc, nil
}

// kmlTuples splits whitespace separated "x,y[,z]" tuples.
func kmlTuples(s string) []geom.Point2d {
	var out []geom.Point2d
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, roundPt(x, y))
	}
	return out
}
