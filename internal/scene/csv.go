package scene

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ParseCSV reads control points of a single Bézier curve, one row each.
// Columns are found by their x and y headers (case-insensitive); values
// are raster coordinates. An optional steps column sets the sample count
// from its first parseable value.
func ParseCSV(r io.Reader) (Scene, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return Scene{}, err
	}
	if len(recs) == 0 {
		return Scene{}, errors.New("empty csv")
	}
	idxX, idxY, idxSteps := -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x":
			if idxX == -1 {
				idxX = i
			}
		case "y":
			if idxY == -1 {
				idxY = i
			}
		case "steps":
			idxSteps = i
		}
	}
	if idxX == -1 || idxY == -1 {
		return Scene{}, errors.New("csv: x/y columns not found")
	}

	c := Curve{Steps: DefaultSteps}
	stepsSet := false
	for _, row := range recs[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		c.Points = append(c.Points, roundPt(x, y))
		if !stepsSet && idxSteps >= 0 && idxSteps < len(row) {
			if v, err := strconv.Atoi(strings.TrimSpace(row[idxSteps])); err == nil && v >= 1 {
				c.Steps = v
				stepsSet = true
			}
		}
	}
	if len(c.Points) == 0 {
		return Scene{}, errors.New("csv: no valid points parsed")
	}
	return Scene{Curves: []Curve{c}}, nil
}
