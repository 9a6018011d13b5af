package ui

import (
	"image/color"

	shp "github.com/jonas-p/go-shp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ingarrune/retina/geom"
)

var shpLogger = log.WithField("component", "shapefile")

// LoadShapes imports every polygon record of a shapefile as a Shape widget.
// Only the outer ring of each polygon is used; inner rings (holes) and
// non-polygon records are skipped with a log entry. Coordinates are taken
// as-is; callers position and scale the resulting widgets.
func LoadShapes(path string, fill color.RGBA) ([]*Shape, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open shapefile %s", path)
	}
	defer r.Close()

	var shapes []*Shape
	for r.Next() {
		n, raw := r.Shape()
		poly, ok := raw.(*shp.Polygon)
		if !ok {
			shpLogger.WithField("record", n).Warnf("skipping %T record", raw)
			continue
		}
		end := len(poly.Points)
		if len(poly.Parts) > 1 {
			shpLogger.WithField("record", n).Debug("dropping inner rings")
			end = int(poly.Parts[1])
		}
		outline := make([]geom.Vec2, 0, end)
		for _, pt := range poly.Points[:end] {
			outline = append(outline, geom.V(pt.X, pt.Y))
		}
		if len(outline) < 3 {
			continue
		}
		shapes = append(shapes, NewShape(outline, fill))
	}
	return shapes, nil
}
