package catalog

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/shenikar/ocean_watch/internal/classify"
)

// MarkersFeatureCollection представляет маркеры в виде GeoJSON для картографических клиентов
func MarkersFeatureCollection(markers []HazardMarker) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, m := range markers {
		f := geojson.NewPointFeature([]float64{m.Coordinates[0], m.Coordinates[1]})
		f.ID = m.ID
		f.SetProperty("type", m.Type)
		f.SetProperty("location", m.Location)
		f.SetProperty("severity", m.Severity)
		f.SetProperty("reports", m.Reports)
		f.SetProperty("last_updated", m.LastUpdated)
		f.SetProperty("status", m.Status)
		f.SetProperty("color", classify.SeverityDot(m.Severity))
		f.SetProperty("status_label", classify.StatusBadge(m.Status).Label)
		fc.AddFeature(f)
	}
	return fc
}
