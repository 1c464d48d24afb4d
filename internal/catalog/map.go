package catalog

import (
	"strings"
)

// TimeRange - интервал отображения данных на карте
type TimeRange struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

const DefaultTimeRange = "24h"

var timeRanges = []TimeRange{
	{Value: "1h", Label: "Last 1 Hour"},
	{Value: "6h", Label: "Last 6 Hours"},
	{Value: "24h", Label: "Last 24 Hours"},
	{Value: "7d", Label: "Last 7 Days"},
}

func TimeRanges() []TimeRange {
	return append([]TimeRange(nil), timeRanges...)
}

// NormalizeTimeRange возвращает интервал по умолчанию для неизвестных значений
func NormalizeTimeRange(value string) string {
	for _, r := range timeRanges {
		if r.Value == value {
			return value
		}
	}
	return DefaultTimeRange
}

func HazardFilters() []string {
	return []string{"Tsunami", "High Waves", "Storm Surge", "Flooding"}
}

func MapLayers() []string {
	return []string{"Satellite", "Bathymetry", "Currents", "Wind"}
}

// FilterMarkers оставляет маркеры, тип которых содержит один из выбранных фильтров.
// Пустой набор фильтров оставляет все маркеры.
func FilterMarkers(markers []HazardMarker, types []string) []HazardMarker {
	selected := make([]string, 0, len(types))
	for _, t := range types {
		if t = strings.TrimSpace(t); t != "" {
			selected = append(selected, strings.ToLower(t))
		}
	}
	if len(selected) == 0 {
		return markers
	}

	filtered := make([]HazardMarker, 0, len(markers))
	for _, m := range markers {
		markerType := strings.ToLower(m.Type)
		for _, t := range selected {
			if strings.Contains(markerType, t) {
				filtered = append(filtered, m)
				break
			}
		}
	}
	return filtered
}
