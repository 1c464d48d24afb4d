package form

import (
	"regexp"
	"strings"

	"github.com/shenikar/ocean_watch/internal/classify"
)

// Option - пункт списка выбора: значение и подпись
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SeverityLevel - уровень опасности с цветом индикатора
type SeverityLevel struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Guideline - подсказка по выбору уровня опасности
type Guideline struct {
	Severity string `json:"severity"`
	Label    string `json:"label"`
	Text     string `json:"text"`
	Color    string `json:"color"`
}

var hazardTypeLabels = []string{
	"Tsunami Warning",
	"High Waves",
	"Storm Surge",
	"Coastal Flooding",
	"Swell Surge",
	"Abnormal Tides",
	"Coastal Erosion",
	"Other",
}

var severityValues = []string{"low", "medium", "high", "critical"}

var whitespace = regexp.MustCompile(`\s+`)

// OptionValue превращает подпись в значение: "Storm Surge" -> "storm_surge"
func OptionValue(label string) string {
	return whitespace.ReplaceAllString(strings.ToLower(label), "_")
}

// HazardTypes возвращает список типов опасности в порядке отображения
func HazardTypes() []Option {
	options := make([]Option, len(hazardTypeLabels))
	for i, label := range hazardTypeLabels {
		options[i] = Option{Value: OptionValue(label), Label: label}
	}
	return options
}

// HazardTypeLabel возвращает подпись по значению либо само значение, если оно неизвестно
func HazardTypeLabel(value string) string {
	for _, label := range hazardTypeLabels {
		if OptionValue(label) == value {
			return label
		}
	}
	return value
}

func IsHazardType(value string) bool {
	for _, label := range hazardTypeLabels {
		if OptionValue(label) == value {
			return true
		}
	}
	return false
}

// SeverityLevels возвращает уровни опасности от низкого к критическому
func SeverityLevels() []SeverityLevel {
	levels := make([]SeverityLevel, len(severityValues))
	for i, v := range severityValues {
		levels[i] = SeverityLevel{
			Value: v,
			Label: strings.ToUpper(v[:1]) + v[1:],
			Color: classify.SeverityDot(v),
		}
	}
	return levels
}

func IsSeverity(value string) bool {
	for _, v := range severityValues {
		if v == value {
			return true
		}
	}
	return false
}

// Guidelines - рекомендации по приоритету сообщений
func Guidelines() []Guideline {
	return []Guideline{
		{Severity: "critical", Label: "Critical", Text: "Immediate danger to life/property", Color: classify.SeverityDot("critical")},
		{Severity: "high", Label: "High", Text: "Potential for significant impact", Color: classify.SeverityDot("high")},
		{Severity: "medium", Label: "Medium", Text: "Moderate concern, monitor closely", Color: classify.SeverityDot("medium")},
	}
}
