// Package classify сопоставляет уровни опасности, статусы, тональность и платформы
// с вариантами бейджей и классами цветов страниц мониторинга.
// Для неизвестных значений возвращается нейтральный вариант.
package classify

// Variant - визуальный вариант бейджа
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSecondary   Variant = "secondary"
	VariantDestructive Variant = "destructive"
	VariantWarning     Variant = "warning"
)

// Badge - вариант бейджа вместе с отображаемой подписью
type Badge struct {
	Variant Variant `json:"variant"`
	Label   string  `json:"label"`
}

const neutralDot = "bg-gray-500"

// ReportSeverityVariant возвращает вариант бейджа для списка последних отчетов.
// Значение "critical" в этом списке не встречается и получает вариант по умолчанию.
func ReportSeverityVariant(severity string) Variant {
	switch severity {
	case "high":
		return VariantDestructive
	case "medium":
		return VariantWarning
	case "low":
		return VariantSecondary
	default:
		return VariantSecondary
	}
}

// SeverityDot возвращает класс цвета маркера для уровня опасности
func SeverityDot(severity string) string {
	switch severity {
	case "critical":
		return "bg-red-500"
	case "high":
		return "bg-orange-500"
	case "medium":
		return "bg-yellow-500"
	case "low":
		return "bg-green-500"
	default:
		return neutralDot
	}
}

// StatusBadge возвращает бейдж для статуса маркера на карте
func StatusBadge(status string) Badge {
	switch status {
	case "active":
		return Badge{Variant: VariantDestructive, Label: "Active"}
	case "monitoring":
		return Badge{Variant: VariantSecondary, Label: "Monitoring"}
	case "resolved":
		return Badge{Variant: VariantDefault, Label: "Resolved"}
	default:
		return Badge{Variant: VariantSecondary, Label: "Unknown"}
	}
}

// SentimentVariant возвращает вариант бейджа для тональности публикации
func SentimentVariant(sentiment string) Variant {
	switch sentiment {
	case "urgent":
		return VariantDestructive
	case "concerning":
		return VariantSecondary
	case "informative":
		return VariantDefault
	default:
		return VariantSecondary
	}
}

var platformColors = map[string]string{
	"Twitter":   "bg-blue-500",
	"Facebook":  "bg-blue-600",
	"Instagram": "bg-pink-500",
	"YouTube":   "bg-red-500",
}

// PlatformColor возвращает акцентный цвет социальной сети
func PlatformColor(platform string) string {
	if color, ok := platformColors[platform]; ok {
		return color
	}
	return neutralDot
}
