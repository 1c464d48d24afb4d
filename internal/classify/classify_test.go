package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportSeverityVariant(t *testing.T) {
	tests := []struct {
		severity string
		want     Variant
	}{
		{"high", VariantDestructive},
		{"medium", VariantWarning},
		{"low", VariantSecondary},
		{"critical", VariantSecondary},
		{"", VariantSecondary},
		{"HIGH", VariantSecondary},
	}
	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			assert.Equal(t, tt.want, ReportSeverityVariant(tt.severity))
		})
	}
}

func TestSeverityDot(t *testing.T) {
	assert.Equal(t, "bg-red-500", SeverityDot("critical"))
	assert.Equal(t, "bg-orange-500", SeverityDot("high"))
	assert.Equal(t, "bg-yellow-500", SeverityDot("medium"))
	assert.Equal(t, "bg-green-500", SeverityDot("low"))
	assert.Equal(t, "bg-gray-500", SeverityDot("extreme"))
}

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, Badge{Variant: VariantDestructive, Label: "Active"}, StatusBadge("active"))
	assert.Equal(t, Badge{Variant: VariantSecondary, Label: "Monitoring"}, StatusBadge("monitoring"))
	assert.Equal(t, Badge{Variant: VariantDefault, Label: "Resolved"}, StatusBadge("resolved"))
	assert.Equal(t, Badge{Variant: VariantSecondary, Label: "Unknown"}, StatusBadge("archived"))
}

func TestSentimentVariant(t *testing.T) {
	assert.Equal(t, VariantDestructive, SentimentVariant("urgent"))
	assert.Equal(t, VariantSecondary, SentimentVariant("concerning"))
	assert.Equal(t, VariantDefault, SentimentVariant("informative"))
	assert.Equal(t, VariantSecondary, SentimentVariant("sarcastic"))
}

func TestPlatformColor(t *testing.T) {
	assert.Equal(t, "bg-blue-500", PlatformColor("Twitter"))
	assert.Equal(t, "bg-blue-600", PlatformColor("Facebook"))
	assert.Equal(t, "bg-pink-500", PlatformColor("Instagram"))
	assert.Equal(t, "bg-red-500", PlatformColor("YouTube"))
	assert.Equal(t, "bg-gray-500", PlatformColor("Mastodon"))
}
